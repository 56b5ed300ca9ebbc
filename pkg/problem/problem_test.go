package problem_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/problem"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	p, err := problem.Load(filepath.Join("testdata", "steps.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "steps", p.Name)
	assert.Equal(t, []int{1, 5}, p.Seeds)
	assert.Equal(t, 7, p.Params["ceiling"])
	require.Len(t, p.Grow, 1)
	assert.Equal(t, "span", p.Grow[0].Rule)
	assert.Equal(t, "neighbours", p.Grow[0].Name)
	require.Len(t, p.Cut, 2)
	assert.Equal(t, "no repeat", p.Cut[0].Reason)
	require.NotNil(t, p.End)
	assert.Equal(t, "always", p.End.Rule)
}

func TestCompile_Run(t *testing.T) {
	p, err := problem.Load(filepath.Join("testdata", "steps.yaml"))
	require.NoError(t, err)

	rules, err := p.Compile(registry.Default(), problem.CompileOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"neighbours"}, rules.GrowRules())
	assert.Equal(t, []string{"no repeat", "too high"}, rules.CutRules())

	root, err := rules.Run(p.Seeds, p.Params)
	require.NoError(t, err)

	// Stage 1: the seed 1 is the last history value, so 1 itself is a repeat.
	// Stage 2: the seed 5 is cut as a repeat; 4 and 6 stay under the ceiling.
	assert.Equal(t, [][]int{{0, 4}, {0, 6}, {2, 4}, {2, 6}}, root.EnumeratePaths())
}

func TestParseJSON(t *testing.T) {
	p, err := problem.ParseJSON([]byte(`{
		"seeds": [9],
		"grow": [{"rule": "add", "name": "branch", "args": {"steps": [1, 2]}}],
		"cut": [{"rule": "max", "reason": "too big", "args": {"limit": 10}}]
	}`))
	require.NoError(t, err)

	rules, err := p.Compile(registry.Default(), problem.CompileOptions{})
	require.NoError(t, err)

	tree, err := rules.Expand(p.Seeds[0], p.Params)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, tree.Harvest())
	assert.Equal(t, domain.Rejection{"too big (> 10)"}, tree.Children()[1].Rejection())
}

func TestCompile_DefaultsNames(t *testing.T) {
	p, err := problem.Parse([]byte(`
seeds: [1]
grow: [{rule: identity}]
cut: [{rule: odd}]
`))
	require.NoError(t, err)

	rules, err := p.Compile(registry.Default(), problem.CompileOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"identity"}, rules.GrowRules())
	assert.Equal(t, []string{"odd"}, rules.CutRules())
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown grow", "grow: [{rule: nope}]", domain.ErrUnknownRule},
		{"unknown cut", "grow: [{rule: identity}]\ncut: [{rule: nope}]", domain.ErrUnknownRule},
		{"unknown end", "grow: [{rule: identity}]\nend: {rule: nope}", domain.ErrUnknownRule},
		{"bad args", "grow: [{rule: add, args: {steps: []}}]", domain.ErrInvalidProblem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := problem.Parse([]byte(tt.doc))
			require.NoError(t, err)

			_, err = p.Compile(registry.Default(), problem.CompileOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assert.True(t, errors.Is(err, domain.ErrInvalidProblem))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := problem.Parse([]byte("seeds: {not: a list}"))
	assert.True(t, errors.Is(err, domain.ErrInvalidProblem))

	_, err = problem.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_UnknownKeys(t *testing.T) {
	// "cuts" is a misspelling of "cut"; silently dropping it would disable every veto.
	_, err := problem.Parse([]byte("seeds: [1]\ngrow: [{rule: identity}]\ncuts: [{rule: max, args: {limit: 0}}]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidProblem))
	assert.Contains(t, err.Error(), "cuts")

	_, err = problem.ParseJSON([]byte(`{"seeds": [1], "grow": [{"rule": "identity"}], "cuts": [{"rule": "max"}]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidProblem))
	assert.Contains(t, err.Error(), "cuts")

	_, err = problem.ParseJSON([]byte(`{"seeds": [1], "grow": [{"rule": "identity", "arg": {}}]}`))
	assert.True(t, errors.Is(err, domain.ErrInvalidProblem))
}

func TestParse_Empty(t *testing.T) {
	p, err := problem.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, p.Grow)
}

func TestCompile_NodeBudget(t *testing.T) {
	p, err := problem.Parse([]byte("seeds: [0]\ngrow:\n  - {rule: span, args: {min: -1000, max: 1000}}\n  - {rule: span, args: {min: -1000, max: 1000}}\n"))
	require.NoError(t, err)

	rules, err := p.Compile(registry.Default(), problem.CompileOptions{MaxNodes: 5000})
	require.NoError(t, err)

	_, err = rules.Expand(0, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNodeBudgetExceeded))
	assert.Contains(t, err.Error(), "more than 5000 candidates")

	// A budget that fits the tree changes nothing.
	small, err := problem.Parse([]byte("seeds: [0]\ngrow: [{rule: span, args: {min: 0, max: 2}}]\n"))
	require.NoError(t, err)
	rules, err = small.Compile(registry.Default(), problem.CompileOptions{MaxNodes: 3})
	require.NoError(t, err)
	tree, err := rules.Expand(0, nil)
	require.NoError(t, err)
	assert.Len(t, tree.Children(), 3)
}
