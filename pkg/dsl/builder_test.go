package dsl

import (
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleRuleSet(t *testing.T) {
	// 1. Build the rule set using the DSL
	rules, err := New[int]().
		Name("steps").
		Grow("branch", Branch(func(x int) []int { return []int{x + 1, x + 2} })).
		Cut("too big", Prune("cap", func(x int, _ []int) bool { return x > 10 })).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"branch"}, rules.GrowRules())
	assert.Equal(t, []string{"too big"}, rules.CutRules())
	assert.False(t, rules.HasEnd())
	assert.Equal(t, "steps", rules.Name)

	// 2. Evaluate
	tree, err := rules.Expand(9, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, tree.Harvest())
	assert.Equal(t, domain.Rejection{"too big (cap)"}, tree.Children()[1].Rejection())
}

func TestBuilder_EndWhen(t *testing.T) {
	rules, err := New[int]().
		Grow("id", Branch(func(x int) []int { return []int{x} })).
		EndWhen(Always[int]()).
		Build()
	require.NoError(t, err)
	assert.True(t, rules.HasEnd())

	root, err := rules.Run([]int{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}}, root.EnumeratePaths())
}

func TestBuilder_EndWhenTwice(t *testing.T) {
	_, err := New[int]().
		EndWhen(Always[int]()).
		EndWhen(Until(func(int, []int) bool { return false })).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEndAlreadySet))
}

func TestBuilder_EndWhenNil(t *testing.T) {
	_, err := New[int]().EndWhen(nil).Build()
	assert.True(t, errors.Is(err, domain.ErrNilRuleFunc))
}

func TestBuilder_InvalidRule(t *testing.T) {
	_, err := New[string]().Grow("", Branch(func(s string) []string { return nil })).Build()
	assert.True(t, errors.Is(err, domain.ErrEmptyRuleName))

	_, err = New[string]().Cut("reason", nil).Build()
	assert.True(t, errors.Is(err, domain.ErrNilRuleFunc))
}

func TestBuilder_RuleSetIsImmutable(t *testing.T) {
	b := New[int]().Grow("inc", Branch(func(x int) []int { return []int{x + 1} }))
	rules, err := b.Build()
	require.NoError(t, err)

	// Registering more rules afterwards must not leak into the built rule set.
	b.Grow("again", Branch(func(x int) []int { return []int{x + 1} })).
		Cut("never", Prune("", func(int, []int) bool { return true }))

	tree, err := rules.Expand(1, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, tree.Harvest())
	assert.Len(t, b.Book().Grow, 2)
}

func TestPrune_EmptyNote(t *testing.T) {
	rules, err := New[int]().
		Grow("id", Branch(func(x int) []int { return []int{x} })).
		Cut("banned", Prune("", func(int, []int) bool { return true })).
		Build()
	require.NoError(t, err)

	tree, err := rules.Expand(1, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Rejection{"banned"}, tree.Children()[0].Rejection())
}
