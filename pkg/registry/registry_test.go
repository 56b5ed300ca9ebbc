package registry_test

import (
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UnknownRule(t *testing.T) {
	r := registry.NewRegistry()

	_, err := r.Grow("missing", nil)
	assert.True(t, errors.Is(err, domain.ErrUnknownRule))
	_, err = r.Cut("missing", nil)
	assert.True(t, errors.Is(err, domain.ErrUnknownRule))
	_, err = r.End("missing", nil)
	assert.True(t, errors.Is(err, domain.ErrUnknownRule))
}

func TestRegistry_Catalog(t *testing.T) {
	c := registry.Default().Catalog()

	assert.Equal(t, []string{"add", "identity", "mul", "span"}, c.Grow)
	assert.Equal(t, []string{"even", "leap", "max", "min", "odd", "param_max", "repeat"}, c.Cut)
	assert.Equal(t, []string{"always", "never", "reach"}, c.End)
}

func TestBuiltin_Grow(t *testing.T) {
	r := registry.Default()

	tests := []struct {
		name string
		rule string
		args map[string]any
		in   int
		want []int
	}{
		{"identity", "identity", nil, 4, []int{4}},
		{"add", "add", map[string]any{"steps": []any{1, 2}}, 4, []int{5, 6}},
		{"add from json numbers", "add", map[string]any{"steps": []any{1.0, -1.0}}, 4, []int{5, 3}},
		{"mul", "mul", map[string]any{"factors": []int{2, 3}}, 4, []int{8, 12}},
		{"span", "span", map[string]any{"min": -1, "max": 1}, 4, []int{3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := r.Grow(tt.rule, tt.args)
			require.NoError(t, err)
			got, err := fn(tt.in, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltin_GrowInvalidArgs(t *testing.T) {
	r := registry.Default()

	_, err := r.Grow("add", nil)
	assert.Error(t, err)
	_, err = r.Grow("span", map[string]any{"min": 2, "max": 1})
	assert.Error(t, err)
	_, err = r.Grow("identity", map[string]any{"unused": true})
	assert.Error(t, err)
}

func TestBuiltin_Cut(t *testing.T) {
	r := registry.Default()

	tests := []struct {
		name    string
		rule    string
		args    map[string]any
		in      int
		history []int
		params  domain.Params
		want    []string
	}{
		{"max vetoes", "max", map[string]any{"limit": 10}, 11, nil, nil, []string{"> 10"}},
		{"max accepts", "max", map[string]any{"limit": 10}, 10, nil, nil, nil},
		{"min vetoes", "min", map[string]any{"limit": 0}, -1, nil, nil, []string{"< 0"}},
		{"even vetoes", "even", nil, 4, nil, nil, []string{"4"}},
		{"odd vetoes negative", "odd", nil, -3, nil, nil, []string{"-3"}},
		{"odd accepts", "odd", nil, 2, nil, nil, nil},
		{"repeat vetoes", "repeat", nil, 2, []int{1, 2}, nil, []string{"repeats 2"}},
		{"repeat accepts", "repeat", nil, 2, []int{2, 1}, nil, nil},
		{"leap vetoes", "leap", map[string]any{"max": 2}, 7, []int{4}, nil, []string{"4 -> 7"}},
		{"leap accepts first", "leap", map[string]any{"max": 2}, 7, nil, nil, nil},
		{"param_max vetoes", "param_max", map[string]any{"key": "limit"}, 6, nil, domain.Params{"limit": 5.0}, []string{"limit=5"}},
		{"param_max accepts", "param_max", map[string]any{"key": "limit"}, 5, nil, domain.Params{"limit": "5"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := r.Cut(tt.rule, tt.args)
			require.NoError(t, err)
			got, err := fn(tt.in, tt.history, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltin_CutParamMissing(t *testing.T) {
	fn, err := registry.Default().Cut("param_max", map[string]any{"key": "limit"})
	require.NoError(t, err)

	_, err = fn(1, nil, domain.Params{})
	assert.Error(t, err)
}

func TestBuiltin_CutRequiresLimit(t *testing.T) {
	_, err := registry.Default().Cut("max", nil)
	assert.Error(t, err)
}

func TestBuiltin_End(t *testing.T) {
	r := registry.Default()

	always, err := r.End("always", nil)
	require.NoError(t, err)
	ok, err := always(0, nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	never, err := r.End("never", nil)
	require.NoError(t, err)
	ok, _ = never(0, nil, nil)
	assert.False(t, ok)

	reach, err := r.End("reach", map[string]any{"target": 10})
	require.NoError(t, err)
	ok, _ = reach(9, nil, nil)
	assert.False(t, ok)
	ok, _ = reach(10, nil, nil)
	assert.True(t, ok)
}
