package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rules, err := dsl.New[int]().
		Grow("pair", dsl.Branch(func(x int) []int { return []int{x + 1, x + 2} })).
		Cut("over", dsl.Prune("limit", func(x int, _ []int) bool { return x > 3 })).
		Hooks(domain.ComposeHooks(m.Hooks(), observability.LogHooks(logger))).
		Build()
	require.NoError(t, err)

	// Stage 1 (seed 1): 2 and 3 survive. Stage 2 (seed 3): 4 and 5 are both cut, twice.
	_, err = rules.Run([]int{1, 3}, nil)
	require.NoError(t, err)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.Proposals.WithLabelValues("pair")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Rejections.WithLabelValues("over")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Exhausted))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Contains(t, buf.String(), "msg=cut")
	assert.Contains(t, buf.String(), `reason="over (limit)"`)
}
