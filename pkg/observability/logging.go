package observability

import (
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
)

// LogHooks returns hooks that trace every event at Debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGrow: func(e *domain.GrowEvent) {
			logger.Debug("grow", "run_id", e.RunID, "rule", e.Rule, "depth", e.Depth,
				"payload", e.Payload, "candidates", e.Candidates)
		},
		OnCut: func(e *domain.CutEvent) {
			logger.Debug("cut", "run_id", e.RunID, "rule", e.Rule, "depth", e.Depth,
				"payload", e.Payload, "reason", e.Rejection.String())
		},
		OnCommit: func(e *domain.StageEvent) {
			logger.Debug("commit", "run_id", e.RunID, "depth", e.Depth, "seed", e.Seed, "payload", e.Payload)
		},
		OnExhausted: func(e *domain.StageEvent) {
			logger.Debug("exhausted", "run_id", e.RunID, "depth", e.Depth, "seed", e.Seed)
		},
	}
}
