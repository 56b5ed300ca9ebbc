package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/google/uuid"
)

// Engine evaluates a fixed RuleBook. It holds no per-call state, so one Engine can
// serve any number of Expand/Run calls; each call builds an independent tree.
type Engine[T any] struct {
	book   domain.RuleBook[T]
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures the Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// WithLogger sets the structured logger used for build diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(c *engineConfig) {
		c.hooks = hooks
	}
}

// NewEngine creates an engine over a copy of book. The caller must have validated it.
func NewEngine[T any](book domain.RuleBook[T], opts ...EngineOption) *Engine[T] {
	cfg := engineConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine[T]{
		book:   book.Clone(),
		logger: cfg.logger,
		hooks:  cfg.hooks,
	}
}

// build carries the state of one top-level Expand or Run call.
type build[T any] struct {
	*Engine[T]
	params domain.Params
	runID  string
	logger *slog.Logger
}

func (e *Engine[T]) newBuild(op string, params domain.Params) *build[T] {
	id := uuid.NewString()
	return &build[T]{
		Engine: e,
		params: params,
		runID:  id,
		logger: e.logger.With("run_id", id, "op", op),
	}
}

func (b *build[T]) base(t domain.EventType, depth int) domain.EventBase {
	return domain.EventBase{Type: t, RunID: b.runID, Depth: depth}
}
