package arbor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
)

// Version is the library release reported by the CLI and the HTTP adapter.
const Version = "0.3.0"

// RuleSet is an immutable, ordered set of rules ready for evaluation.
// It is the high-level entry point of the library and wraps the internal runtime.
type RuleSet[T any] struct {
	runtime *runtime.Engine[T]
	book    domain.RuleBook[T]
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	Name    string
}

// Option defines a functional option for configuring a RuleSet.
type Option func(*options)

type options struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	name   string
}

// WithLogger sets a custom structured logger for the rule set.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithName labels the rule set in logs.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New validates book and freezes it into a RuleSet.
// Later changes to the slices of book are not observed by the RuleSet.
func New[T any](book domain.RuleBook[T], opts ...Option) (*RuleSet[T], error) {
	if err := book.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule book: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.name != "" {
		o.logger = o.logger.With("ruleset", o.name)
	}

	frozen := book.Clone()
	return &RuleSet[T]{
		runtime: runtime.NewEngine(frozen,
			runtime.WithLogger(o.logger),
			runtime.WithLifecycleHooks(o.hooks),
		),
		book:   frozen,
		logger: o.logger,
		hooks:  o.hooks,
		Name:   o.name,
	}, nil
}

// Expand builds one speculative tree rooted at a fresh node holding seed.
func (r *RuleSet[T]) Expand(seed T, params domain.Params) (*domain.Node[T], error) {
	return r.runtime.Expand(seed, params, nil)
}

// ExpandFrom is Expand with the seed's history continuing from prior.
// prior is only read; it does not gain a child.
func (r *RuleSet[T]) ExpandFrom(seed T, params domain.Params, prior *domain.Node[T]) (*domain.Node[T], error) {
	return r.runtime.Expand(seed, params, prior)
}

// Run commits one accepted result per seed, branching wherever a stage harvests
// several payloads. The returned virtual root anchors every committed chain.
func (r *RuleSet[T]) Run(seeds []T, params domain.Params) (*domain.Node[T], error) {
	return r.runtime.Run(seeds, params)
}

// GrowRules returns the names of the GrowRules in evaluation order.
func (r *RuleSet[T]) GrowRules() []string {
	names := make([]string, len(r.book.Grow))
	for i, g := range r.book.Grow {
		names[i] = g.Name
	}
	return names
}

// CutRules returns the reasons of the CutRules in evaluation order.
func (r *RuleSet[T]) CutRules() []string {
	reasons := make([]string, len(r.book.Cut))
	for i, c := range r.book.Cut {
		reasons[i] = c.Reason
	}
	return reasons
}

// HasEnd reports whether a termination predicate is configured.
func (r *RuleSet[T]) HasEnd() bool {
	return r.book.End != nil
}
