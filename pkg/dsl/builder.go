package dsl

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
)

// Builder registers rules in order and compiles them into an immutable RuleSet.
// Configuration errors are collected and reported by Build, so calls can be chained.
type Builder[T any] struct {
	book domain.RuleBook[T]
	opts []arbor.Option
	errs []error
}

// New creates a new rule set builder.
func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Grow appends a named expansion step. Steps are applied one tree level each,
// in the order they are registered.
func (b *Builder[T]) Grow(name string, fn domain.GrowFunc[T]) *Builder[T] {
	b.book.Grow = append(b.book.Grow, domain.GrowRule[T]{Name: name, Grow: fn})
	return b
}

// Cut appends a veto. The first Cut returning notes for a candidate rejects it.
func (b *Builder[T]) Cut(reason string, fn domain.CutFunc[T]) *Builder[T] {
	b.book.Cut = append(b.book.Cut, domain.CutRule[T]{Reason: reason, Test: fn})
	return b
}

// EndWhen sets the termination predicate. Only one may be registered.
func (b *Builder[T]) EndWhen(fn domain.EndFunc[T]) *Builder[T] {
	switch {
	case fn == nil:
		b.errs = append(b.errs, &domain.RuleError{Kind: "end", Err: domain.ErrNilRuleFunc})
	case b.book.End != nil:
		b.errs = append(b.errs, &domain.RuleError{Kind: "end", Err: domain.ErrEndAlreadySet})
	default:
		b.book.End = fn
	}
	return b
}

// Logger sets the structured logger of the resulting RuleSet.
func (b *Builder[T]) Logger(logger *slog.Logger) *Builder[T] {
	b.opts = append(b.opts, arbor.WithLogger(logger))
	return b
}

// Hooks registers lifecycle hooks on the resulting RuleSet.
func (b *Builder[T]) Hooks(hooks domain.LifecycleHooks) *Builder[T] {
	b.opts = append(b.opts, arbor.WithLifecycleHooks(hooks))
	return b
}

// Name labels the resulting RuleSet in logs.
func (b *Builder[T]) Name(name string) *Builder[T] {
	b.opts = append(b.opts, arbor.WithName(name))
	return b
}

// Book returns a copy of the rules registered so far.
func (b *Builder[T]) Book() domain.RuleBook[T] {
	return b.book.Clone()
}

// Build compiles the registered rules into a RuleSet.
// Registering more rules on the builder afterwards does not affect the returned RuleSet.
func (b *Builder[T]) Build() (*arbor.RuleSet[T], error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("failed to build rule set: %w", b.errs[0])
	}
	rs, err := arbor.New(b.book, b.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build rule set: %w", err)
	}
	return rs, nil
}
