package dsl

import "github.com/aretw0/arbor/pkg/domain"

// Branch adapts a history-free successor function into a GrowFunc.
func Branch[T any](fn func(payload T) []T) domain.GrowFunc[T] {
	return func(payload T, _ []T, _ domain.Params) ([]T, error) {
		return fn(payload), nil
	}
}

// Prune adapts a history-aware predicate into a CutFunc that vetoes with note
// whenever the predicate holds.
func Prune[T any](note string, fn func(payload T, history []T) bool) domain.CutFunc[T] {
	return func(payload T, history []T, _ domain.Params) ([]string, error) {
		if fn(payload, history) {
			return []string{note}, nil
		}
		return nil, nil
	}
}

// Until adapts a predicate into an EndFunc.
func Until[T any](fn func(payload T, history []T) bool) domain.EndFunc[T] {
	return func(payload T, history []T, _ domain.Params) (bool, error) {
		return fn(payload, history), nil
	}
}

// Always is a termination predicate that ends every candidate.
func Always[T any]() domain.EndFunc[T] {
	return func(T, []T, domain.Params) (bool, error) { return true, nil }
}
