package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyRuleName is returned when a grow rule has no name or a cut rule has no reason.
var ErrEmptyRuleName = errors.New("rule name is empty")

// ErrNilRuleFunc is returned when a rule is registered without a function.
var ErrNilRuleFunc = errors.New("rule function is nil")

// ErrEndAlreadySet is returned when more than one termination predicate is configured.
var ErrEndAlreadySet = errors.New("termination predicate already set")

// ErrUnknownRule is returned when a rule name cannot be found in a registry.
var ErrUnknownRule = errors.New("unknown rule")

// ErrInvalidProblem is returned when a problem document cannot be compiled.
var ErrInvalidProblem = errors.New("invalid problem")

// ErrNodeBudgetExceeded is returned when a compiled problem proposes more
// candidates than its node budget allows.
var ErrNodeBudgetExceeded = errors.New("node budget exceeded")

// RuleError points at the misconfigured rule of a RuleBook.
type RuleError struct {
	Kind  string // "grow", "cut" or "end"
	Index int
	Name  string
	Err   error
}

func (e *RuleError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s rule #%d (%s): %v", e.Kind, e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("%s rule #%d: %v", e.Kind, e.Index, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
