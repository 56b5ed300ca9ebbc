package domain

// Params is the keyed bag of extra context forwarded verbatim to every rule call
// of a single Expand or Run invocation.
type Params map[string]any

// GrowFunc proposes the successors of payload, given the payloads leading to it.
// An empty result ends the branch.
type GrowFunc[T any] func(payload T, history []T, params Params) ([]T, error)

// CutFunc inspects a candidate and returns the notes explaining why it must be vetoed.
// An empty result accepts the candidate.
type CutFunc[T any] func(payload T, history []T, params Params) ([]string, error)

// EndFunc reports whether a candidate is terminal.
type EndFunc[T any] func(payload T, history []T, params Params) (bool, error)

// GrowRule is a named expansion step.
type GrowRule[T any] struct {
	Name string
	Grow GrowFunc[T]
}

// CutRule is a labelled veto. Reason is used as the prefix of every rejection it produces.
type CutRule[T any] struct {
	Reason string
	Test   CutFunc[T]
}

// RuleBook is the raw, ordered rule configuration a RuleSet is built from.
// End is optional; when nil, termination is structural (produced by the last GrowRule).
type RuleBook[T any] struct {
	Grow []GrowRule[T]
	Cut  []CutRule[T]
	End  EndFunc[T]
}

// Validate checks that every rule is named and has a function.
func (b RuleBook[T]) Validate() error {
	for i, r := range b.Grow {
		if r.Name == "" {
			return &RuleError{Kind: "grow", Index: i, Err: ErrEmptyRuleName}
		}
		if r.Grow == nil {
			return &RuleError{Kind: "grow", Index: i, Name: r.Name, Err: ErrNilRuleFunc}
		}
	}
	for i, r := range b.Cut {
		if r.Reason == "" {
			return &RuleError{Kind: "cut", Index: i, Err: ErrEmptyRuleName}
		}
		if r.Test == nil {
			return &RuleError{Kind: "cut", Index: i, Name: r.Reason, Err: ErrNilRuleFunc}
		}
	}
	return nil
}

// Clone returns a copy whose rule slices do not share storage with b.
func (b RuleBook[T]) Clone() RuleBook[T] {
	return RuleBook[T]{
		Grow: append([]GrowRule[T](nil), b.Grow...),
		Cut:  append([]CutRule[T](nil), b.Cut...),
		End:  b.End,
	}
}
