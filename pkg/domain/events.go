package domain

// EventType defines the category of the event.
type EventType string

const (
	EventGrow      EventType = "grow"
	EventCut       EventType = "cut"
	EventCommit    EventType = "commit"
	EventExhausted EventType = "exhausted"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Type  EventType `json:"type"`
	RunID string    `json:"run_id"`
	Depth int       `json:"depth"`
}

// GrowEvent reports the candidates a GrowRule proposed for a payload.
type GrowEvent struct {
	EventBase
	Rule       string `json:"rule"`
	Payload    any    `json:"payload,omitempty"`
	Candidates int    `json:"candidates"`
}

// CutEvent reports a vetoed candidate.
type CutEvent struct {
	EventBase
	Rule      string    `json:"rule"`
	Payload   any       `json:"payload"`
	Rejection Rejection `json:"rejection"`
}

// StageEvent reports the outcome of one Run stage for a seed.
type StageEvent struct {
	EventBase
	Seed    any `json:"seed"`
	Payload any `json:"payload,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks observe the build; they cannot alter it.
type LifecycleHooks struct {
	OnGrow      func(*GrowEvent)
	OnCut       func(*CutEvent)
	OnCommit    func(*StageEvent)
	OnExhausted func(*StageEvent)
}

// ComposeHooks returns hooks that call each of the given hook sets in order.
func ComposeHooks(all ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnGrow: func(e *GrowEvent) {
			for _, h := range all {
				if h.OnGrow != nil {
					h.OnGrow(e)
				}
			}
		},
		OnCut: func(e *CutEvent) {
			for _, h := range all {
				if h.OnCut != nil {
					h.OnCut(e)
				}
			}
		},
		OnCommit: func(e *StageEvent) {
			for _, h := range all {
				if h.OnCommit != nil {
					h.OnCommit(e)
				}
			}
		},
		OnExhausted: func(e *StageEvent) {
			for _, h := range all {
				if h.OnExhausted != nil {
					h.OnExhausted(e)
				}
			}
		},
	}
}
