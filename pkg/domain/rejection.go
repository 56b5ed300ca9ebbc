package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// ReasonAllChildrenRejected marks a node whose every child was vetoed.
	ReasonAllChildrenRejected = "All children are rejected"
	// ReasonUnspecified is recorded when a node is rejected without any reason.
	ReasonUnspecified = "rejected"
)

// Rejection holds the reasons a node was vetoed, in the order they were produced.
// A nil Rejection means the node is not rejected.
type Rejection []string

// ComposeRejection builds the reasons for a veto issued by a CutRule labelled reason.
// Each note n becomes "reason (n)"; an empty note falls back to the bare reason.
// With no notes at all the bare reason is used once.
func ComposeRejection(reason string, notes []string) Rejection {
	if len(notes) == 0 {
		return Rejection{reason}
	}
	out := make(Rejection, 0, len(notes))
	for _, note := range notes {
		if note == "" {
			out = append(out, reason)
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", reason, note))
	}
	return out
}

// String joins the reasons with "; ".
func (r Rejection) String() string {
	return strings.Join(r, "; ")
}

// MarshalJSON encodes a single reason as a bare string and several as an array.
func (r Rejection) MarshalJSON() ([]byte, error) {
	switch len(r) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(r[0])
	default:
		return json.Marshal([]string(r))
	}
}

// UnmarshalJSON accepts either a bare string or an array of strings.
func (r *Rejection) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = Rejection{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("rejection must be a string or a list of strings: %w", err)
	}
	*r = Rejection(many)
	return nil
}
