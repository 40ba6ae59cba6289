// Package action defines the records that drive state transitions, the
// reserved action types used to probe reducers, and helpers that bind action
// creators to a dispatch function.
package action

import "fmt"

// Action describes an intent to transition state.
//
// Type is the discriminator reducers switch on. It must hold a comparable
// value, conventionally a string. A nil Type means the action carries no type.
// Actions are treated as immutable once built; reducers must not modify
// Payload or Meta in place.
type Action struct {
	Type    any            `json:"type" yaml:"type"`
	Payload any            `json:"payload,omitempty" yaml:"payload,omitempty"`
	Meta    map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// New creates an Action with the given type and payload.
func New(t any, payload any) Action {
	return Action{Type: t, Payload: payload}
}

// Is reports whether the action's type equals t.
func (a Action) Is(t any) bool {
	return a.Type != nil && a.Type == t
}

// TypeString renders the action type for messages. It returns an empty
// string when the action has no type.
func (a Action) TypeString() string {
	if a.Type == nil {
		return ""
	}
	if s, ok := a.Type.(string); ok {
		return s
	}
	return fmt.Sprint(a.Type)
}
