package reducer

import (
	"errors"
	"fmt"

	"github.com/huangkairan/redux/action"
)

// Sentinel errors matched by the typed errors below.
var (
	ErrConfiguration  = errors.New("invalid reducer configuration")
	ErrUndefinedState = errors.New("reducer returned undefined state")
)

// Probe names the shape-validation call a reducer failed.
type Probe string

const (
	ProbeInit    Probe = "init"
	ProbeUnknown Probe = "unknown"
)

// ConfigurationError reports a reducer that answered nil while being probed
// at construction time. A Combination holding one never reduces.
type ConfigurationError struct {
	Reducer string
	Probe   Probe

	// InitType is the reserved Init action type the reducer was probed with.
	InitType string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Probe == ProbeUnknown {
		return fmt.Sprintf(
			"Reducer %q returned undefined when probed with a random type. "+
				"Don't try to handle %s or other actions in %q namespace. "+
				"They are considered private. Instead, you must return the "+
				"current state for any unknown actions, unless it is undefined, "+
				"in which case you must return the initial state, regardless of the "+
				"action type. The initial state may not be undefined, but can be reducer.Null.",
			e.Reducer, e.InitType, action.Namespace+"*",
		)
	}
	return fmt.Sprintf(
		"Reducer %q returned undefined during initialization. "+
			"If the state passed to the reducer is undefined, you must "+
			"explicitly return the initial state. The initial state may "+
			"not be undefined. If you don't want to set a value for this reducer, "+
			"you can use reducer.Null instead of nil.",
		e.Reducer,
	)
}

// Is matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ContractViolationError reports a reducer that returned nil for a live
// action. It always points at a defect in that reducer.
type ContractViolationError struct {
	Reducer    string
	ActionType any
}

// Error implements the error interface.
func (e *ContractViolationError) Error() string {
	description := "an action"
	if e.ActionType != nil {
		description = fmt.Sprintf("action %q", fmt.Sprint(e.ActionType))
	}
	return fmt.Sprintf(
		"Given %s, reducer %q returned undefined. "+
			"To ignore an action, you must explicitly return the previous state. "+
			"If you want this reducer to hold no value, you can return reducer.Null instead of nil.",
		description, e.Reducer,
	)
}

// Is matches ErrUndefinedState.
func (e *ContractViolationError) Is(target error) bool {
	return target == ErrUndefinedState
}
