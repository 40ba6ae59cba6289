package reducer

import (
	"fmt"
	"strings"

	"github.com/huangkairan/redux/action"
)

// unexpectedShapeMessage explains why state does not look like something this
// Combination produced. It returns "" when nothing is worth reporting.
//
// Unknown keys are recorded in the cache even when the action is Replace, so
// keys left over from a reducer swap are never reported later.
func (c *Combination) unexpectedShapeMessage(state any, a action.Action) string {
	argumentName := "previous state received by the reducer"
	if a.Is(c.types.Init) {
		argumentName = "preloadedState argument passed to createStore"
	}

	if len(c.names) == 0 {
		return "Store does not have a valid reducer. Make sure the argument passed " +
			"to combineReducers is an object whose values are reducers."
	}

	expected := `"` + strings.Join(c.names, `", "`) + `"`

	if !IsPlainObject(state) {
		return fmt.Sprintf(
			"The %s has unexpected type of %q. Expected argument to be an object with the following keys: %s",
			argumentName, typeName(state), expected,
		)
	}

	c.mu.Lock()
	var unexpected []string
	for _, key := range viewOf(state).keys() {
		if _, known := c.reducers[key]; known || c.unexpectedKeyCache[key] {
			continue
		}
		unexpected = append(unexpected, key)
	}
	for _, key := range unexpected {
		c.unexpectedKeyCache[key] = true
	}
	c.mu.Unlock()

	if a.Is(c.types.Replace) || len(unexpected) == 0 {
		return ""
	}

	noun := "key"
	if len(unexpected) > 1 {
		noun = "keys"
	}
	return fmt.Sprintf(
		"Unexpected %s %s found in %s. Expected to find one of the known reducer keys instead: %s. Unexpected keys will be ignored.",
		noun, `"`+strings.Join(unexpected, `", "`)+`"`, argumentName, expected,
	)
}
