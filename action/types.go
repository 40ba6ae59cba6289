package action

import (
	"strings"

	"github.com/google/uuid"
)

// Namespace prefixes every reserved action type. Application code must not
// define action types inside it.
const Namespace = "@@redux/"

// Types holds the private action types of one process. Build it once at
// startup with NewTypes and hand the same value to every combined reducer
// and to the store that drives them.
//
// For any unknown action a reducer must return its current state, and if the
// current state is nil it must return its initial state. Reducers must never
// switch on these types directly.
type Types struct {
	// Init is dispatched while a store is constructed.
	Init string

	// Replace is dispatched when a store swaps its whole reducer set,
	// e.g. on hot reload. Shape mismatches are expected for that action.
	Replace string
}

// NewTypes generates a fresh set of reserved action types.
func NewTypes() *Types {
	return &Types{
		Init:    Namespace + "INIT" + randomString(),
		Replace: Namespace + "REPLACE" + randomString(),
	}
}

// ProbeUnknownAction returns a new, unguessable action type on every call.
func (t *Types) ProbeUnknownAction() string {
	return Namespace + "PROBE_UNKNOWN_ACTION" + randomString()
}

// IsReserved reports whether the given action type lives in the private
// namespace.
func (t *Types) IsReserved(actionType any) bool {
	s, ok := actionType.(string)
	return ok && strings.HasPrefix(s, Namespace)
}

// randomString yields a short dotted suffix such as "3.f.9.a.0.c.e".
func randomString() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.Join(strings.Split(id[:7], ""), ".")
}
