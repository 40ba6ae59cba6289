package reducer

import (
	"reflect"
	"sort"

	"github.com/huangkairan/redux/action"
)

// Reducer computes the next state slice from the previous one and an action.
//
// Given a nil state it must return the initial state. For actions it does not
// recognize it must return the state it was given. It must never return nil;
// a returned error is passed through to the caller unchanged.
type Reducer interface {
	Reduce(state any, a action.Action) (any, error)
}

// Func adapts an ordinary function to the Reducer interface.
type Func func(state any, a action.Action) (any, error)

// Reduce calls f(state, a).
func (f Func) Reduce(state any, a action.Action) (any, error) {
	return f(state, a)
}

// Pure adapts a function that cannot fail to the Reducer interface.
type Pure func(state any, a action.Action) any

// Reduce calls f(state, a).
func (f Pure) Reduce(state any, a action.Action) (any, error) {
	return f(state, a), nil
}

type null struct{}

func (null) String() string { return "null" }

func (null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (null) MarshalYAML() (any, error) { return nil, nil }

// Null is a legal slice value meaning "no value". Reducers return it instead
// of nil, which is reserved for "undefined".
var Null any = null{}

// Named pairs a reducer with the state key it owns.
type Named struct {
	Name    string
	Reducer Reducer
}

// Reducers is an ordered list of named reducers. Order decides the order in
// which a Combination invokes its children and lays out its State.
type Reducers []Named

// FromMap builds Reducers from a map, ordered by name.
func FromMap(m map[string]Reducer) Reducers {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make(Reducers, 0, len(names))
	for _, name := range names {
		list = append(list, Named{Name: name, Reducer: m[name]})
	}
	return list
}

// Names returns the reducer names in order, duplicates included.
func (r Reducers) Names() []string {
	names := make([]string, len(r))
	for i, n := range r {
		names[i] = n.Name
	}
	return names
}

// collapse resolves duplicate names: a name keeps the position of its first
// occurrence and the reducer of its last.
func (r Reducers) collapse() ([]string, map[string]Reducer) {
	order := make([]string, 0, len(r))
	byName := make(map[string]Reducer, len(r))
	for _, n := range r {
		if _, seen := byName[n.Name]; !seen {
			order = append(order, n.Name)
		}
		byName[n.Name] = n.Reducer
	}
	return order, byName
}

func isNil(r Reducer) bool {
	if r == nil {
		return true
	}
	rv := reflect.ValueOf(r)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
