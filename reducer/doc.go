// Package reducer composes independent state-transition functions into one.
//
// A Reducer maps a previous state slice and an Action to the next slice. It
// must be pure, must return an initial value when handed nil, and must never
// return nil itself; reducers that want to hold "no value" return Null.
//
// # Combining reducers
//
// Combine turns an ordered list of named reducers into a single Reducer that
// owns a composite State keyed by those names:
//
//	types := action.NewTypes()
//	root := reducer.Combine(types, reducer.Reducers{
//	    {Name: "count", Reducer: reducer.Pure(count)},
//	    {Name: "todos", Reducer: reducer.Pure(todos)},
//	})
//
//	s, err := root.Reduce(nil, action.New(types.Init, nil))
//	s, err = root.Reduce(s, action.New("INC", nil))
//
// Every call fans the action out to every child in declaration order. When no
// child produced a new slice, the previous State is returned unchanged, so
// callers can detect "nothing happened" with a single identity check (Same).
//
// # Shape validation
//
// Each child is probed once, at construction, with the reserved Init type and
// with a random unknown type. A child that answers nil makes the Combination
// permanently unusable: Err reports the failure and every Reduce returns it.
//
// # Diagnostics
//
// Outside ModeProduction the Combination warns about likely mistakes, such as
// state keys no reducer owns or state that is not a mapping at all. Warnings go
// to the configured observability.Observer as EventCombineWarning, or to
// stderr when no observer is set. They never change the result of Reduce.
package reducer
