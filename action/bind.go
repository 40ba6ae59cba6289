package action

import "reflect"

// Creator builds an Action from arbitrary arguments.
type Creator func(args ...any) Action

// Dispatch delivers an Action to a store and returns whatever the store
// returns for it.
type Dispatch func(Action) any

// Bound is a Creator wired to a Dispatch: calling it builds the action and
// dispatches it in one step.
type Bound func(args ...any) any

// Bind wraps a single creator so that invoking the result dispatches the
// created action and returns the dispatch result.
func Bind(creator Creator, dispatch Dispatch) Bound {
	return func(args ...any) any {
		return dispatch(creator(args...))
	}
}

// BindMap binds every creator of the map. Nil creators are dropped.
func BindMap(creators map[string]Creator, dispatch Dispatch) map[string]Bound {
	bound := make(map[string]Bound, len(creators))
	for name, creator := range creators {
		if creator == nil {
			continue
		}
		bound[name] = Bind(creator, dispatch)
	}
	return bound
}

// BindAll accepts either a single creator or a map of creators and returns a
// value of the same shape with every creator bound to dispatch.
//
// A Creator (or a plain func(...any) Action) yields a Bound. A
// map[string]Creator or map[string]any yields a map[string]Bound; entries
// that are not creators are silently dropped. Anything else yields an
// *ArgumentError.
func BindAll(creators any, dispatch Dispatch) (any, error) {
	switch c := creators.(type) {
	case Creator:
		if c != nil {
			return Bind(c, dispatch), nil
		}
	case func(...any) Action:
		if c != nil {
			return Bind(c, dispatch), nil
		}
	case map[string]Creator:
		if c != nil {
			return BindMap(c, dispatch), nil
		}
	case map[string]any:
		if c != nil {
			bound := make(map[string]Bound, len(c))
			for name, v := range c {
				if creator, ok := asCreator(v); ok {
					bound[name] = Bind(creator, dispatch)
				}
			}
			return bound, nil
		}
	}

	return nil, &ArgumentError{Received: describe(creators)}
}

func asCreator(v any) (Creator, bool) {
	switch c := v.(type) {
	case Creator:
		return c, c != nil
	case func(...any) Action:
		return c, c != nil
	}
	return nil, false
}

// describe names the received value the way the error message expects:
// "null" for nil, otherwise the value's kind.
func describe(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface, reflect.Chan:
		if rv.IsNil() {
			return "null"
		}
	}
	return rv.Kind().String()
}
