package reducer

import (
	"fmt"
	"reflect"
	"sort"
)

// IsPlainObject reports whether v is a plain key/value record: a non-nil
// *State, a State, or a non-nil map keyed by strings. Struct values, pointers
// to structs, slices and scalars are not plain objects.
func IsPlainObject(v any) bool {
	switch s := v.(type) {
	case nil:
		return false
	case *State:
		return s != nil
	case State:
		return true
	case map[string]any:
		return s != nil
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String && !rv.IsNil()
}

// view gives read access to the slices of whatever state value a
// Combination receives. Values that are not plain objects have no keys.
type view struct {
	state *State
	plain map[string]any
	other reflect.Value
}

func viewOf(v any) view {
	switch s := v.(type) {
	case *State:
		return view{state: s}
	case State:
		return view{state: &s}
	case map[string]any:
		return view{plain: s}
	}
	if IsPlainObject(v) {
		return view{other: reflect.ValueOf(v)}
	}
	return view{}
}

func (v view) get(key string) any {
	switch {
	case v.state != nil:
		value, _ := v.state.Get(key)
		return value
	case v.plain != nil:
		return v.plain[key]
	case v.other.IsValid():
		value := v.other.MapIndex(reflect.ValueOf(key).Convert(v.other.Type().Key()))
		if !value.IsValid() {
			return nil
		}
		return value.Interface()
	}
	return nil
}

// keys returns the state's keys; map keys are sorted so diagnostics are
// deterministic.
func (v view) keys() []string {
	switch {
	case v.state != nil:
		return v.state.Keys()
	case v.plain != nil:
		keys := make([]string, 0, len(v.plain))
		for k := range v.plain {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	case v.other.IsValid():
		keys := make([]string, 0, v.other.Len())
		for _, k := range v.other.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return keys
	}
	return nil
}

func (v view) len() int {
	switch {
	case v.state != nil:
		return v.state.Len()
	case v.plain != nil:
		return len(v.plain)
	case v.other.IsValid():
		return v.other.Len()
	}
	return 0
}

// typeName describes a non-plain state in warnings.
func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
