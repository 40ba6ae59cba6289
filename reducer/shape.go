package reducer

import "github.com/huangkairan/redux/action"

// assertShape probes every reducer with the Init type and with a random
// unknown type, both against a nil state. It stops at the first failure. An
// error returned by a reducer during probing is passed through as is.
func assertShape(types *action.Types, names []string, reducers map[string]Reducer) error {
	for _, name := range names {
		r := reducers[name]

		initial, err := r.Reduce(nil, action.New(types.Init, nil))
		if err != nil {
			return err
		}
		if initial == nil {
			return &ConfigurationError{Reducer: name, Probe: ProbeInit, InitType: types.Init}
		}

		probed, err := r.Reduce(nil, action.New(types.ProbeUnknownAction(), nil))
		if err != nil {
			return err
		}
		if probed == nil {
			return &ConfigurationError{Reducer: name, Probe: ProbeUnknown, InitType: types.Init}
		}
	}
	return nil
}
