package main

import (
	"fmt"

	"github.com/huangkairan/redux/action"
	"github.com/huangkairan/redux/reducer"
)

// Todo is one entry of the todos slice.
type Todo struct {
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

const (
	filterAll       = "SHOW_ALL"
	filterActive    = "SHOW_ACTIVE"
	filterCompleted = "SHOW_COMPLETED"
)

func counter(state any, a action.Action) any {
	n, _ := state.(int)
	switch a.Type {
	case "INCREMENT":
		return n + 1
	case "DECREMENT":
		return n - 1
	}
	if state == nil {
		return 0
	}
	return state
}

func todos(state any, a action.Action) (any, error) {
	list, ok := state.([]Todo)
	if !ok {
		list = []Todo{}
	}

	switch a.Type {
	case "ADD_TODO":
		text, ok := a.Payload.(string)
		if !ok {
			return nil, fmt.Errorf("ADD_TODO payload must be a string, got %T", a.Payload)
		}
		return append(append([]Todo(nil), list...), Todo{Text: text}), nil
	case "TOGGLE_TODO":
		index, ok := a.Payload.(int)
		if !ok || index < 0 || index >= len(list) {
			return list, nil
		}
		next := append([]Todo(nil), list...)
		next[index].Completed = !next[index].Completed
		return next, nil
	}
	return list, nil
}

func visibilityFilter(state any, a action.Action) any {
	if a.Type == "SET_VISIBILITY_FILTER" {
		switch a.Payload {
		case filterAll, filterActive, filterCompleted:
			if a.Payload == state {
				return state
			}
			return a.Payload
		}
	}
	if state == nil {
		return filterAll
	}
	return state
}

func demoReducers() reducer.Reducers {
	return reducer.Reducers{
		{Name: "counter", Reducer: reducer.Pure(counter)},
		{Name: "todos", Reducer: reducer.Func(todos)},
		{Name: "visibilityFilter", Reducer: reducer.Pure(visibilityFilter)},
	}
}

func demoCreators() map[string]action.Creator {
	return map[string]action.Creator{
		"increment": func(args ...any) action.Action { return action.New("INCREMENT", nil) },
		"decrement": func(args ...any) action.Action { return action.New("DECREMENT", nil) },
		"addTodo": func(args ...any) action.Action {
			return action.New("ADD_TODO", firstArg(args))
		},
		"toggleTodo": func(args ...any) action.Action {
			return action.New("TOGGLE_TODO", firstArg(args))
		},
		"setVisibilityFilter": func(args ...any) action.Action {
			return action.New("SET_VISIBILITY_FILTER", firstArg(args))
		},
	}
}

func firstArg(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}
