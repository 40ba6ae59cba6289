package action_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/huangkairan/redux/action"
)

func TestAction_TypeString(t *testing.T) {
	tests := []struct {
		name   string
		action action.Action
		want   string
	}{
		{name: "string type", action: action.New("INC", nil), want: "INC"},
		{name: "int type", action: action.New(42, nil), want: "42"},
		{name: "missing type", action: action.Action{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.TypeString(); got != tt.want {
				t.Errorf("TypeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAction_Is(t *testing.T) {
	a := action.New("INC", 1)
	if !a.Is("INC") {
		t.Error(`Is("INC") = false, want true`)
	}
	if a.Is("DEC") {
		t.Error(`Is("DEC") = true, want false`)
	}
	if (action.Action{}).Is(nil) {
		t.Error("untyped action should not match nil")
	}
}

func TestTypes_Format(t *testing.T) {
	types := action.NewTypes()

	patterns := map[string]string{
		"init":    `^@@redux/INIT([0-9a-f]\.){6}[0-9a-f]$`,
		"replace": `^@@redux/REPLACE([0-9a-f]\.){6}[0-9a-f]$`,
		"probe":   `^@@redux/PROBE_UNKNOWN_ACTION([0-9a-f]\.){6}[0-9a-f]$`,
	}
	values := map[string]string{
		"init":    types.Init,
		"replace": types.Replace,
		"probe":   types.ProbeUnknownAction(),
	}

	for name, pattern := range patterns {
		if !regexp.MustCompile(pattern).MatchString(values[name]) {
			t.Errorf("%s token %q does not match %s", name, values[name], pattern)
		}
	}
}

func TestTypes_Unique(t *testing.T) {
	a := action.NewTypes()
	b := action.NewTypes()

	if a.Init == b.Init {
		t.Errorf("two Types share Init %q", a.Init)
	}
	if a.Init == a.Replace {
		t.Error("Init and Replace must differ")
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		probe := a.ProbeUnknownAction()
		if seen[probe] {
			t.Fatalf("ProbeUnknownAction repeated %q", probe)
		}
		seen[probe] = true
	}
}

func TestTypes_IsReserved(t *testing.T) {
	types := action.NewTypes()

	tests := []struct {
		name       string
		actionType any
		want       bool
	}{
		{name: "init", actionType: types.Init, want: true},
		{name: "probe", actionType: types.ProbeUnknownAction(), want: true},
		{name: "application type", actionType: "INC", want: false},
		{name: "non-string", actionType: 7, want: false},
		{name: "nil", actionType: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := types.IsReserved(tt.actionType); got != tt.want {
				t.Errorf("IsReserved(%v) = %v, want %v", tt.actionType, got, tt.want)
			}
		})
	}
}

func TestBind(t *testing.T) {
	var dispatched []action.Action
	dispatch := func(a action.Action) any {
		dispatched = append(dispatched, a)
		return "dispatched"
	}

	add := action.Bind(func(args ...any) action.Action {
		return action.New("ADD", args[0])
	}, dispatch)

	got := add(5)
	if got != "dispatched" {
		t.Errorf("bound creator returned %v, want dispatch result", got)
	}
	if len(dispatched) != 1 {
		t.Fatalf("dispatch called %d times, want 1", len(dispatched))
	}
	if dispatched[0].Type != "ADD" || dispatched[0].Payload != 5 {
		t.Errorf("dispatched %+v, want ADD with payload 5", dispatched[0])
	}
}

func TestBindAll_Map(t *testing.T) {
	calls := 0
	var last action.Action
	dispatch := func(a action.Action) any {
		calls++
		last = a
		return calls
	}

	creators := map[string]any{
		"inc":     action.Creator(func(args ...any) action.Action { return action.New("INC", nil) }),
		"dec":     func(args ...any) action.Action { return action.New("DEC", nil) },
		"version": "1.0.0",
		"missing": nil,
	}

	got, err := action.BindAll(creators, dispatch)
	if err != nil {
		t.Fatalf("BindAll() error = %v", err)
	}

	bound, ok := got.(map[string]action.Bound)
	if !ok {
		t.Fatalf("BindAll() returned %T, want map[string]action.Bound", got)
	}
	if len(bound) != 2 {
		t.Errorf("bound %d creators, want 2 (non-functions dropped)", len(bound))
	}
	if _, exists := bound["version"]; exists {
		t.Error("non-function entry should be dropped")
	}

	if result := bound["inc"](); result != 1 {
		t.Errorf("inc() = %v, want dispatch result 1", result)
	}
	if calls != 1 || last.Type != "INC" {
		t.Errorf("dispatch calls = %d last = %v, want 1 INC", calls, last.Type)
	}
}

func TestBindAll_SingleCreator(t *testing.T) {
	dispatch := func(a action.Action) any { return a.Type }

	got, err := action.BindAll(action.Creator(func(args ...any) action.Action {
		return action.New("PING", nil)
	}), dispatch)
	if err != nil {
		t.Fatalf("BindAll() error = %v", err)
	}

	bound, ok := got.(action.Bound)
	if !ok {
		t.Fatalf("BindAll() returned %T, want action.Bound", got)
	}
	if result := bound(); result != "PING" {
		t.Errorf("bound() = %v, want PING", result)
	}
}

func TestBindMap_DropsNil(t *testing.T) {
	bound := action.BindMap(map[string]action.Creator{
		"inc":  func(args ...any) action.Action { return action.New("INC", nil) },
		"none": nil,
	}, func(a action.Action) any { return nil })

	if len(bound) != 1 {
		t.Errorf("BindMap bound %d creators, want 1", len(bound))
	}
}

func TestBindAll_InvalidArgument(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		received string
	}{
		{name: "nil", input: nil, received: "null"},
		{name: "nil creator", input: action.Creator(nil), received: "null"},
		{name: "string", input: "creators", received: "string"},
		{name: "number", input: 3, received: "int"},
		{name: "struct", input: struct{}{}, received: "struct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := action.BindAll(tt.input, func(a action.Action) any { return nil })
			if err == nil {
				t.Fatal("BindAll() error = nil, want error")
			}
			if !errors.Is(err, action.ErrInvalidArgument) {
				t.Errorf("errors.Is(err, ErrInvalidArgument) = false for %v", err)
			}
			if !strings.Contains(err.Error(), "instead received "+tt.received) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.received)
			}
		})
	}
}
