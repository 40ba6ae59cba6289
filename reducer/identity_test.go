package reducer_test

import (
	"math"
	"testing"

	"github.com/huangkairan/redux/reducer"
)

type point struct{ X, Y int }

type tagged struct {
	Tags []string
}

func TestSame(t *testing.T) {
	m := map[string]int{"a": 1}
	list := []int{1, 2, 3}
	p := &point{1, 2}
	s := reducer.EmptyState()
	var boxed any = []int{1}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "nil and value", a: nil, b: 0, want: false},
		{name: "equal ints", a: 1, b: 1, want: true},
		{name: "different types", a: 1, b: int64(1), want: false},
		{name: "equal strings", a: "x", b: "x", want: true},
		{name: "NaN is never same", a: math.NaN(), b: math.NaN(), want: false},
		{name: "equal structs", a: point{1, 2}, b: point{1, 2}, want: true},
		{name: "same map", a: m, b: m, want: true},
		{name: "equal but distinct maps", a: m, b: map[string]int{"a": 1}, want: false},
		{name: "same slice", a: list, b: list, want: true},
		{name: "resliced", a: list, b: list[:2], want: false},
		{name: "copied slice", a: list, b: append([]int(nil), list...), want: false},
		{name: "same pointer", a: p, b: p, want: true},
		{name: "distinct pointers", a: p, b: &point{1, 2}, want: false},
		{name: "same state", a: s, b: s, want: true},
		{name: "distinct states", a: s, b: reducer.EmptyState(), want: false},
		{name: "uncomparable struct", a: tagged{}, b: tagged{}, want: false},
		{name: "array holding slice", a: [1]any{boxed}, b: [1]any{boxed}, want: false},
		{name: "null", a: reducer.Null, b: reducer.Null, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reducer.Same(tt.a, tt.b); got != tt.want {
				t.Errorf("Same(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
