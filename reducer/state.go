package reducer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"sort"

	"gopkg.in/yaml.v3"
)

// State is the composite state a Combination produces: an immutable mapping
// from reducer name to slice that remembers insertion order.
//
// Operations never modify a State; Set returns a new one. A nil *State reads
// as empty.
type State struct {
	keys   []string
	values map[string]any
}

// Entry is one key/value pair of a State.
type Entry struct {
	Key   string
	Value any
}

// EmptyState returns a State with no keys.
func EmptyState() *State {
	return &State{values: map[string]any{}}
}

// NewState builds a State from entries in order. A repeated key keeps its
// first position and its last value.
func NewState(entries ...Entry) *State {
	s := newStateSize(len(entries))
	for _, e := range entries {
		s.put(e.Key, e.Value)
	}
	return s
}

// StateFromMap builds a State from a map, ordered by key.
func StateFromMap(m map[string]any) *State {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := newStateSize(len(keys))
	for _, k := range keys {
		s.put(k, m[k])
	}
	return s
}

func newStateSize(n int) *State {
	return &State{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// put is the only mutating operation; callers use it while building a State
// nobody else holds yet.
func (s *State) put(key string, value any) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the slice stored under key and whether the key exists.
func (s *State) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (s *State) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keys...)
}

// Len returns the number of keys.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Set returns a new State with key set to value. Existing keys keep their
// position; new keys are appended.
func (s *State) Set(key string, value any) *State {
	next := &State{
		keys:   append(make([]string, 0, s.Len()+1), s.Keys()...),
		values: make(map[string]any, s.Len()+1),
	}
	if s != nil {
		maps.Copy(next.values, s.values)
	}
	next.put(key, value)
	return next
}

// Map returns a copy of the State as a plain map.
func (s *State) Map() map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return maps.Clone(s.values)
}

// Range calls fn for every entry in order until fn returns false.
func (s *State) Range(fn func(key string, value any) bool) {
	if s == nil {
		return
	}
	for _, k := range s.keys {
		if !fn(k, s.values[k]) {
			return
		}
	}
}

// Equal reports whether both States hold the same keys in the same order and
// every slice is Same as its counterpart.
func (s *State) Equal(other *State) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, k := range s.Keys() {
		if other.keys[i] != k || !Same(s.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

// String renders the State as JSON, falling back to fmt for slices that
// cannot be encoded.
func (s *State) String() string {
	data, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprint(s.Map())
	}
	return string(data)
}

// MarshalJSON encodes the State as a JSON object in insertion order.
func (s *State) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document's key order.
// Nested values decode as encoding/json would decode them into an any.
func (s *State) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("state must be a JSON object, got %v", tok)
	}

	next := newStateSize(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode key %q: %w", key, err)
		}
		next.put(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = *next
	return nil
}

// MarshalYAML encodes the State as a YAML mapping in insertion order.
func (s *State) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range s.Keys() {
		var value yaml.Node
		if err := value.Encode(s.values[k]); err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}
	return node, nil
}
