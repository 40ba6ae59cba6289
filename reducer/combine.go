package reducer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/huangkairan/redux/action"
	"github.com/huangkairan/redux/observability"
)

// Option configures a Combination before its reducers are validated.
type Option func(*Combination)

// WithMode overrides the development/production switch.
func WithMode(m Mode) Option {
	return func(c *Combination) { c.mode = m }
}

// WithObserver overrides the default SlogObserver. A nil observer sends
// warnings to the fallback writer and drops transition events.
func WithObserver(o observability.Observer) Option {
	return func(c *Combination) { c.reporter.Observer = o }
}

// WithFallback sets the writer used for warnings when no observer is set.
// The default is os.Stderr; nil silences warnings entirely.
func WithFallback(w io.Writer) Option {
	return func(c *Combination) { c.reporter.Fallback = w }
}

// Combination is a Reducer built from named child reducers. It is the
// construction result of Combine: either a usable reducer or the shape error
// that makes every Reduce fail.
//
// A Combination may be shared between goroutines as long as its children
// are pure.
type Combination struct {
	types    *action.Types
	names    []string
	reducers map[string]Reducer
	shapeErr error
	mode     Mode
	reporter Reporter

	mu                 sync.Mutex
	unexpectedKeyCache map[string]bool
}

// New creates a Combination from configuration, resolving the observer
// names through the observability registry and filtering events below
// cfg.Level. Options are applied afterwards and take precedence.
func New(cfg *Config, types *action.Types, reducers Reducers, opts ...Option) (*Combination, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	observer, err := observability.Resolve(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	base := []Option{WithMode(cfg.Mode), WithObserver(observability.MinLevel(observer, cfg.Level))}
	return Combine(types, reducers, append(base, opts...)...), nil
}

// Combine builds a Combination from an ordered list of named reducers.
//
// Entries with a nil Reducer are skipped (and reported outside production
// mode). When a name repeats, it keeps its first position and its last
// reducer. Every remaining reducer is probed once; a failure is stored and
// returned from Err and from every call to Reduce. A nil types generates a
// fresh set, which only works when no store needs to share it.
func Combine(types *action.Types, reducers Reducers, opts ...Option) *Combination {
	if types == nil {
		types = action.NewTypes()
	}

	c := &Combination{
		types:    types,
		reducers: make(map[string]Reducer, len(reducers)),
		mode:     ModeDevelopment,
		reporter: Reporter{
			Observer: observability.NewSlogObserver(nil),
			Fallback: os.Stderr,
		},
		unexpectedKeyCache: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(c)
	}

	order, byName := reducers.collapse()
	for _, name := range order {
		r := byName[name]
		if isNil(r) {
			if c.diagnostics() {
				c.reporter.Warning(context.Background(), fmt.Sprintf("No reducer provided for key %q", name))
			}
			continue
		}
		c.names = append(c.names, name)
		c.reducers[name] = r
	}

	c.shapeErr = assertShape(c.types, c.names, c.reducers)

	c.emit(observability.Event{
		Type:  EventCombineCreate,
		Level: observability.LevelVerbose,
		Data: map[string]any{
			"reducers": len(c.names),
			"valid":    c.shapeErr == nil,
		},
	})

	return c
}

// Err returns the shape-validation error, if any.
func (c *Combination) Err() error {
	return c.shapeErr
}

// Keys returns the reducer names in invocation order.
func (c *Combination) Keys() []string {
	return append([]string(nil), c.names...)
}

// Types returns the reserved action types this Combination was built with.
func (c *Combination) Types() *action.Types {
	return c.types
}

// Reduce runs every child reducer against its slice of state and returns the
// composite result.
//
// A nil state reads as an empty one. The previous state is returned as is
// when every child returned its previous slice and the key count matches;
// otherwise a new *State is returned. A child returning nil fails the call
// with a *ContractViolationError; a child error is returned unchanged.
func (c *Combination) Reduce(state any, a action.Action) (any, error) {
	if c.shapeErr != nil {
		return nil, c.shapeErr
	}

	if s, ok := state.(*State); state == nil || (ok && s == nil) {
		state = EmptyState()
	}

	if c.diagnostics() {
		if msg := c.unexpectedShapeMessage(state, a); msg != "" {
			c.reporter.Warning(context.Background(), msg)
		}
	}

	previous := viewOf(state)
	next := newStateSize(len(c.names))
	changed := false

	for _, name := range c.names {
		prev := previous.get(name)
		value, err := c.reducers[name].Reduce(prev, a)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, &ContractViolationError{Reducer: name, ActionType: a.Type}
		}

		next.put(name, value)
		changed = changed || !Same(value, prev)
	}
	changed = changed || len(c.names) != previous.len()

	c.emit(observability.Event{
		Type:  EventCombineReduce,
		Level: observability.LevelVerbose,
		Data: map[string]any{
			"action":  a.TypeString(),
			"changed": changed,
		},
	})

	if !changed {
		return state, nil
	}
	return next, nil
}

func (c *Combination) diagnostics() bool {
	return c.mode != ModeProduction
}

func (c *Combination) emit(event observability.Event) {
	if c.reporter.Observer == nil {
		return
	}
	event.Timestamp = time.Now()
	event.Source = eventSource
	c.reporter.Observer.OnEvent(context.Background(), event)
}
