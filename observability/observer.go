// Package observability carries diagnostics out of the reducer runtime.
// Subsystems emit Events to an Observer; sinks decide where they land
// (slog, zap, nowhere). Levels follow OpenTelemetry SeverityNumbers so events
// can be forwarded to an OTel collector without translation.
package observability

import (
	"context"
	"time"
)

// EventType names what happened, namespaced by subsystem
// ("combine.reduce", "combine.warning").
type EventType string

// Event is one diagnostic record. Source identifies the emitting component
// and Data carries its structured attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events. Implementations must not panic; a reducer
// transition never fails because of its observer.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx context.Context, event Event)

func (f ObserverFunc) OnEvent(ctx context.Context, event Event) {
	f(ctx, event)
}

// NoOpObserver discards all events. Select it by name ("noop") to silence
// diagnostics without switching to production mode.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}

// MinLevel forwards only events at or above threshold. A zero threshold forwards
// everything and returns obs unchanged.
func MinLevel(obs Observer, threshold Level) Observer {
	if obs == nil || threshold <= 0 {
		return obs
	}
	return ObserverFunc(func(ctx context.Context, event Event) {
		if event.Level >= threshold {
			obs.OnEvent(ctx, event)
		}
	})
}
