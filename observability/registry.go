package observability

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(nil),
		"zap":  NewZapObserver(zap.L()),
	}
	mutex sync.RWMutex
)

// GetObserver returns a registered observer by name.
// Pre-registered observers: "noop" (NoOpObserver), "slog" (default slog
// logger) and "zap" (zap's global logger, a no-op until replaced).
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer in the global registry.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}

// Resolve returns the observer for a comma-separated list of registered
// names. One name resolves to that observer; several resolve to a
// MultiObserver fanning out in list order. Blank entries are ignored.
func Resolve(names string) (Observer, error) {
	var resolved []Observer
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		obs, err := GetObserver(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, obs)
	}

	switch len(resolved) {
	case 0:
		return nil, fmt.Errorf("no observer named in %q", names)
	case 1:
		return resolved[0], nil
	}
	return NewMultiObserver(resolved...), nil
}
