package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go.uber.org/zap"

	"github.com/huangkairan/redux/action"
	"github.com/huangkairan/redux/observability"
	"github.com/huangkairan/redux/reducer"
)

func main() {
	var (
		scriptFile = flag.String("script", "", "Path to a JSON or YAML action script (required)")
		configFile = flag.String("config", "", "Path to a JSON or YAML config file (default: REDUX_* environment)")
		logger     = flag.String("logger", "", "Diagnostic sink: noop, slog or zap (overrides config)")
		production = flag.Bool("production", false, "Disable development diagnostics (overrides config)")
		verbose    = flag.Bool("verbose", false, "Log every transition event (overrides config level)")
	)
	flag.Parse()

	if *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: redux -script <file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var (
		cfg *reducer.Config
		err error
	)
	if *configFile != "" {
		cfg, err = reducer.LoadConfig(*configFile)
	} else {
		cfg, err = reducer.LoadConfigFromEnv()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *logger != "" {
		cfg.Observer = *logger
	}
	if *production {
		cfg.Mode = reducer.ModeProduction
	}
	if *verbose {
		cfg.Level = observability.LevelVerbose
	}

	sync, err := registerObservers(cfg.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer sync()

	steps, err := LoadScript(*scriptFile)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	types := action.NewTypes()
	root, err := reducer.New(cfg, types, demoReducers())
	if err != nil {
		log.Fatalf("Failed to combine reducers: %v", err)
	}

	d := &dispatcher{root: root}
	bound := action.BindMap(demoCreators(), d.dispatch)

	d.dispatch(action.New(types.Init, nil))
	for i, step := range steps {
		if d.err != nil {
			break
		}
		if step.Creator != "" {
			call, ok := bound[step.Creator]
			if !ok {
				log.Fatalf("Step %d: unknown creator %q", i, step.Creator)
			}
			if step.Payload != nil {
				call(step.Payload)
			} else {
				call()
			}
			continue
		}
		d.dispatch(action.New(step.Type, step.Payload))
	}

	if d.err != nil {
		log.Fatalf("Dispatch failed: %v", d.err)
	}
}

// registerObservers points the "slog" and "zap" registry entries at loggers
// writing to stderr at the configured level.
func registerObservers(level observability.Level) (func(), error) {
	observability.RegisterObserver("slog", observability.NewSlogObserver(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.SlogLevel()})),
	))

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level.ZapLevel())
	zl, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	observability.RegisterObserver("zap", observability.NewZapObserver(zl))

	return func() { _ = zl.Sync() }, nil
}

// dispatcher holds the current state between scripted actions. It stops at
// the first failing transition.
type dispatcher struct {
	root  *reducer.Combination
	state any
	err   error
}

func (d *dispatcher) dispatch(a action.Action) any {
	if d.err != nil {
		return a
	}

	next, err := d.root.Reduce(d.state, a)
	if err != nil {
		d.err = err
		return a
	}

	changed := !reducer.Same(d.state, next)
	d.state = next

	name := a.TypeString()
	if d.root.Types().IsReserved(a.Type) {
		name = "(init)"
	}
	fmt.Printf("%-24s changed=%-5v %v\n", name, changed, next)
	return a
}
