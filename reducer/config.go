package reducer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/huangkairan/redux/observability"
)

// Mode selects whether development-only diagnostics run.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Config controls how a Combination reports diagnostics.
//
// Observer holds one or more comma-separated names resolved through the
// observability registry ("noop", "slog", "zap" or anything registered
// later), so configuration stays serializable.
//
// Example YAML:
//
//	mode: production
//	observer: slog,zap
//	level: warn
type Config struct {
	// Mode disables diagnostics when set to ModeProduction.
	Mode Mode `json:"mode,omitempty" yaml:"mode,omitempty" env:"REDUX_ENV"`

	// Observer names the sink for warnings and transition events.
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty" env:"REDUX_OBSERVER"`

	// Level drops events below it before they reach the observer. Zero
	// forwards everything.
	Level observability.Level `json:"level,omitempty" yaml:"level,omitempty" env:"REDUX_LEVEL"`
}

// DefaultConfig returns development mode logging info and above through slog.
func DefaultConfig() Config {
	return Config{
		Mode:     ModeDevelopment,
		Observer: "slog",
		Level:    observability.LevelInfo,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Mode != "" {
		c.Mode = source.Mode
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}

	if source.Level != 0 {
		c.Level = source.Level
	}
}

// Validate rejects unknown modes.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDevelopment, ModeProduction:
		return nil
	}
	return fmt.Errorf("unknown mode %q: want %q or %q", c.Mode, ModeDevelopment, ModeProduction)
}

// Diagnostics reports whether development-only checks run.
func (c *Config) Diagnostics() bool {
	return c.Mode != ModeProduction
}

// LoadConfig reads a JSON or YAML config file (chosen by extension), merges
// it with defaults, and returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFromEnv merges REDUX_ENV, REDUX_OBSERVER and REDUX_LEVEL over
// defaults.
func LoadConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	var loaded Config
	if err := env.Parse(&loaded); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
