package observability

import (
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is event severity on the OpenTelemetry SeverityNumber scale. The
// named constants sit at the bottom of their OTel range.
type Level int

const (
	LevelVerbose Level = 5  // DEBUG 5-8
	LevelInfo    Level = 9  // INFO 9-12
	LevelWarning Level = 13 // WARN 13-16
	LevelError   Level = 17 // ERROR 17-20
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// ParseLevel accepts the names used in config files and environment
// variables: verbose (or debug), info, warn (or warning) and error. Case is
// ignored.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "debug":
		return LevelVerbose, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// MarshalText renders the level as the lower-case name ParseLevel accepts.
func (l Level) MarshalText() ([]byte, error) {
	switch {
	case l <= 8:
		return []byte("verbose"), nil
	case l <= 12:
		return []byte("info"), nil
	case l <= 16:
		return []byte("warn"), nil
	}
	return []byte("error"), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (l Level) ZapLevel() zapcore.Level {
	switch {
	case l <= 8:
		return zapcore.DebugLevel
	case l <= 12:
		return zapcore.InfoLevel
	case l <= 16:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
