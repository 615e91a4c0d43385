package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Canonical field names.
const (
	FieldComponent = "component"
	FieldMachine   = "machine"
	FieldInput     = "input"
	FieldState     = "state"
)

// Config captures options for building a logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every log entry
}

// New builds a logger from cfg. An empty or unparsable level falls back to LOG_LEVEL, then to
// info.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, ok := parseLevel(cfg.Level); ok {
		level = parsed
	} else if parsed, ok := parseLevel(os.Getenv("LOG_LEVEL")); ok {
		level = parsed
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	service := cfg.Service
	if service == "" {
		service = "automaton"
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", service).
		Logger()
}

func parseLevel(s string) (zerolog.Level, bool) {
	if s == "" {
		return zerolog.NoLevel, false
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, false
	}
	return level, true
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str(FieldComponent, component).Logger()
}

// WithMachine returns a child logger for one named machine.
func WithMachine(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(FieldMachine, name).Logger()
}
