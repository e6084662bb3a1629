// Package logging provides structured diagnostic logging with zerolog.
//
// Log events go to stderr so the report on stdout stays clean.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging configuration.
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // console, json
	Out    io.Writer // defaults to os.Stderr
}

// DefaultConfig returns the logging configuration used by the CLI.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Out:    os.Stderr,
	}
}

// Init initializes the global zerolog logger.
func Init(cfg Config) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		return fmt.Errorf("invalid log level %q (use debug, info, warn or error)", cfg.Level)
	}
	zerolog.SetGlobalLevel(level)

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	var w io.Writer
	switch cfg.Format {
	case "", "console":
		w = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: time.Kitchen,
		}
	case "json":
		w = out
	default:
		return fmt.Errorf("invalid log format %q (use console or json)", cfg.Format)
	}

	log.Logger = zerolog.New(w).
		With().
		Timestamp().
		Logger()
	return nil
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithComponent returns a logger with a component tag.
func WithComponent(component string) zerolog.Logger {
	return log.With().
		Str("component", component).
		Logger()
}
