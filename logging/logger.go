// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for the logger.
type Config struct {
	Level   string    // "debug", "info", ...; unknown values fall back to info
	Output  io.Writer // defaults to os.Stderr
	Console bool      // human-readable output instead of JSON
}

// New returns a logger with a timestamp and service field.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", "gostman-site").
		Logger()
}
