// Package logger configures the zerolog logger shared by the mapper
// packages.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls log output. The zero value produces a disabled logger,
// so the mapper stays silent unless logging is asked for.
type Options struct {
	// Enabled turns logging on.
	Enabled bool `env:"DYNAMODEL_LOG_ENABLED"`

	// Level is a zerolog level name (default: info).
	Level string `env:"DYNAMODEL_LOG_LEVEL" envDefault:"info"`

	// Format selects "json" (default) or "console" output.
	Format string `env:"DYNAMODEL_LOG_FORMAT"`
}

// Configure builds a logger from the options.
func Configure(opts Options) zerolog.Logger {
	if !opts.Enabled {
		return zerolog.Nop()
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if opts.Format == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
