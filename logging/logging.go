// Package logging builds the zerolog loggers used across the simulation.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "TRACE":
		return zerolog.TraceLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New returns a console logger writing to w (stderr when nil).
func New(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    w != os.Stderr && w != os.Stdout,
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Component tags a logger with the subsystem that owns it.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
