// Package logging configures the zerolog logger shared by the bench tool.
// Operator-facing reports are not logged; they go to the host's output.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "ALUVERIFY_LOG_LEVEL"
	EnvLogTimestamp = "ALUVERIFY_LOG_TIMESTAMP"
	EnvLogNoColor   = "ALUVERIFY_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Options for Configure. Zero values take the profile defaults.
type Options struct {
	Profile   Profile
	Level     string    // trace, debug, info, warn, error, off
	Verbose   bool      // Shorthand for debug level.
	Output    io.Writer // Defaults to stderr.
	Timestamp bool
	NoColor   bool
}

// Configure installs the global logger and returns it.
func Configure(opts Options) zerolog.Logger {
	level := zerolog.WarnLevel
	timestamp := true
	if opts.Profile == ProfileTest {
		level = zerolog.Disabled
		timestamp = false
	}

	if lvl, ok := ParseLevel(opts.Level); ok {
		level = lvl
	}
	if opts.Verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	if opts.Timestamp {
		timestamp = true
	}
	noColor := opts.NoColor

	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		noColor = v
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}
	if !timestamp {
		writer.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}

// ConfigureTests silences logging unless ALUVERIFY_LOG_LEVEL asks otherwise.
func ConfigureTests() zerolog.Logger {
	return Configure(Options{Profile: ProfileTest})
}

// ParseLevel parses a level name. The second result is false for an empty
// or unknown name.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
