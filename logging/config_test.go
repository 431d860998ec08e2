package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		raw   string
		level zerolog.Level
		ok    bool
	}){
		{"", zerolog.InfoLevel, false},
		{"bogus", zerolog.InfoLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{" DEBUG ", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
	}

	for _, entry := range table {
		level, ok := ParseLevel(entry.raw)
		assert.Equal(entry.level, level, entry.raw)
		assert.Equal(entry.ok, ok, entry.raw)
	}
}

func TestConfigure(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogNoColor, "true")

	buf := &bytes.Buffer{}
	logger := Configure(Options{Verbose: true, Output: buf})
	assert.Equal(zerolog.DebugLevel, logger.GetLevel())
	assert.Equal(zerolog.DebugLevel, log.Logger.GetLevel())

	logger.Debug().Str("port", "sim").Msg("hello")
	assert.Contains(buf.String(), "hello")
	assert.Contains(buf.String(), "port=sim")

	logger = Configure(Options{Level: "error", Output: buf})
	assert.Equal(zerolog.ErrorLevel, logger.GetLevel())

	t.Setenv(EnvLogLevel, "trace")
	logger = Configure(Options{Level: "error", Output: buf})
	assert.Equal(zerolog.TraceLevel, logger.GetLevel())

	t.Setenv(EnvLogLevel, "")
	logger = ConfigureTests()
	assert.Equal(zerolog.Disabled, logger.GetLevel())
}
