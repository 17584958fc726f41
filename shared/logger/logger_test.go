package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/config"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalOutput := output

	buf := &bytes.Buffer{}
	output = buf

	t.Cleanup(func() {
		log.Logger = originalLogger
		output = originalOutput
		zerolog.SetGlobalLevel(originalLevel)
	})

	return buf
}

func TestInitLogger(t *testing.T) {
	buf := capture(t)

	InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "Zerolog initialized.")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "disabled", want: zerolog.Disabled},
		{level: "", want: zerolog.InfoLevel},
		{level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			capture(t)
			InitLogger()

			cfg := &config.Config{}
			cfg.Server.Env = "development"
			cfg.Server.LogLevel = tt.level

			SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevel_JSONOutsideDevelopment(t *testing.T) {
	buf := capture(t)
	InitLogger()
	buf.Reset()

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "venue"

	SetLogLevel(cfg)

	line, err := buf.ReadBytes('\n')
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(line, &entry))

	assert.Equal(t, "venue", entry["app"])
	assert.Equal(t, "production", entry["env"])
	assert.Equal(t, "info", entry["level"])
}

func TestErrorWithStack(t *testing.T) {
	buf := capture(t)
	InitLogger()

	ErrorWithStack(errors.New("booking insert failed"))

	assert.Contains(t, buf.String(), "booking insert failed")
}
