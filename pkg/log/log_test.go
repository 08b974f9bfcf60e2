package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", ServiceName: "toolbox", Output: &buf})

	logger.Debug().Str(FieldShortID, "4PBaWLPnBhS2hjzggwJQXz").Msg("encoded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "toolbox", entry[FieldService])
	assert.Equal(t, "4PBaWLPnBhS2hjzggwJQXz", entry[FieldShortID])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "encoded", entry["message"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Output: &buf})

	logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"DEBUG":    zerolog.DebugLevel,
		" warning": zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"":         zerolog.InfoLevel,
		"chatty":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf}).With().Str(FieldCommand, "id encode").Logger()

	ctx := WithLogger(context.Background(), logger)
	l := Ctx(ctx)
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"command":"id encode"`)

	// Without a stored logger the global one is returned.
	assert.Equal(t, L().GetLevel(), Ctx(context.Background()).GetLevel())
}

func TestWithCommand(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(Config{Output: &buf}))
	ctx = WithCommand(ctx, "db ping")

	l := Ctx(ctx)
	l.Info().Msg("pinging")
	assert.Contains(t, buf.String(), `"command":"db ping"`)
}
