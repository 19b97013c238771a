package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Format: FormatJSON, Output: &buf})

	cl := ComponentLogger(l, "engine")
	cl.Info().Str("query", "laser").Msg("search")
	l.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"component":"engine"`)
	assert.Contains(t, out, `"query":"laser"`)
	assert.NotContains(t, out, "hidden")
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "selectkit.log")
	result := NewLoggerWithPath(Config{Level: "debug", File: path})
	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)

	result.Logger.Debug().Msg("to file")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	var buf bytes.Buffer
	result := NewLoggerWithPath(Config{File: filepath.Join(blocker, "sub", "x.log"), Output: &buf})
	assert.True(t, result.FallbackUsed)
	assert.False(t, result.UsingFile)
	assert.NotEmpty(t, result.FallbackReason)

	result.Logger.Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26)

	ctx = ContextWithTraceID(ctx, "trace-1")
	assert.Equal(t, "trace-1", GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")

	//nolint:staticcheck // nil context is part of the contract.
	FromContext(nil).Info().Msg("dropped")
	assert.NotContains(t, buf.String(), "dropped")
}
