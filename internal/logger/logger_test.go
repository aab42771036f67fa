package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olivier/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseLevel("loud")
	assert.False(t, ok)
}

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	l, closer, warnings, err := New(config.Log{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer closer.Close()
	assert.Empty(t, warnings)

	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	_, closer, warnings, err := New(config.Log{Level: "loud"}, &buf)
	require.NoError(t, err)
	defer closer.Close()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "fall back to 'warn'")
}

func TestNew_FileOutput(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	l, closer, _, err := New(config.Log{
		Level: "error",
		File:  config.LogFile{Enabled: true, Path: dir, Level: "info"},
	}, &buf)
	require.NoError(t, err)

	l.Info("to file only", "id", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "logs.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file only"`)
	assert.Contains(t, string(data), `"id":7`)
	assert.Empty(t, buf.String())
}
