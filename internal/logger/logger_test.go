package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestColoredHandlerLine(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "text")

	log.With("component", "api").Info("request completed", RequestIDKey, "abc-123", "status", 200)

	line := buf.String()
	assert.Contains(t, line, "request completed")
	assert.Contains(t, line, "[abc-123]")
	assert.Contains(t, line, `"api"`)
	assert.Contains(t, line, "=200")
	assert.Less(t, strings.Index(line, "abc-123"), strings.Index(line, "request completed"))
	assert.Equal(t, 1, strings.Count(line, "\n"))
}

func TestColoredHandlerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "text")

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestColoredHandlerGroup(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "text")

	log.WithGroup("model").Debug("configured", "name", "gemini")

	assert.Contains(t, buf.String(), "model.name")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Info("started", "port", "8080")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "started", rec["msg"])
	assert.Equal(t, "8080", rec["port"])
}
