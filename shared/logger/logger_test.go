package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestInitializeWriterJSON(t *testing.T) {
	defer Initialize("info", false)

	var buf bytes.Buffer
	InitializeWriter(&buf, "warn", true)

	Component("board").Info("dropped")
	Component("board").Warn("kept", "index", 3)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "board", entry["component"])
	assert.EqualValues(t, 3, entry["index"])
}

func TestFromContext(t *testing.T) {
	defer Initialize("info", false)

	var buf bytes.Buffer
	InitializeWriter(&buf, "info", true)

	ctx := WithAttrs(context.Background(), "request_id", "req-1")
	inner := WithAttrs(ctx, "caller", "alice")
	FromContext(inner, "service").Info("with attrs")
	FromContext(context.Background(), "service").Info("plain")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "service", entry["component"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "alice", entry["caller"])

	entry = map[string]any{}
	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.NotContains(t, entry, "request_id")

	// deriving inner did not change ctx
	buf.Reset()
	FromContext(ctx, "service").Info("outer")
	entry = map[string]any{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.NotContains(t, entry, "caller")
}
