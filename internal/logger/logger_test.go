package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "info", "json")
	t.Cleanup(func() { Initialize("info", "text") })

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), 7)
	InfoContext(ctx, "decision recorded", "recruit_id", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "decision recorded", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, float64(7), line["user_id"])
	assert.Equal(t, float64(3), line["recruit_id"])
}

func TestDatabaseResult_LogsErrorsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "error", "json")
	t.Cleanup(func() { Initialize("info", "text") })

	DatabaseResult("select", 0, nil)
	assert.Empty(t, buf.String())

	DatabaseResult("select", 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")
}
