package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects l into a buffer and returns a func decoding the last
// written entry.
func capture(t *testing.T, l *Logger) func() map[string]any {
	t.Helper()
	var buf bytes.Buffer
	l.Logger = l.Output(&buf)

	return func() map[string]any {
		t.Helper()
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
		return entry
	}
}

func TestNewLogger_EntryFields(t *testing.T) {
	l := NewLogger("landing-server")
	last := capture(t, l)

	l.Info().Msg("started")
	entry := last()

	assert.Equal(t, "landing-server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestWithTraceID(t *testing.T) {
	parent := NewLogger("server")
	last := capture(t, parent)

	child := parent.WithTraceID("abc-123")
	child.Info().Msg("child")
	assert.Equal(t, "abc-123", last()["trace_id"])
	assert.Equal(t, "server", last()["role"])

	parent.Info().Msg("parent")
	assert.NotContains(t, last(), "trace_id", "parent keeps its own fields")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		attached := &Logger{zerolog.New(&buf)}
		ctx := attached.WithTraceID("t-1").WithContext(context.Background())

		FromContext(ctx).Info().Msg("from ctx")
		assert.Contains(t, buf.String(), `"trace_id":"t-1"`)
	})

	t.Run("nothing attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	attached := &Logger{zerolog.New(&buf)}

	r := httptest.NewRequest("GET", "/api/version", nil)
	r = r.WithContext(attached.WithContext(r.Context()))

	FromRequest(r).Warn().Msg("from request")
	assert.Contains(t, buf.String(), "from request")
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Error().Msg("dropped") })
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestNewClientLogger(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "client.log")
		l := NewClientLogger("editor", path)

		l.Info().Msg("saved")

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(data, &entry))
		assert.Equal(t, "editor", entry["role"])
		assert.Equal(t, "saved", entry["message"])
	})

	t.Run("unwritable path discards", func(t *testing.T) {
		l := NewClientLogger("editor", filepath.Join(t.TempDir(), "missing", "dir", "log"))
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Info().Msg("dropped") })
	})
}
