package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("visible", "component", "keywords")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "keywords", rec["component"])
}

func TestNewTextDefault(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "unknown", "").Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
