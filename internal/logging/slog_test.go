package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactAPIKey(t *testing.T) {
	assert.Equal(t, "", RedactAPIKey(""))
	assert.Equal(t, "****", RedactAPIKey("short"))
	assert.Equal(t, "****", RedactAPIKey("12345678"))
	assert.Equal(t, "abcd****", RedactAPIKey("abcdefghij"))
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", "info")

	logger.Debug("hidden")
	logger.Info("visible", Tool("get_qrs_info"), Status(200))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "get_qrs_info", entry[KeyTool])
	assert.InDelta(t, 200, entry[KeyStatus], 0)
}

func TestNewTextLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", "error")

	logger.Warn("dropped")
	assert.Empty(t, buf.String())

	logger.Error("kept", Err(assert.AnError))
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), KeyError)
}

func TestNewDefaultsToInfoOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", "chatty")

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Info("seen")
	assert.Contains(t, buf.String(), "seen")
}
