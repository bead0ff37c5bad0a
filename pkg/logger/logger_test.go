package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: InfoLevel, Output: &buf})

	log.Info("something happened", String("request_id", "req-1"), Int("status", 200))

	var entry Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "something happened", entry.Message)
	assert.Equal(t, "req-1", entry.Fields["request_id"])
	assert.EqualValues(t, 200, entry.Fields["status"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: WarnLevel, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	assert.Zero(t, buf.Len())

	log.Warn("warn message")
	assert.NotZero(t, buf.Len())
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: InfoLevel, Output: &buf})

	child := log.WithFields(String("service", "openmusic"))
	child.Info("started")

	var entry Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "openmusic", entry.Fields["service"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	// unknown names fall back to info
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}
