package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSetupLogger_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelInfo, "json"))

	LogError(errors.New("boom"), "submit failed", Fields{"sink": "redis"})
	LogDebug("hidden", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "submit failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "redis", entry["sink"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetupLogger_InvalidFormat(t *testing.T) {
	err := SetupLogger(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestHoldLogs(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	require.NoError(t, SetupLogger(&out, slog.LevelInfo, "console"))
	outer := slog.Default()

	release, err := HoldLogs(slog.LevelInfo, "console")
	require.NoError(t, err)

	LogInfo("tax submitted", Fields{"name": "VAT"})
	LogDebug("below level", nil)
	assert.Empty(t, out.String(), "held logs must not reach the terminal writer")

	var flushed bytes.Buffer
	require.NoError(t, release(&flushed))
	assert.Contains(t, flushed.String(), "tax submitted")
	assert.Contains(t, flushed.String(), "name=VAT")
	assert.NotContains(t, flushed.String(), "below level")

	assert.Same(t, outer, slog.Default(), "release restores the previous logger")
	LogInfo("after release", nil)
	assert.Contains(t, out.String(), "after release")
}

func TestHoldLogs_InvalidFormat(t *testing.T) {
	prev := slog.Default()

	_, err := HoldLogs(slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Same(t, prev, slog.Default())
}
