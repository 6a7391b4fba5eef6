package util

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerEmptyFileIsNop(t *testing.T) {
	log, closeFn, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NoError(t, closeFn())
}

func TestNewLoggerWritesSessionField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	log, closeFn, err := NewLogger(LogConfig{Level: "debug", File: path})
	require.NoError(t, err)

	log.Info("started", zap.Int("tasks", 3))
	_ = log.Sync()
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
	assert.Contains(t, string(data), `"session":`)
	assert.Contains(t, string(data), `"tasks":3`)
}

func TestNewLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(LogConfig{Level: "warn", Encoding: "console"}, &buf)
	log.Info("hidden")
	log.Warn("shown")
	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.True(t, strings.Contains(out, "shown"))
}

func TestNewLoggerBadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(LogConfig{Level: "loud"}, &buf)
	log.Debug("debug line")
	log.Info("info line")
	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(LogConfig{}, &buf)
	LogError(log, "ignored", nil)
	assert.Empty(t, buf.String())
	LogError(log, "save failed", errors.New("disk full"))
	assert.Contains(t, buf.String(), "disk full")
	LogError(nil, "no logger", errors.New("x"))
}
