package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "warn")

	logger.Info("hidden", "k", 1)
	logger.Warn("shown", "url", "https://example.com/jobs")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "url=https://example.com/jobs")
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraper.log")
	logger := NewLogger(path, "debug")

	logger.Debug("fetch started", "url", "https://example.com/jobs")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetch started")
}

func TestDebugEnabled(t *testing.T) {
	assert.True(t, NewWriterLogger(&bytes.Buffer{}, "debug").DebugEnabled())
	assert.False(t, NewWriterLogger(&bytes.Buffer{}, "info").DebugEnabled())
	assert.False(t, Nop().DebugEnabled())
}
