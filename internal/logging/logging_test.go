package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookfinder.log")

	logger, err := New("debug", path)
	require.NoError(t, err)

	logger.Debug("search started", zap.String("query", "dune"))
	logger.Info("search finished", zap.Int("results", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"search started"`)
	assert.Contains(t, out, `"query":"dune"`)
	assert.Contains(t, out, `"results":3`)
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookfinder.log")

	logger, err := New("warn", path)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("chatty", filepath.Join(t.TempDir(), "x.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("info", "  ")
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("discarded")
}
