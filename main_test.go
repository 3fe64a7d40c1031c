package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accident-analyzer/config"
	"accident-analyzer/utils"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataFilePath:  filepath.Join(t.TempDir(), "data.json"),
		SearchKey:     "city",
		SearchTerm:    "Anytown",
		FrequencyKeys: []string{"city", "car"},
		LogLevel:      "error",
	}
}

func testLogger() *utils.Logger {
	logger := utils.NewLogger(utils.Options{Level: "error"})
	logger.SetOutput(io.Discard)
	return logger
}

func TestRunLeavesNoFileBehind(t *testing.T) {
	cfg := testConfig(t)

	run(cfg, testLogger())

	_, err := os.Stat(cfg.DataFilePath)
	assert.True(t, os.IsNotExist(err))
}

func TestRunSurvivesUnwritablePath(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	cfg.DataFilePath = filepath.Join(blocker, "data.json")

	// Generation fails, analysis reports the missing file, and no panic
	// or non-zero exit reaches the caller.
	assert.NotPanics(t, func() { run(cfg, testLogger()) })

	// Stat on a path under a regular file fails with ENOTDIR, not ENOENT,
	// so only assert that nothing exists there.
	_, err := os.Stat(cfg.DataFilePath)
	assert.Error(t, err)
}

func TestRunSurvivesUnknownSearchKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.SearchKey = "severity"

	assert.NotPanics(t, func() { run(cfg, testLogger()) })

	_, err := os.Stat(cfg.DataFilePath)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	cleanup(path, testLogger())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupMissingFileIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		cleanup(filepath.Join(t.TempDir(), "absent.json"), testLogger())
	})
}
