package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/mines"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "beginner", cfg.Difficulty)
	assert.Empty(t, cfg.Board)
	assert.True(t, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.LogFile)

	params, err := cfg.Params()
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "board: 16x16:40\ncolor: false\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)

	params, err := cfg.Params()
	require.NoError(t, err)
	require.NotNil(t, params)
	assert.Equal(t, mines.Intermediate, *params)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MINESWEEPER_DIFFICULTY", "expert")
	t.Setenv("MINESWEEPER_LOG_LEVEL", "warning")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "expert", cfg.Difficulty)
	assert.Equal(t, "warning", cfg.LogLevel)
}

func TestInvalidBoard(t *testing.T) {
	cfg := Config{Board: "9x9:100"}
	_, err := cfg.Params()
	var confErr mines.InvalidConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}
