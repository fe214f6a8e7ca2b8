package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nostressdev/rtsp/internal/config"
)

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NotEmpty(t, resolved)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("output = \"JSON\"\nlog_level = \" debug \"\ncomponents = false\n"), 0o644))

	cfg, resolved, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, path, resolved)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Components)
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("colour = \"blue\"\n"), 0o644))

	_, _, _, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Output = "xml"
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.LogLevel = "trace"
	assert.Error(t, cfg.Validate())
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyOverrides("Table", ""))
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)

	assert.Error(t, cfg.ApplyOverrides("", "loud"))
}
