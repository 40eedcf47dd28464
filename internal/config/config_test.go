package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "templatekit.db", cfg.Store.Path)
	assert.True(t, cfg.Render.IncludeWrapper)
	assert.Equal(t, 150, cfg.Watch.MinDebounceMs)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templatekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  path: /tmp/custom.db
watch:
  min_debounce_ms: 200
ai:
  model: gemini-2.5-pro
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Store.Path)
	assert.Equal(t, 200, cfg.Watch.MinDebounceMs)
	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1000, cfg.Watch.MaxDebounceMs)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TEMPLATEKIT_STORE_PATH", "/tmp/env.db")
	t.Setenv("TEMPLATEKIT_AI_MODEL", "gemini-2.5-pro")

	cfg := Default()

	assert.Equal(t, "/tmp/env.db", cfg.Store.Path)
	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
}
