package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "domforge", cfg.App.Title)
	assert.Equal(t, "lua", cfg.Scene.Format)
	assert.Equal(t, "build_scene", cfg.Scene.Entry)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[app]
title = "my app"

[scene]
path = "scenes/main.yaml"
format = "yaml"

[render]
frame_rate = "100ms"

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my app", cfg.App.Title)
	assert.Equal(t, "yaml", cfg.Scene.Format)
	assert.Equal(t, "scenes/main.yaml", cfg.Scene.Path)
	assert.Equal(t, 100*time.Millisecond, cfg.Render.FrameRate.Duration)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "build_scene", cfg.Scene.Entry)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, "[render]\nframe_rate = \"fast\"\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
