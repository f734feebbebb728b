package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "center", cfg.Display.Position)
	assert.Equal(t, "floating", cfg.Display.WindowLevel)
	assert.Equal(t, 2*time.Second, cfg.Timing.DisplayDuration.Duration())
	assert.Equal(t, 300*time.Millisecond, cfg.Timing.FadeInDuration.Duration())
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.FadeOutDuration.Duration())
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 80, cfg.Audio.Volume)
	assert.True(t, cfg.Renderer.Fallback)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Display.Position, cfg.Display.Position)
}

func TestLoad_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[display]
position = "top-right"
background = "#202020"
font_size = 18.0

[timing]
display_duration = "3s"
fade_in_duration = "250ms"

[audio]
enabled = false
volume = 50

[renderer]
path = "/opt/toasthud/bin/toasthud"
fallback = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "top-right", cfg.Display.Position)
	assert.Equal(t, "#202020", cfg.Display.Background)
	assert.Equal(t, 18.0, cfg.Display.FontSize)
	assert.Equal(t, 3*time.Second, cfg.Timing.DisplayDuration.Duration())
	assert.Equal(t, 250*time.Millisecond, cfg.Timing.FadeInDuration.Duration())
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 50, cfg.Audio.Volume)
	assert.Equal(t, "/opt/toasthud/bin/toasthud", cfg.Renderer.Path)
	assert.False(t, cfg.Renderer.Fallback)
}

func TestLoad_IntegerMilliseconds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[timing]
display_duration = "1500"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timing.DisplayDuration.Duration())
}

func TestLoad_RejectsBadPosition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[display]
position = "middle"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid position")
}

func TestLoad_RejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[display]
background = "not-a-color"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadVolume(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[audio]
volume = 150
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.Display.Position = "bottom-left"
	cfg.Timing.DisplayDuration = Duration(4 * time.Second)
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bottom-left", loaded.Display.Position)
	assert.Equal(t, 4*time.Second, loaded.Timing.DisplayDuration.Duration())
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalText([]byte("2s")))
	assert.Equal(t, 2*time.Second, d.Duration())

	require.NoError(t, d.UnmarshalText([]byte("500")))
	assert.Equal(t, 500*time.Millisecond, d.Duration())

	assert.Error(t, d.UnmarshalText([]byte("fast")))
}

func TestPath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "toasthud", "config.toml"), Path())
}
