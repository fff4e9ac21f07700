package ranger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "game.yaml", "title: Orbit\nwindow_width: 800\nshow_stats: true\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Orbit", cfg.Title)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 768, cfg.WindowHeight, "absent keys keep defaults")
	assert.True(t, cfg.ShowStats)
	assert.True(t, cfg.PerformClear)
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"view_width": 2048, "view_centered": false, "vsync": false}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2048.0, cfg.ViewWidth)
	assert.False(t, cfg.ViewCentered)
	assert.False(t, cfg.VSync)
}

func TestLoadConfigParseError(t *testing.T) {
	path := writeFile(t, "config.json", `{"title": `)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.WindowWidth = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ViewHeight = -1
	assert.Error(t, cfg.Validate())
}
