package ranger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a World starts from. Zero values are not
// meaningful; start from DefaultConfig.
type Config struct {
	Title           string  `yaml:"title" json:"title"`
	WindowWidth     int     `yaml:"window_width" json:"window_width"`
	WindowHeight    int     `yaml:"window_height" json:"window_height"`
	ViewWidth       float64 `yaml:"view_width" json:"view_width"`
	ViewHeight      float64 `yaml:"view_height" json:"view_height"`
	ViewCentered    bool    `yaml:"view_centered" json:"view_centered"`
	VSync           bool    `yaml:"vsync" json:"vsync"`
	PerformClear    bool    `yaml:"perform_clear" json:"perform_clear"`
	ShowStats       bool    `yaml:"show_stats" json:"show_stats"`
	ShowCoordinates bool    `yaml:"show_coordinates" json:"show_coordinates"`
	FrameLimit      bool    `yaml:"frame_limit" json:"frame_limit"`
	Debug           bool    `yaml:"debug" json:"debug"`
}

// DefaultConfigFile is the config path a World reads when none is given.
const DefaultConfigFile = "config.json"

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:        "Ranger",
		WindowWidth:  1024,
		WindowHeight: 768,
		ViewWidth:    1024,
		ViewHeight:   768,
		ViewCentered: true,
		VSync:        true,
		PerformClear: true,
		FrameLimit:   true,
	}
}

// LoadConfig reads a YAML or JSON config file, chosen by extension, on top
// of DefaultConfig. Keys absent from the file keep their defaults. A missing
// file is not an error: the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := loadConfigInto(path, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// loadConfigInto overlays the file at path onto cfg.
func loadConfigInto(path string, cfg *Config) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			Logger().Debug("ranger: config file not found, using defaults", "path", path)
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return nil
}

// Validate reports settings a World cannot start with.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.ViewWidth < 0 || c.ViewHeight < 0 {
		return fmt.Errorf("invalid view size %gx%g", c.ViewWidth, c.ViewHeight)
	}
	return nil
}
