package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the host shell's settings.
type Config struct {
	Window WindowConfig `json:"window"`
	Video  VideoConfig  `json:"video"`

	configPath string
}

// WindowConfig sizes the play window.
type WindowConfig struct {
	Scale      int  `json:"scale"` // NES resolution multiplier
	Fullscreen bool `json:"fullscreen"`
}

// VideoConfig selects rendering behavior.
type VideoConfig struct {
	Backend string `json:"backend"` // "ebitengine" or "headless"
	VSync   bool   `json:"vsync"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Scale: 3,
		},
		Video: VideoConfig{
			Backend: "ebitengine",
			VSync:   true,
		},
	}
}

// DefaultConfigPath places the config under the user's config dir.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "famigo.json"
	}
	return filepath.Join(dir, "famigo", "config.json")
}

// LoadConfig reads a config file, falling back to defaults when the
// file does not exist yet.
func LoadConfig(path string) (*Config, error) {
	config := NewConfig()
	config.configPath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if config.Window.Scale < 1 {
		config.Window.Scale = 1
	}
	return config, nil
}

// Save writes the config back to its path.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(c.configPath, data, 0o644)
}
