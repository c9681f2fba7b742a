// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	UI     UIConfig     `yaml:"ui"`
	Swipe  SwipeConfig  `yaml:"swipe"`
	Slider SliderConfig `yaml:"slider"`
}

// ServerConfig holds the task backend connection settings.
type ServerConfig struct {
	// URL is the backend base URL, e.g. "http://tracker.local:8000".
	URL string `yaml:"url"`

	// Token is an optional bearer token.
	Token string `yaml:"token,omitempty"`
}

// UIConfig holds the kiosk display settings.
type UIConfig struct {
	// PageSize is the fixed tile count per page (8 => 4x2, 10 => 5x2).
	PageSize int `yaml:"page_size"`

	// RefreshMS is the polling interval in milliseconds.
	RefreshMS int `yaml:"refresh_ms"`

	// DeploymentKey names this kiosk in the local state store so several
	// deployments can share one machine without stealing each other's
	// remembered page.
	DeploymentKey string `yaml:"deployment_key"`

	// Notify enables desktop notifications when a tile becomes achieved.
	Notify bool `yaml:"notify"`
}

// SwipeConfig tunes drag-to-page detection, in terminal cells.
type SwipeConfig struct {
	MinCells      float64 `yaml:"min_cells"`
	Ratio         float64 `yaml:"ratio"`
	MaxDurationMS int     `yaml:"max_duration_ms"`
}

// SliderConfig bounds the numeric-entry slider. The precise input field may
// exceed these bounds; only the slider's visual position is clamped.
type SliderConfig struct {
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Step       float64 `yaml:"step"`
	CoarseStep float64 `yaml:"coarse_step"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL: "http://localhost:8000",
		},
		UI: UIConfig{
			PageSize:      8,
			RefreshMS:     4000,
			DeploymentKey: "kiosk",
			Notify:        true,
		},
		Swipe: SwipeConfig{
			MinCells:      8,
			Ratio:         1.2,
			MaxDurationMS: 600,
		},
		Slider: SliderConfig{
			Min:        0,
			Max:        300,
			Step:       0.1,
			CoarseStep: 1,
		},
	}
}

// RefreshInterval returns the polling interval as a duration.
func (c *Config) RefreshInterval() time.Duration {
	if c.UI.RefreshMS <= 0 {
		return 4 * time.Second
	}
	return time.Duration(c.UI.RefreshMS) * time.Millisecond
}

// SwipeMaxDuration returns the swipe time bound; zero disables it.
func (c *Config) SwipeMaxDuration() time.Duration {
	if c.Swipe.MaxDurationMS <= 0 {
		return 0
	}
	return time.Duration(c.Swipe.MaxDurationMS) * time.Millisecond
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "taskdeck")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// StatePath returns the full path to the local UI state database.
func StatePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.db"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.UI.PageSize < 1 {
		return nil, fmt.Errorf("page_size must be positive, got %d", cfg.UI.PageSize)
	}
	if cfg.Slider.Max <= cfg.Slider.Min {
		return nil, fmt.Errorf("slider max (%v) must exceed min (%v)", cfg.Slider.Max, cfg.Slider.Min)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
