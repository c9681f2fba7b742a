package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.UI.PageSize != 8 {
		t.Errorf("PageSize = %d, want default 8", cfg.UI.PageSize)
	}
	if cfg.RefreshInterval() != 4*time.Second {
		t.Errorf("RefreshInterval = %v, want 4s", cfg.RefreshInterval())
	}
	if cfg.UI.DeploymentKey != "kiosk" {
		t.Errorf("DeploymentKey = %q, want %q", cfg.UI.DeploymentKey, "kiosk")
	}
}

func TestLoadFromOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  url: "http://tracker.local:9000"
  token: "secret"
ui:
  page_size: 10
  refresh_ms: 2000
  deployment_key: "kitchen"
slider:
  min: 30
  max: 200
swipe:
  max_duration_ms: 0
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Server.URL != "http://tracker.local:9000" {
		t.Errorf("URL = %q", cfg.Server.URL)
	}
	if cfg.UI.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.UI.PageSize)
	}
	if cfg.RefreshInterval() != 2*time.Second {
		t.Errorf("RefreshInterval = %v, want 2s", cfg.RefreshInterval())
	}
	if cfg.Slider.Min != 30 || cfg.Slider.Max != 200 {
		t.Errorf("slider range = %v..%v, want 30..200", cfg.Slider.Min, cfg.Slider.Max)
	}
	if cfg.SwipeMaxDuration() != 0 {
		t.Errorf("SwipeMaxDuration = %v, want 0 (disabled)", cfg.SwipeMaxDuration())
	}
	// Unset sections keep their defaults.
	if cfg.Swipe.Ratio != 1.2 {
		t.Errorf("Ratio = %v, want default 1.2", cfg.Swipe.Ratio)
	}
}

func TestLoadFromRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero page size", "ui:\n  page_size: 0\n"},
		{"inverted slider range", "slider:\n  min: 200\n  max: 100\n"},
		{"not yaml", "{{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
