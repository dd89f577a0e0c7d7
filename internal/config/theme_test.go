package config

import (
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	dir := isolate(t)
	themePath := filepath.Join(dir, "theme.yaml")
	writeFile(t, themePath, `theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`)
	t.Setenv("KANBAN_THEME_FILE", themePath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Edit != "#0000FF" {
		t.Errorf("Expected edit to be #0000FF, got %s", cfg.ColorScheme.Edit)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete != DefaultColorScheme().Delete {
		t.Errorf("Expected delete to keep its default, got %s", cfg.ColorScheme.Delete)
	}
}

func TestMonochromePreset(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#123456" {
		t.Errorf("custom accent overwritten: %s", scheme.Accent)
	}
	if scheme.Normal != MonochromeColorScheme().Normal {
		t.Errorf("Normal = %s, want monochrome default", scheme.Normal)
	}
}
