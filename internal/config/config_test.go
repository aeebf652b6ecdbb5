package config

import (
	"context"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "./gallery" {
		t.Errorf("OutputDir = %q, want ./gallery", cfg.OutputDir)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.Width != 960 || cfg.Height != 600 {
		t.Errorf("size = %vx%v, want 960x600", cfg.Width, cfg.Height)
	}
	if cfg.Bars != 120 {
		t.Errorf("Bars = %d, want 120", cfg.Bars)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GALLERY_THEME", "light")
	t.Setenv("GALLERY_BARS", "30")
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.Bars != 30 {
		t.Errorf("Bars = %d, want 30", cfg.Bars)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("GALLERY_BARS", "0")
	if _, err := Load(context.Background()); err == nil {
		t.Error("expected error for zero bars")
	}
}
