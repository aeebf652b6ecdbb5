package chart

import (
	"path/filepath"
	"testing"
)

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("light"); got.Name != "light" {
		t.Errorf("ThemeByName(light).Name = %q", got.Name)
	}
	if got := ThemeByName("unknown"); got.Name != "dark" {
		t.Errorf("unknown names should fall back to dark, got %q", got.Name)
	}
}

func TestThemeFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	want := Theme{
		Name:       "custom",
		Background: "#000000",
		Grid:       "#111111",
		UpColor:    "#00ff00",
		DownColor:  "#ff0000",
		Text:       "#eeeeee",
		Border:     "#222222",
		Accent:     "#00aaff",
	}
	if err := SaveTheme(path, want); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}
	got, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadThemeFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := SaveTheme(path, Theme{Name: "partial", Background: "#0a0a0a"}); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}
	got, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if got.Background != "#0a0a0a" {
		t.Errorf("explicit field overwritten: %q", got.Background)
	}
	if got.UpColor != DarkTheme().UpColor {
		t.Errorf("missing field not defaulted: %q", got.UpColor)
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
