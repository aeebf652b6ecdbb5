package chart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds the colour palette of a chart.
type Theme struct {
	Name       string `yaml:"name" json:"name"`
	Background string `yaml:"background" json:"background"`
	Grid       string `yaml:"grid" json:"grid"`
	UpColor    string `yaml:"up_color" json:"up_color"`
	DownColor  string `yaml:"down_color" json:"down_color"`
	Text       string `yaml:"text" json:"text"`
	Border     string `yaml:"border" json:"border"`
	Accent     string `yaml:"accent" json:"accent"`
}

// DarkTheme returns the default dark palette.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: "#131722",
		Grid:       "#1e222d",
		UpColor:    "#26a69a",
		DownColor:  "#ef5350",
		Text:       "#b2b5be",
		Border:     "#2a2e39",
		Accent:     "#2196f3",
	}
}

// LightTheme returns the default light palette.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: "#ffffff",
		Grid:       "#f0f3fa",
		UpColor:    "#089981",
		DownColor:  "#f23645",
		Text:       "#131722",
		Border:     "#e0e3eb",
		Accent:     "#2962ff",
	}
}

// ThemeByName resolves a named preset, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// fillDefaults replaces empty fields from the dark preset so partial theme
// files stay usable.
func (t Theme) fillDefaults() Theme {
	def := DarkTheme()
	if t.Background == "" {
		t.Background = def.Background
	}
	if t.Grid == "" {
		t.Grid = def.Grid
	}
	if t.UpColor == "" {
		t.UpColor = def.UpColor
	}
	if t.DownColor == "" {
		t.DownColor = def.DownColor
	}
	if t.Text == "" {
		t.Text = def.Text
	}
	if t.Border == "" {
		t.Border = def.Border
	}
	if t.Accent == "" {
		t.Accent = def.Accent
	}
	return t
}

// LoadTheme reads a theme from a YAML file, filling missing fields with the
// dark defaults.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return t.fillDefaults(), nil
}

// SaveTheme writes a theme as YAML.
func SaveTheme(path string, t Theme) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}
