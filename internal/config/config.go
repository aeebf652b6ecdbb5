// Package config loads gallery settings from environment variables.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the chart gallery generator.
type Config struct {
	// Output
	OutputDir string `env:"GALLERY_OUTPUT_DIR,default=./gallery"`

	// Chart appearance
	Theme  string  `env:"GALLERY_THEME,default=dark"`
	Width  float64 `env:"GALLERY_WIDTH,default=960"`
	Height float64 `env:"GALLERY_HEIGHT,default=600"`

	// Synthetic data
	Bars int   `env:"GALLERY_BARS,default=120"`
	Seed int64 `env:"GALLERY_SEED,default=42"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid gallery size %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.Bars <= 0 {
		return nil, fmt.Errorf("invalid bar count %d", cfg.Bars)
	}
	return &cfg, nil
}
