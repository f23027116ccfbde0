// Package config loads console configuration from environment variables.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the console.
type Config struct {
	// DataDir holds the JSON asset stores and the score database.
	DataDir string `env:"PIXELATE_DATA_DIR" envDefault:"data"`

	// FPS is the frame rate of the console loop.
	FPS int `env:"PIXELATE_FPS" envDefault:"60"`

	// Sound enables beep effects at startup.
	Sound bool `env:"PIXELATE_SOUND" envDefault:"true"`

	// Listen, when set (e.g. ":8137"), serves the WebSocket frame
	// broadcaster for remote grid viewers.
	Listen string `env:"PIXELATE_LISTEN"`

	// PhotoDir, when set, supplies extra vacation gallery slides.
	PhotoDir string `env:"PIXELATE_PHOTO_DIR"`

	// LogFile, when set, receives structured logs. Logging to the tty
	// would corrupt the fullscreen display.
	LogFile string `env:"PIXELATE_LOG_FILE"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FPS < 10 || cfg.FPS > 240 {
		return nil, fmt.Errorf("fps out of range: %d", cfg.FPS)
	}
	return cfg, nil
}

// SpritesPath returns the sprite store file path.
func (c *Config) SpritesPath() string {
	return filepath.Join(c.DataDir, "sprites.json")
}

// FontOverridesPath returns the font override store file path.
func (c *Config) FontOverridesPath() string {
	return filepath.Join(c.DataDir, "font_overrides.json")
}

// ScoresPath returns the high-score database file path.
func (c *Config) ScoresPath() string {
	return filepath.Join(c.DataDir, "scores.db")
}
