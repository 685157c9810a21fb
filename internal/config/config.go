// Package config loads viewer configuration from a YAML file with
// compiled-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level viewer configuration.
type Config struct {
	// Assets is a directory path or http(s) base URL holding
	// metadata.json and floor<N>.svg.
	Assets string       `yaml:"assets"`
	Floors int          `yaml:"floors"`
	Window WindowConfig `yaml:"window"`
	View   ViewConfig   `yaml:"view"`
}

// WindowConfig controls the initial window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ViewConfig bounds the camera.
type ViewConfig struct {
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Assets == "" {
		c.Assets = "assets"
	}
	if c.Floors < 1 {
		c.Floors = 1
	}
	if c.Window.Title == "" {
		c.Window.Title = "Floorview"
	}
	if c.Window.Width < 1 {
		c.Window.Width = 1000
	}
	if c.Window.Height < 1 {
		c.Window.Height = 720
	}
	if c.View.MinScale <= 0 {
		c.View.MinScale = 0.75
	}
	if c.View.MaxScale <= 0 {
		c.View.MaxScale = 3.0
	}
	if c.View.MaxScale < c.View.MinScale {
		c.View.MaxScale = c.View.MinScale
	}
}
