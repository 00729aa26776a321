package dioteko

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default window settings used when a config omits them.
const (
	DefaultWidth  = 800
	DefaultHeight = 450
	DefaultTitle  = "dioteko"
)

// WindowConfig is the optional YAML description of a window:
//
//	width: 800
//	height: 450
//	title: my game
//	flags: [vsync_hint, resizable]
//	exit_key: ESCAPE
//	target_fps: 60
//	icon: assets/icon.png
type WindowConfig struct {
	Width     int         `yaml:"width,omitempty"`
	Height    int         `yaml:"height,omitempty"`
	Title     string      `yaml:"title,omitempty"`
	Flags     ConfigFlags `yaml:"flags,omitempty"`
	ExitKey   *Key        `yaml:"exit_key,omitempty"`
	TargetFPS int         `yaml:"target_fps,omitempty"`
	Icon      string      `yaml:"icon,omitempty"`
}

// LoadWindowConfig reads path if it exists. A missing file yields the
// defaults.
func LoadWindowConfig(path string) (*WindowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := &WindowConfig{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseWindowConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseWindowConfig decodes a YAML window config and fills in defaults.
func ParseWindowConfig(data []byte) (*WindowConfig, error) {
	var cfg WindowConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("window size %dx%d is negative", cfg.Width, cfg.Height)
	}
	if cfg.TargetFPS < 0 {
		return nil, fmt.Errorf("target_fps %d is negative", cfg.TargetFPS)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *WindowConfig) applyDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		c.Title = DefaultTitle
	}
}

// Builder returns a WindowBuilder for this config. The icon path is not
// loaded here; use Build for that.
func (c *WindowConfig) Builder(engine Engine) *WindowBuilder {
	b := NewWindowBuilder(engine, c.Width, c.Height, c.Title).
		WithFlags(c.Flags).
		WithTargetFPS(c.TargetFPS)
	if c.ExitKey != nil {
		b.WithExitKey(*c.ExitKey)
	}
	return b
}

// Build creates the window described by the config. If an icon is
// configured it is loaded, lent to the window for the duration of Build and
// released again.
func (c *WindowConfig) Build(engine Engine) (*Window, error) {
	b := c.Builder(engine)
	if c.Icon == "" {
		return b.Build()
	}
	icon, err := LoadImage(engine, c.Icon)
	if err != nil {
		return nil, fmt.Errorf("window icon: %w", err)
	}
	w, err := b.WithIcon(icon).Build()
	if relErr := icon.Release(); relErr != nil && err == nil {
		err = relErr
	}
	return w, err
}
