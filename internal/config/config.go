package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultTitle       = "bubblescape"
	DefaultFPS         = 60
	DefaultTerminalFPS = 30
	DefaultPreset      = "ocean"
	DefaultTheme       = "minimal"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalidColor  = errors.New("config: invalid color")
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Scene    SceneConfig    `yaml:"scene"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	FPS       int    `yaml:"fps"`
	Resizable bool   `yaml:"resizable"`
}

type TerminalConfig struct {
	FPS   int    `yaml:"fps"`
	Theme string `yaml:"theme"`
}

// SceneConfig seeds the scene. A zero Seed means seed from the clock, and
// Color ("r,g,b") overrides Preset when set.
type SceneConfig struct {
	Seed           int64  `yaml:"seed"`
	InitialBubbles int    `yaml:"initial_bubbles"`
	Preset         string `yaml:"preset"`
	Color          string `yaml:"color,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Title:     DefaultTitle,
			FPS:       DefaultFPS,
			Resizable: true,
		},
		Terminal: TerminalConfig{FPS: DefaultTerminalFPS, Theme: DefaultTheme},
		Scene:    SceneConfig{Preset: DefaultPreset},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks sizes and that the initial color resolves.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 || c.Terminal.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive")
	}
	if c.Scene.InitialBubbles < 0 {
		return fmt.Errorf("config: initial_bubbles must not be negative")
	}
	_, err := c.InitialColor()
	return err
}

// InitialColor resolves the starting background color from Color or Preset.
func (c *Config) InitialColor() ([3]int, error) {
	if c.Scene.Color != "" {
		return ParseColor(c.Scene.Color)
	}
	p, ok := Presets[c.Scene.Preset]
	if !ok {
		return [3]int{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, c.Scene.Preset, ListPresets())
	}
	return p, nil
}

// ParseColor parses "r,g,b" with channels in 0-255.
func ParseColor(s string) ([3]int, error) {
	var c [3]int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return c, fmt.Errorf("%w: %q needs three channels", ErrInvalidColor, s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return c, fmt.Errorf("%w: %q channel %d", ErrInvalidColor, s, i)
		}
		c[i] = v
	}
	return c, nil
}
