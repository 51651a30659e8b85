package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds everything the application reads at startup.
type Config struct {
	Grid    GridConfig    `yaml:"grid" toml:"grid"`
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Colors  ColorConfig   `yaml:"colors" toml:"colors"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

type GridConfig struct {
	Size   int     `yaml:"size" toml:"size"`     // rings around the center tile, >= 1
	Radius float64 `yaml:"radius" toml:"radius"` // tile circumradius in px
}

// WindowConfig sizes the drawing surface. Zero width or height means the
// full monitor size.
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// RGBA is a color written as [r, g, b, a] in config files.
type RGBA [4]uint8

func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

type ColorConfig struct {
	Neutral    RGBA `yaml:"neutral" toml:"neutral"`
	Highlight  RGBA `yaml:"highlight" toml:"highlight"`
	Background RGBA `yaml:"background" toml:"background"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

var (
	ErrInvalidSize   = errors.New("grid size must be at least 1")
	ErrInvalidRadius = errors.New("tile radius must be positive")
	ErrInvalidWindow = errors.New("window dimensions must not be negative")
)

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		Grid: GridConfig{
			Size:   4,
			Radius: 30,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Hexscape",
		},
		Colors: ColorConfig{
			Neutral:    RGBA{200, 200, 200, 255},
			Highlight:  RGBA{100, 100, 255, 255},
			Background: RGBA{32, 32, 32, 255},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML or TOML file on top of Defaults. Files ending in .toml
// are decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that would make startup fail.
func (c *Config) Validate() error {
	if c.Grid.Size < 1 {
		return fmt.Errorf("grid.size=%d: %w", c.Grid.Size, ErrInvalidSize)
	}
	if c.Grid.Radius <= 0 {
		return fmt.Errorf("grid.radius=%g: %w", c.Grid.Radius, ErrInvalidRadius)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window=%dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidWindow)
	}
	return nil
}
