// Package config provides the tunable constants of the plotting canvas.
// Values can be overridden from a YAML file; anything the file leaves out
// keeps its default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the canvas needs at startup
type Config struct {
	// Drawing surface and window
	Window WindowConfig `yaml:"window"`

	// Grid lines and axis labels
	Grid GridConfig `yaml:"grid"`

	// Point markers
	Point PointConfig `yaml:"point"`

	// Starting positions, in insertion order
	Points []Position `yaml:"points"`

	// Color the surface is cleared to before each redraw
	Background Color `yaml:"background"`
}

// WindowConfig defines the surface size and window chrome
type WindowConfig struct {
	Width     int    `yaml:"width"`     // Surface width in pixels
	Height    int    `yaml:"height"`    // Surface height in pixels
	Title     string `yaml:"title"`     // Window title
	Resizable bool   `yaml:"resizable"` // Window may be resized (surface is scaled, not grown)
}

// GridConfig defines the background grid
type GridConfig struct {
	Step       int     `yaml:"step"`        // Distance between grid lines
	LineColor  Color   `yaml:"line_color"`  // Grid line color
	LineWidth  float64 `yaml:"line_width"`  // Grid line width
	LabelColor Color   `yaml:"label_color"` // Axis label color
	LabelScale float64 `yaml:"label_scale"` // Axis label size multiplier
}

// PointConfig defines how points are drawn and hit-tested
type PointConfig struct {
	Radius         float64 `yaml:"radius"`           // Draw and hit radius
	FillColor      Color   `yaml:"fill_color"`       // Circle fill
	StrokeColor    Color   `yaml:"stroke_color"`     // Circle outline
	StrokeWidth    float64 `yaml:"stroke_width"`     // Outline width
	SelectedColor  *Color  `yaml:"selected_color"`   // Fill for selected points (nil = same as fill)
	ClampToSurface bool    `yaml:"clamp_to_surface"` // Keep dragged points inside the surface
}

// Position is a point's starting location in surface pixels
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultConfig returns the stock canvas: an 800x600 surface with a 50px grid
// and three red points.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Point Plot",
		},
		Grid: GridConfig{
			Step:       50,
			LineColor:  MustParseColor("#ddd"),
			LineWidth:  1,
			LabelColor: MustParseColor("black"),
			LabelScale: 1,
		},
		Point: PointConfig{
			Radius:      10,
			FillColor:   MustParseColor("red"),
			StrokeColor: MustParseColor("red"),
			StrokeWidth: 1,
		},
		Points: []Position{
			{X: 100, Y: 100},
			{X: 200, Y: 200},
			{X: 300, Y: 150},
		},
		Background: MustParseColor("white"),
	}
}

// LoadConfig loads canvas config from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected so typos don't silently fall back to defaults.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate reports the first setting that can't produce a usable canvas
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("invalid config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Grid.Step <= 0:
		return fmt.Errorf("invalid config: grid step %d must be positive", c.Grid.Step)
	case c.Grid.LineWidth <= 0:
		return fmt.Errorf("invalid config: grid line width %g must be positive", c.Grid.LineWidth)
	case c.Grid.LabelScale <= 0:
		return fmt.Errorf("invalid config: label scale %g must be positive", c.Grid.LabelScale)
	case c.Point.Radius <= 0:
		return fmt.Errorf("invalid config: point radius %g must be positive", c.Point.Radius)
	case c.Point.StrokeWidth < 0:
		return fmt.Errorf("invalid config: point stroke width %g must not be negative", c.Point.StrokeWidth)
	}
	return nil
}
