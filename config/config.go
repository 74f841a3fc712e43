// =======================
// config/config.go
// =======================

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"wirecube/cube"
	"wirecube/raster"

	"gopkg.in/yaml.v3"
)

// Layout places the cube as fractions of the surface size.
type Layout struct {
	CenterX   float64 `yaml:"center_x"`
	CenterY   float64 `yaml:"center_y"`
	HalfSize  float64 `yaml:"half_size"`
	LineWidth float64 `yaml:"line_width"`
}

// Terminal holds settings only the terminal host reads.
type Terminal struct {
	Layout *Layout `yaml:"layout"`
	Status bool    `yaml:"status"`
}

// Window holds the desktop window settings.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// GIF holds the offline export settings.
type GIF struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Frames int           `yaml:"frames"`
	Step   time.Duration `yaml:"step"`
	Glow   float64       `yaml:"glow"`
	Colors int           `yaml:"colors"`
	Dither bool          `yaml:"dither"`
}

// Config is the on-disk configuration.
type Config struct {
	Background    string        `yaml:"background"`
	Stroke        string        `yaml:"stroke"`
	SpeedX        float64       `yaml:"speed_x"`
	SpeedY        float64       `yaml:"speed_y"`
	SpeedZ        float64       `yaml:"speed_z"`
	Drift         float64       `yaml:"drift"`
	ColorInterval time.Duration `yaml:"color_interval"`
	Pivot         string        `yaml:"pivot"`
	Layout        Layout        `yaml:"layout"`
	FPS           int           `yaml:"fps"`
	Terminal      Terminal      `yaml:"terminal"`
	Window        Window        `yaml:"window"`
	GIF           GIF           `yaml:"gif"`
}

// Default returns the stock configuration: a green
// cube on black, a tenth of the way into the surface.
func Default() Config {
	l := cube.DefaultLayout()
	g := raster.DefaultExportOptions()
	return Config{
		Background:    "black",
		Stroke:        "green",
		SpeedX:        cube.SpeedX,
		SpeedY:        cube.SpeedY,
		SpeedZ:        cube.SpeedZ,
		Drift:         cube.DefaultDrift,
		ColorInterval: cube.DefaultColorInterval,
		Pivot:         cube.PivotFixed.String(),
		Layout:        Layout(l),
		FPS:           60,
		Terminal: Terminal{
			Layout: &Layout{CenterX: 0.5, CenterY: 0.5, HalfSize: 0.2, LineWidth: 0.01},
			Status: true,
		},
		Window: Window{Title: "wirecube", Width: 640, Height: 480},
		GIF: GIF{
			Width:  g.Width,
			Height: g.Height,
			Frames: g.Frames,
			Step:   g.Step,
			Glow:   g.Glow,
			Colors: g.Colors,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	if _, err := cube.ParseRGBA(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := cube.ParseColor(c.Stroke); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	if c.SpeedX < 0 || c.SpeedY < 0 || c.SpeedZ < 0 {
		return fmt.Errorf("speeds must not be negative")
	}
	if c.Drift < 0 {
		return fmt.Errorf("drift must not be negative")
	}
	if c.ColorInterval <= 0 {
		return fmt.Errorf("color_interval must be positive, got %v", c.ColorInterval)
	}
	if _, err := ParsePivot(c.Pivot); err != nil {
		return err
	}
	if err := c.Layout.validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if c.Terminal.Layout != nil {
		if err := c.Terminal.Layout.validate(); err != nil {
			return fmt.Errorf("terminal layout: %w", err)
		}
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range 1..240", c.FPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Export().Validate(); err != nil {
		return fmt.Errorf("gif: %w", err)
	}
	return nil
}

func (l Layout) validate() error {
	for name, v := range map[string]float64{
		"center_x":   l.CenterX,
		"center_y":   l.CenterY,
		"half_size":  l.HalfSize,
		"line_width": l.LineWidth,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

// ParsePivot maps a pivot name to its mode.
func ParsePivot(s string) (cube.PivotMode, error) {
	switch s {
	case "", "fixed":
		return cube.PivotFixed, nil
	case "centroid":
		return cube.PivotCentroid, nil
	}
	return cube.PivotFixed, fmt.Errorf("unknown pivot mode %q (want fixed or centroid)", s)
}

// Options converts the configuration into animator options. The terminal
// host passes terminal=true to use its layout override.
func (c Config) Options(terminal bool) (cube.Options, error) {
	opts := cube.DefaultOptions()

	bg, err := cube.ParseRGBA(c.Background)
	if err != nil {
		return opts, fmt.Errorf("background: %w", err)
	}
	stroke, err := cube.ParseColor(c.Stroke)
	if err != nil {
		return opts, fmt.Errorf("stroke: %w", err)
	}
	pivot, err := ParsePivot(c.Pivot)
	if err != nil {
		return opts, err
	}

	layout := c.Layout
	if terminal && c.Terminal.Layout != nil {
		layout = *c.Terminal.Layout
	}

	opts.Background = bg
	opts.Stroke = stroke
	opts.SpeedX, opts.SpeedY, opts.SpeedZ = c.SpeedX, c.SpeedY, c.SpeedZ
	opts.Drift = c.Drift
	opts.ColorInterval = c.ColorInterval
	opts.Pivot = pivot
	opts.Layout = cube.Layout(layout)
	return opts, nil
}

// Export converts the gif section into export options.
func (c Config) Export() raster.ExportOptions {
	return raster.ExportOptions{
		Width:  c.GIF.Width,
		Height: c.GIF.Height,
		Frames: c.GIF.Frames,
		Step:   c.GIF.Step,
		Glow:   c.GIF.Glow,
		Colors: c.GIF.Colors,
		Dither: c.GIF.Dither,
	}
}
