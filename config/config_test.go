package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wirecube/cube"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wirecube.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stroke != "green" || cfg.ColorInterval != 100*time.Millisecond {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
stroke: "#050505"
color_interval: 250ms
pivot: centroid
speed_y: 0.3
layout:
  center_x: 0.5
  center_y: 0.5
  half_size: 0.1
  line_width: 0.01
gif:
  frames: 10
  glow: 2.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stroke != "#050505" || cfg.ColorInterval != 250*time.Millisecond || cfg.Pivot != "centroid" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.SpeedX != cube.SpeedX || cfg.SpeedY != 0.3 {
		t.Errorf("speeds = %v/%v", cfg.SpeedX, cfg.SpeedY)
	}
	if cfg.GIF.Frames != 10 || cfg.GIF.Glow != 2.5 || cfg.GIF.Width != 320 {
		t.Errorf("gif section = %+v", cfg.GIF)
	}

	opts, err := cfg.Options(false)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Stroke.String() != "#050505" || opts.Pivot != cube.PivotCentroid {
		t.Errorf("options stroke=%s pivot=%s", opts.Stroke, opts.Pivot)
	}
	if opts.Layout.CenterX != 0.5 || opts.SpeedY != 0.3 {
		t.Errorf("options layout=%+v speedY=%v", opts.Layout, opts.SpeedY)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if cfg.FPS != 60 {
		t.Errorf("fps = %d, want default 60", cfg.FPS)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown field", "colour: red\n", "colour"},
		{"hex stroke", "stroke: \"#ff0000\"\n", "stroke"},
		{"bad background", "background: nope\n", "background"},
		{"negative speed", "speed_z: -1\n", "speeds"},
		{"negative drift", "drift: -0.1\n", "drift"},
		{"zero interval", "color_interval: 0s\n", "color_interval"},
		{"pivot", "pivot: orbit\n", "pivot"},
		{"fps", "fps: 0\n", "fps"},
		{"layout", "layout:\n  half_size: -1\n", "half_size"},
		{"gif", "gif:\n  colors: 1\n", "gif"},
		{"window", "window:\n  width: 0\n", "window"},
	}
	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want it to mention %q", tt.name, err, tt.want)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestTerminalLayoutOverride(t *testing.T) {
	cfg := Default()
	term, err := cfg.Options(true)
	if err != nil {
		t.Fatal(err)
	}
	if term.Layout.CenterX != 0.5 {
		t.Errorf("terminal layout = %+v", term.Layout)
	}

	plain, err := cfg.Options(false)
	if err != nil {
		t.Fatal(err)
	}
	if plain.Layout != cube.DefaultLayout() {
		t.Errorf("default layout = %+v, want %+v", plain.Layout, cube.DefaultLayout())
	}

	cfg.Terminal.Layout = nil
	term, _ = cfg.Options(true)
	if term.Layout != cube.DefaultLayout() {
		t.Errorf("without override terminal layout = %+v", term.Layout)
	}
}

func TestParsePivot(t *testing.T) {
	for in, want := range map[string]cube.PivotMode{"": cube.PivotFixed, "fixed": cube.PivotFixed, "centroid": cube.PivotCentroid} {
		got, err := ParsePivot(in)
		if err != nil || got != want {
			t.Errorf("ParsePivot(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePivot("wobble"); err == nil {
		t.Error("ParsePivot(wobble) should fail")
	}
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "wirecube.example.yaml"))
	if err != nil {
		t.Fatalf("example config: %v", err)
	}
	def := Default()
	if cfg.Stroke != def.Stroke || cfg.GIF != def.GIF || cfg.Window != def.Window {
		t.Errorf("example config drifted from defaults: %+v", cfg)
	}
	if *cfg.Terminal.Layout != *def.Terminal.Layout {
		t.Errorf("terminal layout %+v, want %+v", *cfg.Terminal.Layout, *def.Terminal.Layout)
	}
}
