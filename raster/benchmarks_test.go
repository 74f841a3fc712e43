package raster

import (
	"bytes"
	"image"
	"strings"
	"testing"
	"time"

	"wirecube/cube"
)

func TestBenchmarkCanvas(t *testing.T) {
	sizes := []image.Point{{64, 36}, {128, 72}}
	results, err := BenchmarkCanvas(sizes, 3, cube.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(sizes) {
		t.Fatalf("got %d results, want %d", len(results), len(sizes))
	}
	for i, r := range results {
		if r.Width != sizes[i].X || r.Height != sizes[i].Y || r.Frames != 3 {
			t.Errorf("result %d = %+v", i, r)
		}
		if r.FPS <= 0 {
			t.Errorf("result %d FPS = %v", i, r.FPS)
		}
	}

	var buf bytes.Buffer
	PrintBenchmarkResults(&buf, results)
	if !strings.Contains(buf.String(), "128x72") {
		t.Errorf("table missing a row:\n%s", buf.String())
	}
}

func TestBenchmarkCanvasErrors(t *testing.T) {
	if _, err := BenchmarkCanvas(DefaultBenchmarkSizes, 0, cube.DefaultOptions()); err == nil {
		t.Error("expected error for zero frames")
	}
	if _, err := BenchmarkCanvas([]image.Point{{0, 10}}, 1, cube.DefaultOptions()); err == nil {
		t.Error("expected error for empty canvas")
	}
}

func BenchmarkCanvasFrame(b *testing.B) {
	c := NewCanvas(640, 360)
	a := cube.NewForSurface(c, cube.DefaultOptions())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Frame(time.Duration(i)*cube.DefaultInterval, c)
	}
}
