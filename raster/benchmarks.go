// =======================
// raster/benchmarks.go
// =======================

package raster

import (
	"fmt"
	"image"
	"io"
	"time"

	"wirecube/cube"
)

// DefaultBenchmarkSizes covers small embeds up to full HD.
var DefaultBenchmarkSizes = []image.Point{
	{320, 180},
	{640, 360},
	{1280, 720},
	{1920, 1080},
}

// BenchmarkInfo holds performance metrics
type BenchmarkInfo struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Frames     int           `json:"frames"`
	FrameTime  time.Duration `json:"frame_time"`
	FPS        float64       `json:"frames_per_second"`
	Megapixels float64       `json:"megapixels_per_second"`
}

// BenchmarkCanvas renders frames on a software canvas of each size.
func BenchmarkCanvas(sizes []image.Point, frames int, anim cube.Options) ([]BenchmarkInfo, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("invalid frame count %d", frames)
	}
	results := make([]BenchmarkInfo, 0, len(sizes))

	for _, size := range sizes {
		if size.X <= 0 || size.Y <= 0 {
			return nil, fmt.Errorf("invalid canvas size %v", size)
		}
		canvas := NewCanvas(size.X, size.Y)
		a := cube.NewForSurface(canvas, anim)
		sched := cube.NewScheduler(cube.DefaultInterval, nil)

		start := time.Now()
		sched.Steps(frames, func(now time.Duration) {
			a.Frame(now, canvas)
		})
		duration := time.Since(start)

		seconds := duration.Seconds()
		if seconds == 0 {
			seconds = 1e-9
		}
		pixels := float64(size.X * size.Y * frames)

		results = append(results, BenchmarkInfo{
			Width:      size.X,
			Height:     size.Y,
			Frames:     frames,
			FrameTime:  duration / time.Duration(frames),
			FPS:        float64(frames) / seconds,
			Megapixels: pixels / 1e6 / seconds,
		})
	}

	return results, nil
}

// PrintBenchmarkResults displays benchmark results in a formatted table
func PrintBenchmarkResults(w io.Writer, results []BenchmarkInfo) {
	fmt.Fprintln(w, "Canvas Benchmark Results")
	fmt.Fprintln(w, "========================")
	fmt.Fprintf(w, "%-11s | %-12s | %-10s | %-10s\n",
		"Size", "Time/Frame", "FPS", "MPix/s")
	fmt.Fprintln(w, "------------|--------------|------------|-----------")

	for _, result := range results {
		fmt.Fprintf(w, "%-11s | %-12s | %-10.1f | %-10.1f\n",
			fmt.Sprintf("%dx%d", result.Width, result.Height),
			result.FrameTime.String(),
			result.FPS,
			result.Megapixels)
	}
}
