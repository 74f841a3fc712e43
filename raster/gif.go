// =======================
// raster/gif.go
// =======================

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"wirecube/cube"

	"github.com/ericpauley/go-quantize/quantize"
)

// ExportOptions controls an offline GIF render.
type ExportOptions struct {
	Width  int
	Height int
	Frames int
	Step   time.Duration // spacing between frame timestamps
	Glow   float64       // blur radius, 0 disables
	Colors int           // palette size per frame, at most 256
	Dither bool
}

// DefaultExportOptions renders four seconds at 50 frames per second.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Width:  320,
		Height: 240,
		Frames: 200,
		Step:   20 * time.Millisecond,
		Colors: 256,
	}
}

// Validate checks the options for a renderable GIF.
func (o ExportOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid gif size %dx%d", o.Width, o.Height)
	}
	if o.Frames <= 0 {
		return fmt.Errorf("invalid frame count %d", o.Frames)
	}
	if o.Step < 10*time.Millisecond {
		return fmt.Errorf("frame step %v is below the 10ms gif resolution", o.Step)
	}
	if o.Colors < 2 || o.Colors > 256 {
		return fmt.Errorf("palette size %d out of range 2..256", o.Colors)
	}
	return nil
}

// Render drives an animator over a fresh canvas and returns the paletted
// frames together with their delays in hundredths of a second.
func Render(opts ExportOptions, anim cube.Options) ([]*image.Paletted, []int, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	canvas := NewCanvas(opts.Width, opts.Height)
	a := cube.NewForSurface(canvas, anim)
	sched := cube.NewScheduler(opts.Step, cube.NewManualClock(0))
	delay := int(opts.Step / (10 * time.Millisecond))

	var drawer draw.Drawer = draw.Src
	if opts.Dither {
		drawer = draw.FloydSteinberg
	}
	q := quantize.MedianCutQuantizer{}

	frames := make([]*image.Paletted, 0, opts.Frames)
	delays := make([]int, 0, opts.Frames)
	sched.Steps(opts.Frames, func(now time.Duration) {
		a.Frame(now, canvas)
		img := Glow(canvas.Image(), opts.Glow)

		pal := q.Quantize(make(color.Palette, 0, opts.Colors), img)
		pm := image.NewPaletted(img.Bounds(), pal)
		drawer.Draw(pm, pm.Bounds(), img, img.Bounds().Min)

		frames = append(frames, pm)
		delays = append(delays, delay)
	})
	return frames, delays, nil
}

// Export renders the animation and encodes it as a looping GIF.
func Export(w io.Writer, opts ExportOptions, anim cube.Options) error {
	frames, delays, err := Render(opts, anim)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if err := gif.EncodeAll(w, &gif.GIF{Image: frames, Delay: delays}); err != nil {
		return fmt.Errorf("gif encoding failed: %w", err)
	}
	return nil
}
