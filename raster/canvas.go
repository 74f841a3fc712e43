// =======================
// raster/canvas.go
// =======================

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"wirecube/cube"

	"golang.org/x/image/vector"
)

// capSegments is the number of chords used for each semicircular cap.
const capSegments = 12

// Canvas is a software cube.Surface backed by an RGBA image.
type Canvas struct {
	cube.Path

	img       *image.RGBA
	z         *vector.Rasterizer
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	lineCap   cube.LineCap
}

// NewCanvas allocates a width×height canvas. Negative sizes are clamped to zero.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		z:         vector.NewRasterizer(width, height),
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
	}
}

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) SetFillStyle(col color.Color)   { c.fill = col }
func (c *Canvas) SetStrokeStyle(col color.Color) { c.stroke = col }
func (c *Canvas) SetLineWidth(w float64)         { c.lineWidth = w }
func (c *Canvas) SetLineCap(lc cube.LineCap)     { c.lineCap = lc }

// FillRect paints the rectangle with the fill style.
func (c *Canvas) FillRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(c.fill), image.Point{}, draw.Src)
}

// Stroke draws every segment of the current path with the stroke style.
func (c *Canvas) Stroke() {
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	src := image.NewUniform(c.stroke)
	for _, s := range c.Segments() {
		if !c.visible(s) {
			continue
		}
		c.z.Reset(b.Dx(), b.Dy())
		c.z.DrawOp = draw.Over
		if !c.outline(s) {
			continue
		}
		c.z.Draw(c.img, b, src, image.Point{})
	}
}

func (c *Canvas) halfWidth() float64 {
	return math.Max(c.lineWidth, 1) / 2
}

// visible reports whether the segment's stroke can touch the image.
func (c *Canvas) visible(s cube.Segment) bool {
	for _, v := range []float64{s.X0, s.Y0, s.X1, s.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	hw := c.halfWidth()
	w, h := c.Size()
	return math.Max(s.X0, s.X1)+hw >= 0 && math.Min(s.X0, s.X1)-hw <= w &&
		math.Max(s.Y0, s.Y1)+hw >= 0 && math.Min(s.Y0, s.Y1)-hw <= h
}

// outline traces the stroke of s into the rasterizer: a rectangle along
// the segment, closed by semicircles for round caps. It returns false when
// there is nothing to fill.
func (c *Canvas) outline(s cube.Segment) bool {
	hw := c.halfWidth()
	dx, dy := s.X1-s.X0, s.Y1-s.Y0
	length := math.Hypot(dx, dy)

	if length == 0 {
		if c.lineCap != cube.CapRound {
			return false
		}
		c.arc(s.X0, s.Y0, hw, 0, 2*math.Pi, true)
		c.z.ClosePath()
		return true
	}

	nx, ny := -dy/length*hw, dx/length*hw
	normal := math.Atan2(ny, nx)

	c.z.MoveTo(float32(s.X0+nx), float32(s.Y0+ny))
	c.z.LineTo(float32(s.X1+nx), float32(s.Y1+ny))
	if c.lineCap == cube.CapRound {
		c.arc(s.X1, s.Y1, hw, normal, normal-math.Pi, false)
	}
	c.z.LineTo(float32(s.X1-nx), float32(s.Y1-ny))
	c.z.LineTo(float32(s.X0-nx), float32(s.Y0-ny))
	if c.lineCap == cube.CapRound {
		c.arc(s.X0, s.Y0, hw, normal+math.Pi, normal, false)
	}
	c.z.ClosePath()
	return true
}

// arc appends chords around (cx, cy) from angle a0 to a1. With move set
// the first point starts a new contour.
func (c *Canvas) arc(cx, cy, r, a0, a1 float64, move bool) {
	for i := 0; i <= capSegments; i++ {
		a := a0 + (a1-a0)*float64(i)/capSegments
		x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
		if i == 0 && move {
			c.z.MoveTo(x, y)
			continue
		}
		c.z.LineTo(x, y)
	}
}
