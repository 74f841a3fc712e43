// =======================
// cube/types.go
// =======================

package cube

import (
	"image/color"
	"time"
)

const (
	SpeedX = 0.05 // rotations per second
	SpeedY = 0.15
	SpeedZ = 0.1

	DefaultDrift         = 0.1
	DefaultColorInterval = 100 * time.Millisecond

	VertexCount = 8
)

// Edge is a pair of vertex indices.
type Edge [2]int

// Edges of the cube, in draw order.
var Edges = [12]Edge{
	// back face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// connecting sides
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// LineCap mirrors the canvas lineCap property.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

func (c LineCap) String() string {
	if c == CapRound {
		return "round"
	}
	return "butt"
}

// PivotMode selects the point the cube rotates around.
type PivotMode int

const (
	// PivotFixed keeps the pivot computed at construction. Drift moves
	// the vertices away from it over time, so the cube orbits.
	PivotFixed PivotMode = iota
	// PivotCentroid recomputes the pivot as the vertex centroid each frame.
	PivotCentroid
)

func (m PivotMode) String() string {
	if m == PivotCentroid {
		return "centroid"
	}
	return "fixed"
}

// Layout places the cube as fractions of the surface size.
type Layout struct {
	CenterX   float64 // of width
	CenterY   float64 // of height
	HalfSize  float64 // of height
	LineWidth float64 // of width
}

// DefaultLayout puts the cube at (W/10, H/10) with half-size H/50 and
// line width W/20.
func DefaultLayout() Layout {
	return Layout{
		CenterX:   1.0 / 10,
		CenterY:   1.0 / 10,
		HalfSize:  1.0 / 50,
		LineWidth: 1.0 / 20,
	}
}

// Options configures an Animator.
type Options struct {
	Background    color.Color
	Stroke        ColorCycle
	SpeedX        float64
	SpeedY        float64
	SpeedZ        float64
	Drift         float64
	ColorInterval time.Duration
	Pivot         PivotMode
	Layout        Layout
	LineCap       LineCap

	// OnFlip is called when the color cycle changes direction.
	OnFlip func(reverse bool)
}

// DefaultOptions is the stock look: black background, a green
// stroke cycling every 100ms, and a round-capped line.
func DefaultOptions() Options {
	stroke, _ := ParseColor("green")
	return Options{
		Background:    color.RGBA{A: 0xff},
		Stroke:        stroke,
		SpeedX:        SpeedX,
		SpeedY:        SpeedY,
		SpeedZ:        SpeedZ,
		Drift:         DefaultDrift,
		ColorInterval: DefaultColorInterval,
		Pivot:         PivotFixed,
		Layout:        DefaultLayout(),
		LineCap:       CapRound,
	}
}
