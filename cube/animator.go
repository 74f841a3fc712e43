// =======================
// cube/animator.go
// =======================

package cube

import (
	"image/color"
	"math"
	"time"
)

// Animator owns the cube's vertices, its color cycle and frame timing.
// It is not safe for concurrent use; one host loop drives it.
type Animator struct {
	vertices  [VertexCount]Point3D
	pivot     Point3D
	halfSize  float64
	lineWidth float64
	width     float64
	height    float64

	opts  Options
	color ColorCycle

	last        time.Duration
	windowOpen  bool
	sinceCommit time.Duration
	frames      int
}

// New builds the cube for a width×height surface. Negative dimensions are
// treated as zero.
func New(width, height float64, opts Options) *Animator {
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.ColorInterval <= 0 {
		opts.ColorInterval = DefaultColorInterval
	}

	a := &Animator{
		width:     width,
		height:    height,
		opts:      opts,
		color:     opts.Stroke,
		halfSize:  height * opts.Layout.HalfSize,
		lineWidth: width * opts.Layout.LineWidth,
		pivot: Point3D{
			X: width * opts.Layout.CenterX,
			Y: height * opts.Layout.CenterY,
		},
	}
	if a.color.shift == 0 {
		a.color.shift = 1
	}

	c, s := a.pivot, a.halfSize
	a.vertices = [VertexCount]Point3D{
		{c.X - s, c.Y - s, c.Z - s},
		{c.X + s, c.Y - s, c.Z - s},
		{c.X + s, c.Y + s, c.Z - s},
		{c.X - s, c.Y + s, c.Z - s},
		{c.X - s, c.Y - s, c.Z + s},
		{c.X + s, c.Y - s, c.Z + s},
		{c.X + s, c.Y + s, c.Z + s},
		{c.X - s, c.Y + s, c.Z + s},
	}
	return a
}

// NewForSurface builds an animator sized to s and applies the one-time
// line settings to it.
func NewForSurface(s Surface, opts Options) *Animator {
	w, h := s.Size()
	a := New(w, h, opts)
	a.Setup(s)
	return a
}

// Setup applies the fill style, line width and line cap. Canvas hosts keep
// these across frames, so it runs once per surface.
func (a *Animator) Setup(s Surface) {
	s.SetFillStyle(a.opts.Background)
	s.SetLineWidth(a.lineWidth)
	s.SetLineCap(a.opts.LineCap)
}

// Frame advances the animation to now and draws it. Timestamps earlier
// than the previous frame count as zero elapsed time.
func (a *Animator) Frame(now time.Duration, s Surface) {
	dt := now - a.last
	if dt < 0 {
		dt = 0
	} else {
		a.last = now
	}
	a.Update(dt)
	a.Render(s)
}

// Update advances the color cycle and transforms the vertices by dt.
func (a *Animator) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	a.frames++
	a.cycleColor(dt)

	for i := range a.vertices {
		a.vertices[i].Translate(a.opts.Drift)
	}
	if a.opts.Pivot == PivotCentroid {
		a.pivot = centroid(a.vertices[:])
	}

	turns := dt.Seconds() * 2 * math.Pi
	az := turns * a.opts.SpeedZ
	ax := turns * a.opts.SpeedX
	ay := turns * a.opts.SpeedY
	for i := range a.vertices {
		a.vertices[i].Spin(a.pivot, az, ax, ay)
	}
}

// cycleColor commits one color step once more than ColorInterval has
// elapsed since the gate window opened. The frame after a commit reopens
// the window.
func (a *Animator) cycleColor(dt time.Duration) {
	if !a.windowOpen {
		a.windowOpen = true
		a.sinceCommit = 0
		return
	}
	a.sinceCommit += dt
	if a.sinceCommit <= a.opts.ColorInterval {
		return
	}
	a.windowOpen = false
	if a.color.Step() && a.opts.OnFlip != nil {
		a.opts.OnFlip(a.color.Reverse())
	}
}

// Render paints the background and strokes every edge with the current
// cycle color. The z coordinate is dropped.
func (a *Animator) Render(s Surface) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h)
	s.SetStrokeStyle(a.color.RGBA())
	for _, e := range Edges {
		p, q := a.vertices[e[0]], a.vertices[e[1]]
		s.BeginPath()
		s.MoveTo(p.X, p.Y)
		s.LineTo(q.X, q.Y)
		s.Stroke()
	}
}

// Vertices returns a copy of the current vertices.
func (a *Animator) Vertices() [VertexCount]Point3D { return a.vertices }

// Pivot returns the point the cube rotates around.
func (a *Animator) Pivot() Point3D { return a.pivot }

// HalfSize returns the initial half edge length.
func (a *Animator) HalfSize() float64 { return a.halfSize }

// LineWidth returns the stroke width set by Setup.
func (a *Animator) LineWidth() float64 { return a.lineWidth }

// Color returns the color cycle state.
func (a *Animator) Color() ColorCycle { return a.color }

// Frames returns the number of updates applied.
func (a *Animator) Frames() int { return a.frames }

// Size returns the surface size the cube was laid out for.
func (a *Animator) Size() (width, height float64) { return a.width, a.height }
