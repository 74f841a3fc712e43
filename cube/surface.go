// =======================
// cube/surface.go
// =======================

package cube

import (
	"fmt"
	"image/color"
)

// Surface is an immediate-mode 2D drawing target shaped after the
// canvas 2D context.
type Surface interface {
	Size() (width, height float64)
	SetFillStyle(c color.Color)
	FillRect(x, y, w, h float64)
	SetStrokeStyle(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Segment is a straight line between two points of a path.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Path collects the segments of the current path. Surfaces embed it and
// consume Segments on Stroke.
type Path struct {
	segs       []Segment
	x, y       float64
	hasCurrent bool
}

func (p *Path) BeginPath() {
	p.segs = p.segs[:0]
	p.hasCurrent = false
}

func (p *Path) MoveTo(x, y float64) {
	p.x, p.y = x, y
	p.hasCurrent = true
}

// LineTo adds a segment from the current point. Without one it acts as
// MoveTo.
func (p *Path) LineTo(x, y float64) {
	if p.hasCurrent {
		p.segs = append(p.segs, Segment{X0: p.x, Y0: p.y, X1: x, Y1: y})
	}
	p.MoveTo(x, y)
}

// Segments returns the segments added since BeginPath.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Op names a recorded surface call.
type Op int

const (
	OpFillStyle Op = iota
	OpFillRect
	OpStrokeStyle
	OpLineWidth
	OpLineCap
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpStroke
)

var opNames = [...]string{"fillStyle", "fillRect", "strokeStyle", "lineWidth", "lineCap", "beginPath", "moveTo", "lineTo", "stroke"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one recorded surface call.
type Command struct {
	Op    Op
	Args  []float64
	Color color.Color
	Cap   LineCap
}

func (c Command) String() string {
	switch c.Op {
	case OpFillStyle, OpStrokeStyle:
		r, g, b, _ := c.Color.RGBA()
		return fmt.Sprintf("%s #%02x%02x%02x", c.Op, r>>8, g>>8, b>>8)
	case OpLineCap:
		return fmt.Sprintf("%s %s", c.Op, c.Cap)
	case OpBeginPath, OpStroke:
		return c.Op.String()
	}
	return fmt.Sprintf("%s %.3f", c.Op, c.Args)
}

// Recorder is a Surface that keeps every call it receives.
type Recorder struct {
	Width, Height float64
	Commands      []Command
}

// NewRecorder returns a recorder reporting the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) SetFillStyle(c color.Color) {
	r.add(Command{Op: OpFillStyle, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.add(Command{Op: OpFillRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) SetStrokeStyle(c color.Color) {
	r.add(Command{Op: OpStrokeStyle, Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.add(Command{Op: OpLineWidth, Args: []float64{w}})
}

func (r *Recorder) SetLineCap(c LineCap) {
	r.add(Command{Op: OpLineCap, Cap: c})
}

func (r *Recorder) BeginPath() { r.add(Command{Op: OpBeginPath}) }

func (r *Recorder) MoveTo(x, y float64) {
	r.add(Command{Op: OpMoveTo, Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.add(Command{Op: OpLineTo, Args: []float64{x, y}})
}

func (r *Recorder) Stroke() { r.add(Command{Op: OpStroke}) }

// Reset drops the recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

func (r *Recorder) add(c Command) { r.Commands = append(r.Commands, c) }
