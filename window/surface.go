// =======================
// window/surface.go
// =======================

package window

import (
	"image/color"

	"wirecube/cube"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws onto an ebiten image with the vector package. Round caps
// are filled circles at both ends of every segment.
type Surface struct {
	cube.Path

	dst           *ebiten.Image
	width, height float64
	fill, stroke  color.Color
	lineWidth     float32
	lineCap       cube.LineCap
}

// NewSurface returns a surface reporting width×height.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:     float64(width),
		height:    float64(height),
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
	}
}

// Target sets the image the next calls draw to.
func (s *Surface) Target(dst *ebiten.Image) { s.dst = dst }

func (s *Surface) Size() (float64, float64) { return s.width, s.height }

func (s *Surface) SetFillStyle(c color.Color)   { s.fill = c }
func (s *Surface) SetStrokeStyle(c color.Color) { s.stroke = c }
func (s *Surface) SetLineCap(c cube.LineCap)    { s.lineCap = c }

func (s *Surface) SetLineWidth(w float64) {
	if w < 1 {
		w = 1
	}
	s.lineWidth = float32(w)
}

func (s *Surface) FillRect(x, y, w, h float64) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}

func (s *Surface) Stroke() {
	if s.dst == nil {
		return
	}
	r := s.lineWidth / 2
	for _, seg := range s.Segments() {
		x0, y0 := float32(seg.X0), float32(seg.Y0)
		x1, y1 := float32(seg.X1), float32(seg.Y1)
		vector.StrokeLine(s.dst, x0, y0, x1, y1, s.lineWidth, s.stroke, true)
		if s.lineCap == cube.CapRound {
			vector.DrawFilledCircle(s.dst, x0, y0, r, s.stroke, true)
			vector.DrawFilledCircle(s.dst, x1, y1, r, s.stroke, true)
		}
	}
}
