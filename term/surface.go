// =======================
// term/surface.go
// =======================

package term

import (
	"image/color"

	"wirecube/raster"

	"github.com/gdamore/tcell/v2"
)

// upperHalf shows the upper pixel as foreground and the lower one as
// background.
const upperHalf = '▀'

// Surface is a software canvas shown on a terminal. Each cell holds two
// vertically stacked pixels, so the canvas is cols × 2·rows.
type Surface struct {
	*raster.Canvas
	cols, rows int
}

// NewSurface allocates a surface covering cols×rows cells.
func NewSurface(cols, rows int) *Surface {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Surface{
		Canvas: raster.NewCanvas(cols, rows*2),
		cols:   cols,
		rows:   rows,
	}
}

// Cells returns the number of terminal cells covered.
func (s *Surface) Cells() (cols, rows int) { return s.cols, s.rows }

// Present copies the canvas onto screen starting at the top-left cell.
func (s *Surface) Present(screen tcell.Screen) {
	img := s.Image()
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			upper := img.RGBAAt(x, 2*y)
			lower := img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.Foreground(toColor(upper)).Background(toColor(lower))
			screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
