// =======================
// raster/glow.go
// =======================

package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
)

// Glow adds a Gaussian-blurred copy of img on top of itself, so bright
// strokes bleed into the background. A radius of zero or less returns img.
func Glow(img *image.RGBA, radius float64) *image.RGBA {
	if radius <= 0 || img.Bounds().Empty() {
		return img
	}
	halo := blur.Gaussian(img, radius)
	return blend.Add(img, halo)
}
