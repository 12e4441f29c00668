// Package surface defines the 2D drawing primitives the fractal is issued
// against, with a raster implementation and a recording one.
package surface

import (
	"image"

	"github.com/rook-computer/sierpinski/internal/palette"
)

// Surface is a canvas-like 2D drawing target.
//
// Paths follow canvas semantics: Stroke and Fill paint the current path
// without consuming it, only BeginPath discards it.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Stroke outlines the current path with the surface's stroke style.
	Stroke() error
	SetFillStyle(c palette.Color)
	Fill() error
	// DrawImage draws img unscaled with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y float64) error
}

// Imager is implemented by surfaces that can hand out their pixels.
type Imager interface {
	Image() image.Image
}
