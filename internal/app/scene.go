package app

import (
	"github.com/rook-computer/sierpinski/internal/geom"
	"github.com/rook-computer/sierpinski/internal/palette"
	"github.com/rook-computer/sierpinski/internal/sprite"
)

// Fixed picture of the demo.
var (
	CanvasWidth  = 600
	CanvasHeight = 600

	// Background is painted before anything else on raster outputs.
	Background = palette.White
)

// Scene is what gets drawn once the sprite is in.
type Scene struct {
	Sprite string
	Root   geom.Triangle
	Color  palette.Color
	Depth  uint
}

// DefaultScene is the sprite at the origin under a green, six-level
// Sierpinski triangle filling the canvas.
func DefaultScene() Scene {
	return Scene{
		Sprite: sprite.DefaultName,
		Root:   geom.Tri(geom.Pt(300, 0), geom.Pt(0, 600), geom.Pt(600, 600)),
		Color:  palette.Green,
		Depth:  6,
	}
}
