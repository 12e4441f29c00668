package fractal

import (
	"github.com/rook-computer/sierpinski/internal/geom"
	"github.com/rook-computer/sierpinski/internal/palette"
	"github.com/rook-computer/sierpinski/internal/surface"
)

// DrawTriangle outlines t with the surface's current stroke style and
// fills it with c.
//
// The path is opened with BeginPath before the first MoveTo. Issuing
// MoveTo first would have BeginPath throw the starting point away on
// canvas-like surfaces.
func DrawTriangle(s surface.Surface, t geom.Triangle, c palette.Color) error {
	s.BeginPath()
	s.MoveTo(t.Top.X, t.Top.Y)
	s.LineTo(t.Left.X, t.Left.Y)
	s.LineTo(t.Right.X, t.Right.Y)
	s.LineTo(t.Top.X, t.Top.Y)
	s.ClosePath()
	if err := s.Stroke(); err != nil {
		return err
	}

	s.SetFillStyle(c)
	return s.Fill()
}
