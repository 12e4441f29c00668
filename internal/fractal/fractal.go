// Package fractal draws the Sierpinski triangle by recursive midpoint
// subdivision.
package fractal

import (
	"fmt"

	"github.com/rook-computer/sierpinski/internal/geom"
	"github.com/rook-computer/sierpinski/internal/palette"
	"github.com/rook-computer/sierpinski/internal/surface"
)

// Renderer draws a triangle and recurses into its three corner
// sub-triangles until the depth budget runs out.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Rand picks the child colours. Nil uses the process-wide source.
	Rand palette.Source

	// OnDraw, when set, is called after each triangle is drawn.
	OnDraw func(t geom.Triangle, c palette.Color, depth uint)

	draws int
}

// Render draws t filled with col, then, while depth-1 > 0, draws the three
// corner sub-triangles with depth-1. The children of one call share a
// single freshly drawn colour. Depth 0 draws t once and stops.
func (r *Renderer) Render(s surface.Surface, t geom.Triangle, col palette.Color, depth uint) error {
	if err := DrawTriangle(s, t, col); err != nil {
		return fmt.Errorf("draw %v: %w", t, err)
	}
	r.draws++
	if r.OnDraw != nil {
		r.OnDraw(t, col, depth)
	}

	if depth <= 1 {
		return nil
	}
	depth--

	next := palette.Random(r.Rand)
	a, b, c := t.Subdivide()
	for _, child := range [3]geom.Triangle{a, b, c} {
		if err := r.Render(s, child, next, depth); err != nil {
			return err
		}
	}
	return nil
}

// Draws returns the number of triangles drawn since the last Reset.
func (r *Renderer) Draws() int { return r.draws }

// Reset zeroes the draw counter.
func (r *Renderer) Reset() { r.draws = 0 }

// Render is a one-shot helper around Renderer.
func Render(s surface.Surface, t geom.Triangle, c palette.Color, depth uint, src palette.Source) error {
	r := Renderer{Rand: src}
	return r.Render(s, t, c, depth)
}

// Count returns how many triangles Render draws for depth:
// 1 for depth 0, and 1 + 3 + ... + 3^(depth-1) otherwise.
func Count(depth uint) int {
	if depth == 0 {
		return 1
	}
	total, level := 0, 1
	for i := uint(0); i < depth; i++ {
		total += level
		level *= 3
	}
	return total
}

// Leaves returns how many triangles are drawn on the deepest level.
func Leaves(depth uint) int {
	n := 1
	for i := uint(1); i < depth; i++ {
		n *= 3
	}
	return n
}
