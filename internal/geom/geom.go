// Package geom holds the canvas-space geometry the fractal is built from.
package geom

import "math"

// Point is a position in canvas space. Any real values are accepted.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Triangle is an ordered triple of corners. The roles matter: midpoints
// are taken pairwise from specific corners, which decides where each
// sub-triangle ends up.
type Triangle struct {
	Top, Left, Right Point
}

// Tri builds a Triangle from its top, left and right corners.
func Tri(top, left, right Point) Triangle {
	return Triangle{Top: top, Left: left, Right: right}
}

// Points returns the corners in path order (top, left, right).
func (t Triangle) Points() [3]Point {
	return [3]Point{t.Top, t.Left, t.Right}
}

// Subdivide splits t through the midpoints of its sides and returns the
// three corner triangles at half the linear size:
//
//	a = (top, mid(top,left), mid(top,right))
//	b = (mid(top,left), left, mid(left,right))
//	c = (mid(top,right), mid(left,right), right)
//
// The fourth, central triangle is left out; see Hole.
func (t Triangle) Subdivide() (a, b, c Triangle) {
	leftMid := Midpoint(t.Top, t.Left)
	rightMid := Midpoint(t.Top, t.Right)
	bottomMid := Midpoint(t.Left, t.Right)

	a = Triangle{Top: t.Top, Left: leftMid, Right: rightMid}
	b = Triangle{Top: leftMid, Left: t.Left, Right: bottomMid}
	c = Triangle{Top: rightMid, Left: bottomMid, Right: t.Right}
	return a, b, c
}

// Hole returns the central triangle that Subdivide skips.
func (t Triangle) Hole() Triangle {
	return Triangle{
		Top:   Midpoint(t.Left, t.Right),
		Left:  Midpoint(t.Top, t.Left),
		Right: Midpoint(t.Top, t.Right),
	}
}

// Area returns the unsigned area of t.
func (t Triangle) Area() float64 {
	cross := (t.Left.X-t.Top.X)*(t.Right.Y-t.Top.Y) - (t.Right.X-t.Top.X)*(t.Left.Y-t.Top.Y)
	return math.Abs(cross) / 2
}

// Contains reports whether p lies inside t or on its boundary.
func (t Triangle) Contains(p Point) bool {
	d1 := side(p, t.Top, t.Left)
	d2 := side(p, t.Left, t.Right)
	d3 := side(p, t.Right, t.Top)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Centroid returns the average of the three corners.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.Top.X + t.Left.X + t.Right.X) / 3,
		Y: (t.Top.Y + t.Left.Y + t.Right.Y) / 3,
	}
}

func side(p, a, b Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
