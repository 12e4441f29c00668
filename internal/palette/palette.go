// Package palette provides the fill colours of the fractal.
package palette

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// channelLimit is the exclusive upper bound of a random channel value.
const channelLimit = 255

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
	Green = Color{G: 255}
)

// String formats c as a CSS colour, rgb(R,G,B).
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// RGBA converts c to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Source produces uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Random draws each channel independently from [0, 254].
func Random(src Source) Color {
	if src == nil {
		src = globalSource{}
	}
	return Color{
		R: uint8(src.IntN(channelLimit)),
		G: uint8(src.IntN(channelLimit)),
		B: uint8(src.IntN(channelLimit)),
	}
}

// NewSource returns a deterministic source for seed, or the process-wide
// source when seed is 0.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return globalSource{}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }
