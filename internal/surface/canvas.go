package surface

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/rook-computer/sierpinski/internal/palette"
)

// Canvas is an offscreen raster surface backed by a gg.Context.
//
// gg shares one brush between fill and stroke and clears the path after
// painting, so Canvas keeps both styles itself and paints with the
// preserving variants.
type Canvas struct {
	dc     *gg.Context
	fill   gg.RGBA
	stroke gg.RGBA
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given size. Fill and stroke
// styles start out black with a 1px line, like a fresh 2D context.
func NewCanvas(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &Canvas{dc: dc, fill: gg.Black, stroke: gg.Black}
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Clear paints the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *Canvas) BeginPath() { c.dc.ClearPath() }

func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }

func (c *Canvas) ClosePath() { c.dc.ClosePath() }

// SetStrokeStyle changes the outline colour used by Stroke.
func (c *Canvas) SetStrokeStyle(col palette.Color) {
	c.stroke = gg.FromColor(col.RGBA())
}

func (c *Canvas) Stroke() error {
	c.dc.SetStrokeBrush(gg.Solid(c.stroke))
	return c.dc.StrokePreserve()
}

func (c *Canvas) SetFillStyle(col palette.Color) {
	c.fill = gg.FromColor(col.RGBA())
}

func (c *Canvas) Fill() error {
	c.dc.SetFillBrush(gg.Solid(c.fill))
	return c.dc.FillPreserve()
}

func (c *Canvas) DrawImage(img image.Image, x, y float64) error {
	if img == nil {
		return errors.New("draw image: nil image")
	}
	buf := gg.ImageBufFromImage(img)
	if buf == nil {
		return errors.New("draw image: unsupported image")
	}
	c.dc.DrawImage(buf, x, y)
	return nil
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

func (c *Canvas) Close() error { return c.dc.Close() }
