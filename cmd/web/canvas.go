//go:build js && wasm

package main

import (
	"image"
	"image/draw"
	"syscall/js"

	"github.com/rook-computer/sierpinski/internal/palette"
	"github.com/rook-computer/sierpinski/internal/surface"
)

// canvasSurface forwards the drawing primitives to a
// CanvasRenderingContext2D.
type canvasSurface struct {
	ctx js.Value
}

var _ surface.Surface = (*canvasSurface)(nil)

func (c *canvasSurface) BeginPath()          { c.ctx.Call("beginPath") }
func (c *canvasSurface) MoveTo(x, y float64) { c.ctx.Call("moveTo", x, y) }
func (c *canvasSurface) LineTo(x, y float64) { c.ctx.Call("lineTo", x, y) }
func (c *canvasSurface) ClosePath()          { c.ctx.Call("closePath") }

func (c *canvasSurface) Stroke() error {
	c.ctx.Call("stroke")
	return nil
}

func (c *canvasSurface) SetFillStyle(col palette.Color) {
	c.ctx.Set("fillStyle", col.String())
}

func (c *canvasSurface) Fill() error {
	c.ctx.Call("fill")
	return nil
}

// DrawImage draws loaded <img> elements natively. Any other image is
// copied over as ImageData.
func (c *canvasSurface) DrawImage(img image.Image, x, y float64) error {
	if el, ok := img.(*elementImage); ok {
		c.ctx.Call("drawImage", el.el, x, y)
		return nil
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	jsData := js.Global().Get("Uint8ClampedArray").New(len(rgba.Pix))
	js.CopyBytesToJS(jsData, rgba.Pix)
	imageData := js.Global().Get("ImageData").New(jsData, b.Dx(), b.Dy())
	c.ctx.Call("putImageData", imageData, x, y)
	return nil
}
