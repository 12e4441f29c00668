package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/sierpinski/internal/state"
)

const (
	hudMargin    = 8
	hudFontSize  = 16
	hudQRSizePx  = 128
	hudLineSpace = 4
)

// HUD overlays render statistics and, when a preview server runs, a QR
// code of its URL in the top-right corner, the one corner the triangle
// leaves empty.
type HUD struct {
	Face  font.Face
	Color color.Color
}

func NewHUD(l logger) *HUD {
	h := &HUD{Face: basicfont.Face7x13, Color: color.Black}
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		if l != nil {
			l.Errorf("hud", "truetype parse failed, using basicfont: %v", err)
		}
		return h
	}
	h.Face = truetype.NewFace(tt, &truetype.Options{Size: hudFontSize, DPI: 72, Hinting: font.HintingFull})
	return h
}

// Caption is the status line drawn by Draw.
func Caption(snap state.State) string {
	return fmt.Sprintf("depth %d  %d triangles  %s", snap.Render.Depth, snap.Render.Draws, snap.Render.Elapsed.Round(time.Microsecond))
}

func (h *HUD) Draw(dst draw.Image, snap state.State, previewURL string) {
	b := dst.Bounds()
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(h.Color),
		Face: h.Face,
	}
	text := Caption(snap)
	width := drawer.MeasureString(text).Ceil()
	ascent := h.Face.Metrics().Ascent.Ceil()
	height := h.Face.Metrics().Height.Ceil()

	x := b.Max.X - hudMargin - width
	y := b.Min.Y + hudMargin + ascent
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)

	if previewURL == "" {
		return
	}
	qr, err := qrImage(previewURL, hudQRSizePx)
	if err != nil || qr == nil {
		return
	}
	top := b.Min.Y + hudMargin + height + hudLineSpace
	rect := image.Rect(b.Max.X-hudMargin-hudQRSizePx, top, b.Max.X-hudMargin, top+hudQRSizePx)
	draw.Draw(dst, rect, qr, qr.Bounds().Min, draw.Src)
}

// qrImage returns a QR code image for payload, or nil for an empty payload.
func qrImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return code.Image(sizePx), nil
}
