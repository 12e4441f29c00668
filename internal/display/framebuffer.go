// Package display puts the rendered picture on a Linux framebuffer.
package display

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/sierpinski/internal/state"
	"github.com/rook-computer/sierpinski/internal/system"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// device is an opened framebuffer.
type device interface {
	draw.Image
	Close() error
}

// Framebuffer scales the picture onto a framebuffer device, letterboxed to
// keep its aspect ratio. With Debug set a HUD is drawn over it.
type Framebuffer struct {
	Path       string
	Logger     logger
	Debug      bool
	PreviewURL string
	Background color.Color

	console system.Console
	dev     device
	target  draw.Image
	hud     *HUD
}

func NewFramebuffer(path string) *Framebuffer {
	return &Framebuffer{Path: path, Background: color.Black}
}

func (f *Framebuffer) Start(ctx context.Context) error {
	dev, err := openDevice(f.Path)
	if err != nil {
		return err
	}
	f.dev = dev
	f.target = dev
	f.infof("framebuffer %s open, bounds=%dx%d", f.Path, dev.Bounds().Dx(), dev.Bounds().Dy())

	f.console = system.Console{Logger: f.Logger}
	if err := f.console.EnterGraphics(); err != nil {
		f.infof("console stays in text mode: %v", err)
	}

	if f.Debug {
		f.hud = NewHUD(f.Logger)
	}
	return nil
}

func (f *Framebuffer) Stop() error {
	if f.dev == nil {
		return nil
	}
	_ = f.console.Restore()
	err := f.dev.Close()
	f.dev = nil
	f.target = nil
	return err
}

// Publish implements app.Publisher.
func (f *Framebuffer) Publish(ctx context.Context, img image.Image, snap state.State) error {
	if f.target == nil {
		return errors.New("framebuffer not started")
	}
	frame := image.NewRGBA(img.Bounds())
	draw.Draw(frame, frame.Bounds(), img, img.Bounds().Min, draw.Src)
	if f.hud != nil {
		f.hud.Draw(frame, snap, f.PreviewURL)
	}
	blit(f.target, frame, f.Background)
	f.infof("picture on screen (%d triangles)", snap.Render.Draws)
	return nil
}

// blit clears dst to bg and scales src into the largest centred rectangle
// with src's aspect ratio.
func blit(dst draw.Image, src image.Image, bg color.Color) {
	if bg != nil {
		draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	}
	rect := fitRect(dst.Bounds(), src.Bounds().Dx(), src.Bounds().Dy())
	if rect.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, rect, src, src.Bounds(), xdraw.Over, nil)
}

// fitRect returns the largest rectangle of aspect w:h centred in bounds.
func fitRect(bounds image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 || bounds.Empty() {
		return image.Rectangle{}
	}
	bw, bh := bounds.Dx(), bounds.Dy()
	fw, fh := bw, bw*h/w
	if fh > bh {
		fw, fh = bh*w/h, bh
	}
	x := bounds.Min.X + (bw-fw)/2
	y := bounds.Min.Y + (bh-fh)/2
	return image.Rect(x, y, x+fw, y+fh)
}

func (f *Framebuffer) infof(format string, args ...interface{}) {
	if f.Logger != nil {
		f.Logger.Infof("fb", format, args...)
	}
}
