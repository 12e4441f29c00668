package display

import (
	"context"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/rook-computer/sierpinski/internal/state"
)

func TestFitRect(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		w, h   int
		want   image.Rectangle
	}{
		{"same", image.Rect(0, 0, 600, 600), 600, 600, image.Rect(0, 0, 600, 600)},
		{"wide screen", image.Rect(0, 0, 1920, 1080), 600, 600, image.Rect(420, 0, 1500, 1080)},
		{"tall screen", image.Rect(0, 0, 480, 800), 600, 600, image.Rect(0, 160, 480, 640)},
		{"offset", image.Rect(10, 10, 110, 60), 2, 1, image.Rect(10, 10, 110, 60)},
		{"empty source", image.Rect(0, 0, 10, 10), 0, 5, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitRect(tt.bounds, tt.w, tt.h); got != tt.want {
				t.Errorf("fitRect = %v, want %v", got, tt.want)
			}
		})
	}
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPublishLetterboxes(t *testing.T) {
	screen := image.NewRGBA(image.Rect(0, 0, 200, 100))
	f := NewFramebuffer("/dev/null")
	f.target = screen

	green := color.RGBA{G: 255, A: 255}
	if err := f.Publish(context.Background(), solid(60, 60, green), state.State{}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if got := screen.RGBAAt(100, 50); got != green {
		t.Errorf("centre = %v, want %v", got, green)
	}
	black := color.RGBA{A: 255}
	if got := screen.RGBAAt(10, 50); got != black {
		t.Errorf("letterbox = %v, want %v", got, black)
	}
}

func TestPublishNotStarted(t *testing.T) {
	f := NewFramebuffer("/dev/fb0")
	if err := f.Publish(context.Background(), solid(1, 1, color.RGBA{}), state.State{}); err == nil {
		t.Error("Publish before Start succeeded")
	}
}

func TestStopWithoutStart(t *testing.T) {
	if err := NewFramebuffer("/dev/fb0").Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func countDark(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).R < 128 {
				n++
			}
		}
	}
	return n
}

func TestHUDCaption(t *testing.T) {
	snap := state.State{Render: state.RenderInfo{Depth: 6, Draws: 364, Elapsed: 1500 * time.Microsecond}}
	got := Caption(snap)
	for _, want := range []string{"depth 6", "364 triangles", "1.5ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("Caption = %q, missing %q", got, want)
		}
	}
}

func TestHUDDrawsInTopRight(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	frame := solid(600, 600, white)
	hud := NewHUD(nil)
	hud.Draw(frame, state.State{Render: state.RenderInfo{Depth: 6, Draws: 364}}, "")

	if n := countDark(frame, image.Rect(300, 0, 600, 40)); n == 0 {
		t.Error("no caption pixels in the top-right corner")
	}
	if n := countDark(frame, image.Rect(0, 100, 600, 600)); n != 0 {
		t.Errorf("%d dark pixels below the caption without a preview URL", n)
	}
}

func TestHUDDrawsQRCode(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	frame := solid(600, 600, white)
	hud := NewHUD(nil)
	hud.Draw(frame, state.State{}, "http://192.168.1.20:8080/")

	qrArea := image.Rect(600-hudMargin-hudQRSizePx, 40, 600-hudMargin, 40+hudQRSizePx)
	if n := countDark(frame, qrArea); n == 0 {
		t.Error("no QR pixels drawn")
	}
}

func TestQRImageEmpty(t *testing.T) {
	img, err := qrImage("", 64)
	if img != nil || err != nil {
		t.Errorf("qrImage(\"\") = %v, %v", img, err)
	}
}
