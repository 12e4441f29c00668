package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/rook-computer/sierpinski/internal/state"
)

// PNGFile writes the picture to Path.
type PNGFile struct {
	Path string
}

func (p PNGFile) Publish(ctx context.Context, img image.Image, snap state.State) error {
	f, err := os.Create(p.Path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", p.Path, err)
	}
	return f.Close()
}
