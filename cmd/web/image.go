//go:build js && wasm

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"syscall/js"
	"time"

	"github.com/rook-computer/sierpinski/internal/sprite"
)

// elementImage is a loaded HTMLImageElement. Its pixels stay on the JS
// side; only canvasSurface knows how to draw it.
type elementImage struct {
	el            js.Value
	width, height int
}

func (e *elementImage) ColorModel() color.Model { return color.RGBAModel }
func (e *elementImage) Bounds() image.Rectangle { return image.Rect(0, 0, e.width, e.height) }
func (e *elementImage) At(x, y int) color.Color { return color.Transparent }

// elementLoader loads sprites through an <img> element: it sets src,
// registers one-shot onload/onerror callbacks and waits for the first of
// them to fire.
type elementLoader struct {
	Timeout time.Duration
}

func (l *elementLoader) Load(ctx context.Context, locator string) (image.Image, error) {
	loaded := make(chan error, 1)
	var once sync.Once
	signal := func(err error) {
		once.Do(func() { loaded <- err })
	}

	el := js.Global().Get("Image").New()
	onload := js.FuncOf(func(js.Value, []js.Value) any {
		signal(nil)
		return nil
	})
	onerror := js.FuncOf(func(js.Value, []js.Value) any {
		signal(errors.New("image element reported an error"))
		return nil
	})
	defer func() {
		el.Set("onload", js.Null())
		el.Set("onerror", js.Null())
		onload.Release()
		onerror.Release()
	}()
	el.Set("onload", onload)
	el.Set("onerror", onerror)
	el.Set("src", locator)

	var expired <-chan time.Time
	if l.Timeout > 0 {
		timer := time.NewTimer(l.Timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err := <-loaded:
		if err != nil {
			return nil, fmt.Errorf("load sprite %q: %w", locator, err)
		}
	case <-expired:
		return nil, fmt.Errorf("load sprite %q: %w after %s", locator, sprite.ErrTimeout, l.Timeout)
	case <-ctx.Done():
		return nil, fmt.Errorf("load sprite %q: %w", locator, ctx.Err())
	}

	return &elementImage{
		el:     el,
		width:  el.Get("naturalWidth").Int(),
		height: el.Get("naturalHeight").Int(),
	}, nil
}
