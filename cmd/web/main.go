//go:build js && wasm

// Command web is the browser build of the demo. It draws the sprite and the
// Sierpinski triangle straight onto the page's <canvas id="canvas">.
//
//	GOOS=js GOARCH=wasm go build -o main.wasm ./cmd/web
package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	"github.com/rook-computer/sierpinski/internal/app"
	"github.com/rook-computer/sierpinski/internal/config"
	"github.com/rook-computer/sierpinski/internal/fractal"
	"github.com/rook-computer/sierpinski/internal/palette"
	"github.com/rook-computer/sierpinski/internal/state"
)

const canvasID = "canvas"

func main() {
	logScreenf("Starting Sierpinski...")

	// Step 1: acquire the 2D context of the canvas element
	window := js.Global().Get("window")
	if !window.Truthy() {
		logFatalf("no window")
	}
	document := window.Get("document")
	if !document.Truthy() {
		logFatalf("no document")
	}
	canvas := document.Call("getElementById", canvasID)
	if !canvas.Truthy() {
		logFatalf("no element with id %q", canvasID)
	}
	ctx := canvas.Call("getContext", "2d")
	if !ctx.Truthy() {
		logFatalf("canvas %q has no 2d context", canvasID)
	}

	// Step 2: wait for the sprite, draw it and the fractal
	store := state.NewStore()
	loader := &elementLoader{Timeout: config.DefaultLoadTimeout}
	renderer := &fractal.Renderer{Rand: palette.NewSource(0)}
	a := app.New(store, &canvasSurface{ctx: ctx}, loader, renderer)
	a.Logger = screenLogger{}

	if err := a.Run(context.Background()); err != nil {
		logFatalf("render: %v", err)
	}

	snap := store.Snapshot()
	logScreenf("Rendered %d triangles at depth %d in %s.", snap.Render.Draws, snap.Render.Depth, snap.Render.Elapsed)
}

// logScreenf appends a formatted message to the log element in the DOM,
// falling back to the console when the page has none.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	logElem := js.Global().Get("document").Call("getElementById", "log")
	if !logElem.Truthy() {
		log.Print(msg)
		return
	}
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// screenLogger routes app logging to the page.
type screenLogger struct{}

func (screenLogger) Infof(component, format string, args ...interface{}) {
	logScreenf(component+": "+format, args...)
}

func (screenLogger) Errorf(component, format string, args ...interface{}) {
	logScreenf("ERROR "+component+": "+format, args...)
}
