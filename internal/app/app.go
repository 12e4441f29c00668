package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/rook-computer/sierpinski/internal/fractal"
	"github.com/rook-computer/sierpinski/internal/state"
	"github.com/rook-computer/sierpinski/internal/surface"
)

// SpriteLoader resolves a locator to an image, suspending until it is ready.
type SpriteLoader interface {
	Load(ctx context.Context, locator string) (image.Image, error)
}

// Publisher receives the finished picture.
type Publisher interface {
	Publish(ctx context.Context, img image.Image, snap state.State) error
}

type App struct {
	Store    *state.Store
	Surface  surface.Surface
	Loader   SpriteLoader
	Renderer *fractal.Renderer
	Outputs  []Publisher
	Logger   Logger
	Scene    Scene

	// Hold keeps Start running after the picture is published, until the
	// context ends. Long-lived outputs (framebuffer, preview server) need it.
	Hold bool
}

func New(store *state.Store, surf surface.Surface, loader SpriteLoader, renderer *fractal.Renderer) *App {
	if renderer == nil {
		renderer = &fractal.Renderer{}
	}
	return &App{
		Store:    store,
		Surface:  surf,
		Loader:   loader,
		Renderer: renderer,
		Logger:   NoopLogger{},
		Scene:    DefaultScene(),
	}
}

// Start runs the pipeline once and, with Hold set, then waits for ctx.
func (app *App) Start(ctx context.Context) error {
	if err := app.Run(ctx); err != nil {
		app.Store.Fail(err)
		app.Logger.Errorf("app", "%v", err)
		return err
	}
	if !app.Hold {
		return nil
	}
	app.Logger.Infof("app", "picture published, holding until shutdown")
	<-ctx.Done()
	return nil
}

// Run waits for the sprite, draws it at the origin, renders the fractal
// over it and hands the result to every output.
func (app *App) Run(ctx context.Context) error {
	if app.Surface == nil {
		return errors.New("no drawing surface")
	}
	if app.Loader == nil {
		return errors.New("no sprite loader")
	}
	scene := app.Scene

	app.Store.SetPhase(state.LOADING)
	img, err := app.Loader.Load(ctx, scene.Sprite)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	app.Store.UpdateSprite(state.SpriteInfo{Locator: scene.Sprite, Width: bounds.Dx(), Height: bounds.Dy()})

	app.Store.SetPhase(state.RENDERING)
	if err := app.Surface.DrawImage(img, 0, 0); err != nil {
		return fmt.Errorf("draw sprite: %w", err)
	}

	start := time.Now()
	app.Renderer.Reset()
	if err := app.Renderer.Render(app.Surface, scene.Root, scene.Color, scene.Depth); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	elapsed := time.Since(start)
	app.Store.UpdateRender(state.RenderInfo{Depth: scene.Depth, Draws: app.Renderer.Draws(), Elapsed: elapsed})
	app.Store.SetPhase(state.DONE)
	app.Logger.Infof("app", "rendered depth %d: %d triangles in %s", scene.Depth, app.Renderer.Draws(), elapsed)

	return app.publish(ctx)
}

func (app *App) publish(ctx context.Context) error {
	if len(app.Outputs) == 0 {
		return nil
	}
	imager, ok := app.Surface.(surface.Imager)
	if !ok {
		app.Logger.Infof("app", "surface %T has no pixels, skipping %d outputs", app.Surface, len(app.Outputs))
		return nil
	}
	img := imager.Image()
	snap := app.Store.Snapshot()
	for _, out := range app.Outputs {
		if err := out.Publish(ctx, img, snap); err != nil {
			return fmt.Errorf("publish to %T: %w", out, err)
		}
	}
	return nil
}
