package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rook-computer/sierpinski/internal/app"
	"github.com/rook-computer/sierpinski/internal/config"
	"github.com/rook-computer/sierpinski/internal/display"
	"github.com/rook-computer/sierpinski/internal/fractal"
	"github.com/rook-computer/sierpinski/internal/palette"
	"github.com/rook-computer/sierpinski/internal/sprite"
	"github.com/rook-computer/sierpinski/internal/state"
	"github.com/rook-computer/sierpinski/internal/surface"
	"github.com/rook-computer/sierpinski/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println("sierpinski:", err)
		os.Exit(1)
	}
}

func run() error {
	defaults, err := config.FromEnv(config.Default())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	debug := flag.Bool("debug", false, "enable debug logging to ./sierpinski-debug.log and the framebuffer HUD")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	spritePath := flag.String("sprite", sprite.DefaultName, "sprite file or http(s) URL drawn at the canvas origin")
	out := flag.String("out", "", "write the picture to this PNG file")
	fbPath := flag.String("fb", "", "show the picture on this framebuffer device, e.g. /dev/fb0")
	listen := flag.String("listen", defaults.ListenAddr, "serve the preview page on this address; also configurable via "+config.EnvListenAddr)
	staticDir := flag.String("static-dir", "", "serve the browser build (main.wasm, wasm_exec.js) from this directory")
	loadTimeout := flag.Duration("load-timeout", defaults.LoadTimeout, "give up on the sprite after this long, 0 waits forever; also configurable via "+config.EnvLoadTimeout)
	seed := flag.Uint64("seed", defaults.Seed, "seed for the triangle colours, 0 for a random sequence; also configurable via "+config.EnvSeed)
	flag.Parse()

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./sierpinski-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()

	canvas := surface.NewCanvas(app.CanvasWidth, app.CanvasHeight)
	defer canvas.Close()
	canvas.Clear(app.Background.RGBA())

	loader := &sprite.Loader{Timeout: *loadTimeout, Logger: logger}
	renderer := &fractal.Renderer{Rand: palette.NewSource(*seed)}

	a := app.New(store, canvas, loader, renderer)
	a.Logger = logger
	a.Scene.Sprite = *spritePath

	if *out != "" {
		a.Outputs = append(a.Outputs, app.PNGFile{Path: *out})
	}

	var previewURL string
	if *listen != "" {
		server := web.NewHTTPServer(*listen)
		server.StaticDir = *staticDir
		server.SpritePath = *spritePath
		server.Store = store
		server.Logger = logger
		if err := server.Start(ctx); err != nil {
			return err
		}
		defer server.Stop()
		previewURL = "http://" + server.ListenAddr() + "/"
		fmt.Println("preview on", previewURL)
		a.Outputs = append(a.Outputs, server)
		a.Hold = true
	}

	if *fbPath != "" {
		screen := display.NewFramebuffer(*fbPath)
		screen.Logger = logger
		screen.Debug = *debug
		screen.PreviewURL = previewURL
		if err := screen.Start(ctx); err != nil {
			return fmt.Errorf("framebuffer: %w", err)
		}
		defer screen.Stop()
		a.Outputs = append(a.Outputs, screen)
		a.Hold = true
	}

	if len(a.Outputs) == 0 {
		fmt.Println("no output selected; use -out, -fb or -listen")
	}

	start := time.Now()
	if err := a.Start(ctx); err != nil {
		return err
	}
	snap := store.Snapshot()
	fmt.Printf("rendered %d triangles at depth %d in %s\n", snap.Render.Draws, snap.Render.Depth, time.Since(start).Round(time.Millisecond))
	return nil
}
