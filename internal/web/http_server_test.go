package web

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rook-computer/sierpinski/internal/state"
)

func doRequest(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestStatus(t *testing.T) {
	store := state.NewStore()
	store.UpdateSprite(state.SpriteInfo{Locator: "Idle (1).png", Width: 32, Height: 16})
	store.UpdateRender(state.RenderInfo{Depth: 6, Draws: 364, Elapsed: 2 * time.Millisecond})
	store.SetPhase(state.DONE)

	s := &HTTPServer{Store: store}
	rec := doRequest(t, s.NewMux(), http.MethodGet, "/api/v1/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := statusResponse{Phase: "done", Sprite: "Idle (1).png", Width: 32, Height: 16, Depth: 6, Draws: 364, ElapsedMS: 2}
	if got != want {
		t.Errorf("status = %+v, want %+v", got, want)
	}
}

func TestStatusErrors(t *testing.T) {
	s := &HTTPServer{}
	if rec := doRequest(t, s.NewMux(), http.MethodGet, "/api/v1/status"); rec.Code != http.StatusNotImplemented {
		t.Errorf("no store: status = %d", rec.Code)
	}
	s.Store = state.NewStore()
	if rec := doRequest(t, s.NewMux(), http.MethodPost, "/api/v1/status"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST: status = %d", rec.Code)
	}
}

func TestRenderPNG(t *testing.T) {
	s := &HTTPServer{}
	mux := s.NewMux()

	if rec := doRequest(t, mux, http.MethodGet, "/render.png"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("before publish: status = %d", rec.Code)
	}

	img := image.NewRGBA(image.Rect(0, 0, 5, 4))
	img.SetRGBA(1, 1, color.RGBA{G: 255, A: 255})
	if err := s.Publish(context.Background(), img, state.State{}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	rec := doRequest(t, mux, http.MethodGet, "/render.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	decoded, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := color.RGBAModel.Convert(decoded.At(1, 1)); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("pixel = %v", got)
	}

	head := doRequest(t, mux, http.MethodHead, "/render.png")
	if head.Code != http.StatusOK || head.Body.Len() != 0 {
		t.Errorf("HEAD: status %d, %d body bytes", head.Code, head.Body.Len())
	}
	if rec := doRequest(t, mux, http.MethodPost, "/render.png"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST: status = %d", rec.Code)
	}
}

func TestEmbeddedIndex(t *testing.T) {
	s := &HTTPServer{}
	rec := doRequest(t, s.NewMux(), http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<canvas id="canvas"`) {
		t.Error("index page has no canvas")
	}
}

func TestSpriteRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	s := &HTTPServer{SpritePath: path}
	rec := doRequest(t, s.NewMux(), http.MethodGet, "/Idle%20(1).png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), buf.Bytes()) {
		t.Error("sprite body differs from file")
	}
}

func TestStaticDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"main.wasm":    "\x00asm",
		"wasm_exec.js": "// go wasm glue",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	mux := (&HTTPServer{StaticDir: dir}).NewMux()
	for name, body := range files {
		rec := doRequest(t, mux, http.MethodGet, "/"+name)
		if rec.Code != http.StatusOK || rec.Body.String() != body {
			t.Errorf("%s: status %d body %q", name, rec.Code, rec.Body.String())
		}
	}

	rec := doRequest(t, mux, http.MethodGet, "/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `<canvas id="canvas"`) {
		t.Errorf("/: status %d, want the embedded page, got %q", rec.Code, rec.Body.String())
	}
	if rec := doRequest(t, mux, http.MethodGet, "/sub/"); rec.Code != http.StatusNotFound {
		t.Errorf("/sub/: status = %d, want no directory listing", rec.Code)
	}

	mux = (&HTTPServer{StaticDir: filepath.Join(dir, "missing")}).NewMux()
	if rec := doRequest(t, mux, http.MethodGet, "/main.wasm"); rec.Code != http.StatusNotFound {
		t.Errorf("missing dir: status = %d", rec.Code)
	}
	if rec := doRequest(t, mux, http.MethodGet, "/"); rec.Code != http.StatusOK {
		t.Errorf("missing dir /: status = %d", rec.Code)
	}
}

func TestStartStop(t *testing.T) {
	store := state.NewStore()
	s := NewHTTPServer("127.0.0.1:0")
	s.Store = store

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	addr := s.ListenAddr()
	if addr == "" {
		t.Fatal("no listen address")
	}

	resp, err := http.Get("http://" + addr + "/api/v1/status")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"phase":"booting"`) {
		t.Errorf("status %d body %s", resp.StatusCode, body)
	}

	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := s.Start(ctx); err == nil {
		t.Error("Start after Stop succeeded")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}
