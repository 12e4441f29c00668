package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rook-computer/sierpinski/internal/assets"
	"github.com/rook-computer/sierpinski/internal/sprite"
	"github.com/rook-computer/sierpinski/internal/state"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// HTTPServer serves a preview of the demo: the page running the browser
// build, the device render and its status.
type HTTPServer struct {
	Addr string

	// StaticDir, when set to an existing directory, supplies the files the
	// embedded page loads, main.wasm and wasm_exec.js. The page itself
	// always comes from the embedded assets.
	StaticDir string

	// SpritePath is served as "/Idle (1).png" so the browser build finds
	// its sprite next to the page.
	SpritePath string

	Store  *state.Store
	Logger logger

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
	png    []byte
}

func NewHTTPServer(addr string) *HTTPServer {
	return &HTTPServer{Addr: addr}
}

func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.NewMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	s.infof("listening on http://%s", ln.Addr())

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	srv := s.srv
	go func() {
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		if s.Logger != nil {
			s.Logger.Errorf("web", "serve: %v", err)
		}
	}()

	return nil
}

// ListenAddr returns the bound address, or "" before Start.
func (s *HTTPServer) ListenAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	ln := s.ln
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if srv == nil {
		if ln != nil {
			_ = ln.Close()
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Publish implements app.Publisher by keeping a PNG of img for /render.png.
func (s *HTTPServer) Publish(ctx context.Context, img image.Image, snap state.State) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	s.mu.Lock()
	s.png = buf.Bytes()
	s.mu.Unlock()
	s.infof("preview updated (%d bytes)", buf.Len())
	return nil
}

func (s *HTTPServer) latestPNG() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.png
}

func (s *HTTPServer) staticHandler() http.Handler {
	page := http.FileServer(http.FS(assets.WebUI))

	var static http.FileSystem
	if dir := s.StaticDir; dir != "" {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			static = http.Dir(dir)
		} else if s.Logger != nil {
			s.Logger.Errorf("web", "static dir %q unusable, serving embedded page only", dir)
		}
	}
	files := http.FileServer(static)

	spritePath := s.SpritePath
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Clean path to avoid oddities.
		r.URL.Path = filepath.ToSlash(filepath.Clean("/" + r.URL.Path))
		switch {
		case spritePath != "" && r.URL.Path == "/"+sprite.DefaultName:
			http.ServeFile(w, r, spritePath)
		case r.URL.Path == "/" || r.URL.Path == "/index.html":
			page.ServeHTTP(w, r)
		case static != nil && isFile(static, r.URL.Path):
			files.ServeHTTP(w, r)
		default:
			page.ServeHTTP(w, r)
		}
	})
}

func isFile(fsys http.FileSystem, name string) bool {
	f, err := fsys.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	st, err := f.Stat()
	return err == nil && !st.IsDir()
}

func (s *HTTPServer) infof(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Infof("web", format, args...)
	}
}
