package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rook-computer/sierpinski/internal/state"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type statusResponse struct {
	Phase     string  `json:"phase"`
	Sprite    string  `json:"sprite"`
	Width     int     `json:"spriteWidth"`
	Height    int     `json:"spriteHeight"`
	Depth     uint    `json:"depth"`
	Draws     int     `json:"draws"`
	ElapsedMS float64 `json:"elapsedMs"`
	Error     string  `json:"error,omitempty"`
}

func newStatusResponse(snap state.State) statusResponse {
	return statusResponse{
		Phase:     snap.Phase.String(),
		Sprite:    snap.Sprite.Locator,
		Width:     snap.Sprite.Width,
		Height:    snap.Sprite.Height,
		Depth:     snap.Render.Depth,
		Draws:     snap.Render.Draws,
		ElapsedMS: float64(snap.Render.Elapsed) / float64(time.Millisecond),
		Error:     snap.Err,
	}
}

// NewMux builds the preview routes:
//   - /api/v1/status for the render state
//   - /render.png for the last published picture
//   - / for the page, the sprite and the browser build
func (s *HTTPServer) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/render.png", s.handleRender)
	mux.Handle("/", s.staticHandler())
	return mux
}

func (s *HTTPServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if s.Store == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "no state store configured")
		return
	}
	writeJSON(w, http.StatusOK, newStatusResponse(s.Store.Snapshot()))
}

func (s *HTTPServer) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	data := s.latestPNG()
	if data == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "not_rendered", "nothing rendered yet")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(data)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
