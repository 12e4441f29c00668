package state

import (
	"sync"
	"time"
)

type Phase int

const (
	BOOTING Phase = iota
	LOADING
	RENDERING
	DONE
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case LOADING:
		return "loading"
	case RENDERING:
		return "rendering"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

type SpriteInfo struct {
	Locator string
	Width   int
	Height  int
}

type RenderInfo struct {
	Depth   uint
	Draws   int
	Elapsed time.Duration
}

type State struct {
	Phase  Phase
	Sprite SpriteInfo
	Render RenderInfo
	Err    string
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) UpdateSprite(sprite SpriteInfo) {
	store.mu.Lock()
	store.state.Sprite = sprite
	store.mu.Unlock()
}

func (store *Store) UpdateRender(render RenderInfo) {
	store.mu.Lock()
	store.state.Render = render
	store.mu.Unlock()
}

// Fail moves the store to ERROR and keeps err's message.
func (store *Store) Fail(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}
