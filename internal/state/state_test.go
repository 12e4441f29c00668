package state

import (
	"errors"
	"sync"
	"testing"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()
	if got := store.Snapshot().Phase; got != BOOTING {
		t.Fatalf("initial phase = %v, want booting", got)
	}

	store.SetPhase(LOADING)
	store.UpdateSprite(SpriteInfo{Locator: "Idle (1).png", Width: 4, Height: 2})
	store.SetPhase(RENDERING)
	store.UpdateRender(RenderInfo{Depth: 6, Draws: 364})
	store.SetPhase(DONE)

	snap := store.Snapshot()
	if snap.Phase != DONE || snap.Sprite.Width != 4 || snap.Render.Draws != 364 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestStoreFail(t *testing.T) {
	store := NewStore()
	store.Fail(errors.New("no sprite"))

	snap := store.Snapshot()
	if snap.Phase != ERROR || snap.Err != "no sprite" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			store.UpdateRender(RenderInfo{Draws: n})
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		BOOTING:   "booting",
		LOADING:   "loading",
		RENDERING: "rendering",
		DONE:      "done",
		ERROR:     "error",
		Phase(42): "unknown",
	}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
