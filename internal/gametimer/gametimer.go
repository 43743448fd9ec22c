// Package gametimer schedules the per-game deadline callbacks that drive
// automatic phase advancement. Each game has at most one pending timer;
// scheduling a new one always cancels the previous first.
package gametimer

import (
	"sync"
	"time"
)

type Registry struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewRegistry() *Registry {
	return &Registry{timers: make(map[string]*time.Timer)}
}

// Schedule arms fn to fire after d for the given game, replacing any pending
// timer for that game. fn runs on the timer goroutine; callers are expected
// to re-validate game state inside fn.
func (r *Registry) Schedule(gameID string, d time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.timers[gameID]; ok {
		t.Stop()
	}
	r.timers[gameID] = time.AfterFunc(d, func() {
		r.mu.Lock()
		delete(r.timers, gameID)
		r.mu.Unlock()
		fn()
	})
}

// Cancel stops the pending timer for a game, if any. Safe to call when no
// timer is armed; a timer that already fired is a no-op to stop.
func (r *Registry) Cancel(gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.timers[gameID]; ok {
		t.Stop()
		delete(r.timers, gameID)
	}
}

// Pending reports whether a timer is currently armed for the game.
func (r *Registry) Pending(gameID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.timers[gameID]
	return ok
}
