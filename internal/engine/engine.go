// Package engine owns the phase/turn state machine for a game: letter
// selection, placement, timer-driven fallbacks, departures and game end.
// Manual commands and expiring timers converge on the same transition
// functions; every entry point reloads state under the game's lock and
// re-validates before mutating, so stale actions are rejected rather than
// applied twice.
package engine

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/oskarhn/gridword-backend/internal/alphabet"
	"github.com/oskarhn/gridword-backend/internal/gametimer"
	"github.com/oskarhn/gridword-backend/internal/model"
	"github.com/oskarhn/gridword-backend/internal/scoring"
)

// Store is the persistence boundary. Implementations must not lose writes;
// no isolation stronger than read-row/write-row is assumed.
type Store interface {
	CreateGame(ctx context.Context, g *model.Game, players []*model.Player) error
	GetGame(ctx context.Context, gameID string) (*model.Game, error)
	SaveGame(ctx context.Context, g *model.Game) error
	GetPlayers(ctx context.Context, gameID string) ([]*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
}

// Publisher delivers events to everyone watching a game. Fire-and-forget:
// the engine never blocks on delivery and assumes no guarantee.
type Publisher interface {
	Publish(gameID string, event string, payload any)
}

type Config struct {
	GridSize         int
	SelectionTimeout time.Duration
	PlacementTimeout time.Duration
}

type Engine struct {
	store  Store
	pub    Publisher
	timers *gametimer.Registry
	scorer *scoring.Scorer
	alpha  *alphabet.Alphabet
	log    *zap.Logger
	cfg    Config

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(store Store, pub Publisher, timers *gametimer.Registry, scorer *scoring.Scorer, alpha *alphabet.Alphabet, log *zap.Logger, cfg Config) *Engine {
	return &Engine{
		store:  store,
		pub:    pub,
		timers: timers,
		scorer: scorer,
		alpha:  alpha,
		log:    log,
		cfg:    cfg,
		locks:  make(map[string]*sync.Mutex),
	}
}

// gameLock returns the per-game mutex, creating it on first use. Timers and
// locks are per-game; there is no cross-game contention.
func (e *Engine) gameLock(gameID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[gameID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[gameID] = l
	}
	return l
}

// load reloads game and players fresh from the store. State read before the
// lock was taken is never trusted.
func (e *Engine) load(ctx context.Context, gameID string) (*model.Game, []*model.Player, error) {
	g, err := e.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrGameNotFound
	}
	players, err := e.store.GetPlayers(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	return g, players, nil
}

func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
