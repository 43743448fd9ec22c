package store

import (
	"context"
	"sync"

	"github.com/oskarhn/gridword-backend/internal/model"
)

// MemStore keeps games and players in maps. Rows are copied on the way in
// and out so callers see read-row/write-row semantics like the real store.
type MemStore struct {
	mu      sync.Mutex
	games   map[string]*model.Game
	players map[string][]*model.Player // keyed by game id, ordered by position
}

func NewMemStore() *MemStore {
	return &MemStore{
		games:   make(map[string]*model.Game),
		players: make(map[string][]*model.Player),
	}
}

func (s *MemStore) CreateGame(ctx context.Context, g *model.Game, players []*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = copyGame(g)
	rows := make([]*model.Player, 0, len(players))
	for _, p := range players {
		rows = append(rows, copyPlayer(p))
	}
	s.players[g.ID] = rows
	return nil
}

func (s *MemStore) GetGame(ctx context.Context, gameID string) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok {
		return nil, nil
	}
	return copyGame(g), nil
}

func (s *MemStore) SaveGame(ctx context.Context, g *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = copyGame(g)
	return nil
}

func (s *MemStore) GetPlayers(ctx context.Context, gameID string) ([]*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.players[gameID]
	out := make([]*model.Player, 0, len(rows))
	for _, p := range rows {
		out = append(out, copyPlayer(p))
	}
	return out, nil
}

func (s *MemStore) SavePlayer(ctx context.Context, p *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.players[p.GameID]
	for i, row := range rows {
		if row.ID == p.ID {
			rows[i] = copyPlayer(p)
			return nil
		}
	}
	s.players[p.GameID] = append(rows, copyPlayer(p))
	return nil
}

func copyGame(g *model.Game) *model.Game {
	cp := *g
	if g.FinishedAt != nil {
		t := *g.FinishedAt
		cp.FinishedAt = &t
	}
	return &cp
}

func copyPlayer(p *model.Player) *model.Player {
	cp := *p
	cp.Grid = make(model.Grid, len(p.Grid))
	for y := range p.Grid {
		cp.Grid[y] = append([]string(nil), p.Grid[y]...)
	}
	cp.Words = append([]model.WordScore(nil), p.Words...)
	if p.LeftAt != nil {
		t := *p.LeftAt
		cp.LeftAt = &t
	}
	return &cp
}
