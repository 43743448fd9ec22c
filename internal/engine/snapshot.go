package engine

import (
	"context"

	"github.com/oskarhn/gridword-backend/pkg/types"
)

// Snapshot builds the full resync view of a game. Read-only; taken under the
// game lock so a snapshot never interleaves with a half-applied transition.
func (e *Engine) Snapshot(ctx context.Context, gameID string) (*types.GameSnapshot, error) {
	l := e.gameLock(gameID)
	l.Lock()
	defer l.Unlock()

	g, players, err := e.load(ctx, gameID)
	if err != nil {
		return nil, err
	}

	snap := &types.GameSnapshot{
		GameID:        g.ID,
		RoomID:        g.RoomID,
		Phase:         g.Phase,
		CurrentTurn:   g.CurrentTurn,
		TurnNumber:    g.TurnNumber,
		CurrentLetter: g.CurrentLetter,
		PhaseDeadline: g.PhaseDeadline,
		FinishedAt:    g.FinishedAt,
	}
	for _, p := range players {
		snap.Players = append(snap.Players, types.PlayerView{
			PlayerID:       p.ID,
			UserID:         p.UserID,
			Position:       p.Position,
			Grid:           p.Grid,
			PlacementState: p.PlacementState.String(),
			Score:          p.FinalScore,
			Words:          p.Words,
			Left:           !p.Active(),
		})
	}
	return snap, nil
}
