package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oskarhn/gridword-backend/internal/model"
	"github.com/oskarhn/gridword-backend/pkg/types"
)

// HandlePlayerLeft marks a player gone, mid-game or not. The row is never
// deleted; LeftAt is a soft marker so historical stats stay queryable. A
// departure never errors the round for the others: the turn rotates past the
// leaver, and with one active player left the game ends as a walkover.
func (e *Engine) HandlePlayerLeft(ctx context.Context, gameID, userID string, intentional bool) error {
	l := e.gameLock(gameID)
	l.Lock()
	defer l.Unlock()

	g, players, err := e.load(ctx, gameID)
	if err != nil {
		return err
	}
	if g.Finished() {
		return nil
	}
	var p *model.Player
	for _, cand := range players {
		if cand.UserID == userID && cand.Active() {
			p = cand
			break
		}
	}
	if p == nil {
		// Unknown or already-left user; nothing to do.
		return nil
	}

	now := time.Now()
	p.LeftAt = &now
	// An uncommitted held letter is discarded, not auto-placed.
	p.HeldLetter = ""
	if err := e.store.SavePlayer(ctx, p); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	e.log.Info("player left",
		zap.String("game_id", gameID),
		zap.String("user_id", userID),
		zap.Int("position", p.Position),
		zap.Bool("intentional", intentional))

	active := model.ActivePlayers(players)
	walkover := len(active) == 1
	e.pub.Publish(g.ID, types.EvtPlayerLeft, types.PlayerLeft{
		Position:    p.Position,
		Intentional: intentional,
		Walkover:    walkover,
	})

	if walkover {
		return e.finishGame(ctx, g, players, p)
	}
	if len(active) == 0 {
		return e.finishGame(ctx, g, players, p)
	}

	if g.CurrentTurn == p.Position {
		// Turn ownership passes in rotation order; the running deadline is
		// kept, and the pending timer re-reads the seat when it fires.
		g.CurrentTurn = model.NextActivePosition(players, g.CurrentTurn)
		if err := e.store.SaveGame(ctx, g); err != nil {
			return fmt.Errorf("save game: %w", err)
		}
		e.publishPhase(g)
	}

	// The leaver may have been the last holdout of the placement phase.
	if g.Phase == model.PhaseLetterPlacement && allConfirmed(players) {
		return e.endCheckOrAdvance(ctx, g, players)
	}
	return nil
}
