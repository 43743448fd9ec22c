package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/oskarhn/gridword-backend/internal/model"
	"github.com/oskarhn/gridword-backend/pkg/types"
)

// StartGame snapshots the room membership (already in join order), seats
// positions 1..N with empty grids, and opens the first letter-selection
// phase.
func (e *Engine) StartGame(ctx context.Context, roomID string, userIDs []string) (*model.Game, error) {
	g := &model.Game{
		ID:            randomID(),
		RoomID:        roomID,
		Phase:         model.PhaseLetterSelection,
		CurrentTurn:   1,
		TurnNumber:    1,
		GridSize:      e.cfg.GridSize,
		PhaseDeadline: time.Now().Add(e.cfg.SelectionTimeout),
		CreatedAt:     time.Now(),
	}

	players := make([]*model.Player, 0, len(userIDs))
	for i, userID := range userIDs {
		players = append(players, &model.Player{
			ID:       randomID(),
			GameID:   g.ID,
			UserID:   userID,
			Position: i + 1,
			Grid:     model.NewGrid(e.cfg.GridSize),
		})
	}

	if err := e.store.CreateGame(ctx, g, players); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	e.scheduleSelectionTimeout(g)
	e.log.Info("game started",
		zap.String("game_id", g.ID),
		zap.String("room_id", roomID),
		zap.Int("players", len(players)))
	e.publishPhase(g)
	return g, nil
}

// SelectLetter records the shared letter for this turn. Only the player at
// CurrentTurn may select, and only during letter selection.
func (e *Engine) SelectLetter(ctx context.Context, gameID, playerID, letter string) error {
	l := e.gameLock(gameID)
	l.Lock()
	defer l.Unlock()

	g, players, err := e.load(ctx, gameID)
	if err != nil {
		return err
	}
	if g.Phase != model.PhaseLetterSelection {
		return ErrWrongPhase
	}
	p := playerByID(players, playerID)
	if p == nil || !p.Active() || p.Position != g.CurrentTurn {
		return ErrNotYourTurn
	}
	letter = e.alpha.Normalize(letter)
	if !e.alpha.Contains(letter) {
		return ErrInvalidLetter
	}

	// A manual selection preempts the pending deadline.
	e.timers.Cancel(gameID)
	return e.applySelection(ctx, g, players, p, letter, false)
}

// applySelection is the shared path for manual and timed-out selections:
// store the letter on the game, hand it to every active player, and open the
// placement phase with a fresh deadline.
func (e *Engine) applySelection(ctx context.Context, g *model.Game, players []*model.Player, by *model.Player, letter string, auto bool) error {
	g.CurrentLetter = letter
	for _, p := range model.ActivePlayers(players) {
		p.HeldLetter = letter
		p.PlacementState = model.PlacementNone
		if err := e.store.SavePlayer(ctx, p); err != nil {
			return fmt.Errorf("save player: %w", err)
		}
	}
	e.pub.Publish(g.ID, types.EvtLetterSelected, types.LetterSelected{
		Letter:     letter,
		Position:   by.Position,
		TurnNumber: g.TurnNumber,
		Auto:       auto,
	})

	g.Phase = model.PhaseLetterPlacement
	g.PhaseDeadline = time.Now().Add(e.cfg.PlacementTimeout)
	if err := e.store.SaveGame(ctx, g); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	e.schedulePlacementTimeout(g)
	e.publishPhase(g)
	return nil
}

// PlaceLetter writes the player's held letter into an empty in-bounds cell.
// Final once written; there is no retraction.
func (e *Engine) PlaceLetter(ctx context.Context, gameID, playerID string, x, y int) error {
	l := e.gameLock(gameID)
	l.Lock()
	defer l.Unlock()

	g, players, err := e.load(ctx, gameID)
	if err != nil {
		return err
	}
	if g.Phase != model.PhaseLetterPlacement {
		return ErrWrongPhase
	}
	p := playerByID(players, playerID)
	if p == nil || !p.Active() {
		return ErrGameNotFound
	}
	if p.HeldLetter == "" {
		return ErrNoLetterHeld
	}
	if !p.Grid.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if p.Grid.At(x, y) != "" {
		return ErrCellOccupied
	}

	p.Grid.Set(x, y, p.HeldLetter)
	letter := p.HeldLetter
	p.HeldLetter = ""
	p.PlacementState = model.PlacementPlaced
	if err := e.store.SavePlayer(ctx, p); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	e.pub.Publish(g.ID, types.EvtLetterPlaced, types.LetterPlaced{
		Position: p.Position, X: x, Y: y, Letter: letter,
	})
	return nil
}

// SetPlacementIntent is advisory only: it tells the other players "about to
// move". The timeout fallback and the all-confirmed check treat INTENT the
// same as NONE.
func (e *Engine) SetPlacementIntent(ctx context.Context, gameID, playerID string) error {
	l := e.gameLock(gameID)
	l.Lock()
	defer l.Unlock()

	g, players, err := e.load(ctx, gameID)
	if err != nil {
		return err
	}
	if g.Phase != model.PhaseLetterPlacement {
		return ErrWrongPhase
	}
	p := playerByID(players, playerID)
	if p == nil || !p.Active() {
		return ErrGameNotFound
	}
	if p.PlacementState != model.PlacementNone {
		// Never regress a PLACED/CONFIRMED state; repeat intents are no-ops.
		return nil
	}
	p.PlacementState = model.PlacementIntent
	if err := e.store.SavePlayer(ctx, p); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	e.pub.Publish(g.ID, types.EvtPlacementIntent, types.PlacementIntent{Position: p.Position})
	return nil
}

// ConfirmPlacement locks in the player's placement for this turn and
// refreshes their running score. When every active player has confirmed, the
// turn resolves.
func (e *Engine) ConfirmPlacement(ctx context.Context, gameID, playerID string) error {
	l := e.gameLock(gameID)
	l.Lock()
	defer l.Unlock()

	g, players, err := e.load(ctx, gameID)
	if err != nil {
		return err
	}
	if g.Phase != model.PhaseLetterPlacement {
		return ErrWrongPhase
	}
	p := playerByID(players, playerID)
	if p == nil || !p.Active() {
		return ErrGameNotFound
	}
	if p.PlacementState != model.PlacementPlaced {
		return ErrNoPlacementToConfirm
	}

	gs := e.scorer.Score(p.Grid)
	p.FinalScore = gs.Total
	p.Words = gs.Words
	p.PlacementState = model.PlacementConfirmed
	if err := e.store.SavePlayer(ctx, p); err != nil {
		return fmt.Errorf("save player: %w", err)
	}

	if allConfirmed(players) {
		return e.endCheckOrAdvance(ctx, g, players)
	}
	return nil
}

// scheduleSelectionTimeout arms the auto-draw fallback for the current
// selection phase. The closure re-validates phase and turn number on fire,
// so a fire that lost the race to a manual selection is dropped.
func (e *Engine) scheduleSelectionTimeout(g *model.Game) {
	gameID, turn := g.ID, g.TurnNumber
	e.timers.Schedule(gameID, time.Until(g.PhaseDeadline), func() {
		e.selectionTimedOut(gameID, turn)
	})
}

func (e *Engine) selectionTimedOut(gameID string, turn int) {
	ctx := context.Background()
	l := e.gameLock(gameID)
	l.Lock()
	defer l.Unlock()

	g, players, err := e.load(ctx, gameID)
	if err != nil {
		e.log.Error("selection timeout: load failed", zap.String("game_id", gameID), zap.Error(err))
		return
	}
	if g.Phase != model.PhaseLetterSelection || g.TurnNumber != turn {
		// Manual action already closed this phase.
		return
	}
	p := model.PlayerAtPosition(players, g.CurrentTurn)
	if p == nil || !p.Active() {
		return
	}

	letter := e.alpha.Draw()
	e.log.Warn("selection timed out, drawing letter",
		zap.String("game_id", gameID),
		zap.Int("turn", turn),
		zap.String("letter", letter))
	// The timeout does not cancel its own timer; applySelection simply arms
	// the next one.
	if err := e.applySelection(ctx, g, players, p, letter, true); err != nil {
		e.log.Error("selection timeout: apply failed", zap.String("game_id", gameID), zap.Error(err))
	}
}

func (e *Engine) schedulePlacementTimeout(g *model.Game) {
	gameID, turn := g.ID, g.TurnNumber
	e.timers.Schedule(gameID, time.Until(g.PhaseDeadline), func() {
		e.placementTimedOut(gameID, turn)
	})
}

// placementTimedOut auto-plays every active player who never placed this
// turn: their held letter goes into the first empty cell in row-major order
// and they are confirmed. Re-validation makes a duplicate fire a no-op.
func (e *Engine) placementTimedOut(gameID string, turn int) {
	ctx := context.Background()
	l := e.gameLock(gameID)
	l.Lock()
	defer l.Unlock()

	g, players, err := e.load(ctx, gameID)
	if err != nil {
		e.log.Error("placement timeout: load failed", zap.String("game_id", gameID), zap.Error(err))
		return
	}
	if g.Phase != model.PhaseLetterPlacement || g.TurnNumber != turn {
		return
	}

	for _, p := range model.ActivePlayers(players) {
		switch p.PlacementState {
		case model.PlacementNone, model.PlacementIntent:
			if p.HeldLetter != "" {
				if x, y, ok := p.Grid.FirstEmpty(); ok {
					p.Grid.Set(x, y, p.HeldLetter)
					e.pub.Publish(g.ID, types.EvtLetterPlaced, types.LetterPlaced{
						Position: p.Position, X: x, Y: y, Letter: p.HeldLetter, Auto: true,
					})
				}
				p.HeldLetter = ""
			}
			fallthrough
		case model.PlacementPlaced:
			gs := e.scorer.Score(p.Grid)
			p.FinalScore = gs.Total
			p.Words = gs.Words
			p.PlacementState = model.PlacementConfirmed
			if err := e.store.SavePlayer(ctx, p); err != nil {
				e.log.Error("placement timeout: save failed",
					zap.String("game_id", gameID),
					zap.String("player_id", p.ID),
					zap.Error(err))
			}
		}
	}

	if err := e.endCheckOrAdvance(ctx, g, players); err != nil {
		e.log.Error("placement timeout: advance failed", zap.String("game_id", gameID), zap.Error(err))
	}
}

// endCheckOrAdvance resolves a completed turn: finish the game if any active
// grid is full, otherwise rotate the turn to the next active position and
// open a fresh selection phase.
func (e *Engine) endCheckOrAdvance(ctx context.Context, g *model.Game, players []*model.Player) error {
	for _, p := range model.ActivePlayers(players) {
		if p.Grid.Full() {
			return e.finishGame(ctx, g, players, nil)
		}
	}

	g.CurrentTurn = model.NextActivePosition(players, g.CurrentTurn)
	g.TurnNumber++
	g.CurrentLetter = ""
	for _, p := range model.ActivePlayers(players) {
		p.PlacementState = model.PlacementNone
		p.HeldLetter = ""
		if err := e.store.SavePlayer(ctx, p); err != nil {
			return fmt.Errorf("save player: %w", err)
		}
	}
	g.Phase = model.PhaseLetterSelection
	g.PhaseDeadline = time.Now().Add(e.cfg.SelectionTimeout)
	if err := e.store.SaveGame(ctx, g); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	e.scheduleSelectionTimeout(g)
	e.publishPhase(g)
	return nil
}

// finishGame closes the game and builds the leaderboard. Every player who
// ever participated is scored, departed ones included; a walkover loser is
// forced to zero.
func (e *Engine) finishGame(ctx context.Context, g *model.Game, players []*model.Player, walkoverLoser *model.Player) error {
	e.timers.Cancel(g.ID)

	now := time.Now()
	g.Phase = model.PhaseFinished
	g.FinishedAt = &now
	g.CurrentLetter = ""
	if err := e.store.SaveGame(ctx, g); err != nil {
		return fmt.Errorf("save game: %w", err)
	}

	for _, p := range players {
		gs := e.scorer.Score(p.Grid)
		p.FinalScore = gs.Total
		p.Words = gs.Words
		if walkoverLoser != nil && p.ID == walkoverLoser.ID {
			// Abandoning a match forfeits its points; the row stays on the
			// leaderboard for record-keeping.
			p.FinalScore = 0
		}
		if err := e.store.SavePlayer(ctx, p); err != nil {
			return fmt.Errorf("save player: %w", err)
		}
	}

	board := leaderboard(players)
	e.log.Info("game finished",
		zap.String("game_id", g.ID),
		zap.Bool("walkover", walkoverLoser != nil))
	e.pub.Publish(g.ID, types.EvtGameEnded, types.GameEnded{
		Leaderboard: board,
		Walkover:    walkoverLoser != nil,
	})
	return nil
}

func (e *Engine) publishPhase(g *model.Game) {
	e.pub.Publish(g.ID, types.EvtPhaseChanged, types.PhaseChanged{
		Phase:       g.Phase,
		Deadline:    g.PhaseDeadline,
		CurrentTurn: g.CurrentTurn,
		TurnNumber:  g.TurnNumber,
	})
}

func leaderboard(players []*model.Player) []model.LeaderboardEntry {
	sorted := make([]*model.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FinalScore != sorted[j].FinalScore {
			return sorted[i].FinalScore > sorted[j].FinalScore
		}
		return sorted[i].Position < sorted[j].Position
	})
	board := make([]model.LeaderboardEntry, len(sorted))
	for i, p := range sorted {
		board[i] = model.LeaderboardEntry{
			Position: p.Position,
			UserID:   p.UserID,
			Score:    p.FinalScore,
			Words:    p.Words,
			Left:     !p.Active(),
		}
	}
	return board
}

func playerByID(players []*model.Player, id string) *model.Player {
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func allConfirmed(players []*model.Player) bool {
	for _, p := range model.ActivePlayers(players) {
		if p.PlacementState != model.PlacementConfirmed {
			return false
		}
	}
	return true
}
