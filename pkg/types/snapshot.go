package types

import (
	"time"

	"github.com/oskarhn/gridword-backend/internal/model"
)

// GameSnapshot is the full resync view of one game: phase, clock, and every
// player's grid and per-turn state. Clients that missed events rebuild from
// this.
type GameSnapshot struct {
	GameID        string       `json:"game_id"`
	RoomID        string       `json:"room_id"`
	Phase         model.Phase  `json:"phase"`
	CurrentTurn   int          `json:"current_turn"`
	TurnNumber    int          `json:"turn_number"`
	CurrentLetter string       `json:"current_letter,omitempty"`
	PhaseDeadline time.Time    `json:"phase_deadline"`
	FinishedAt    *time.Time   `json:"finished_at,omitempty"`
	Players       []PlayerView `json:"players"`
}

type PlayerView struct {
	PlayerID       string            `json:"player_id"`
	UserID         string            `json:"user_id"`
	Position       int               `json:"position"`
	Grid           model.Grid        `json:"grid"`
	PlacementState string            `json:"placement_state"`
	Score          int               `json:"score"`
	Words          []model.WordScore `json:"words"`
	Left           bool              `json:"left"`
}
