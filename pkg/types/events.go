package types

import (
	"time"

	"github.com/oskarhn/gridword-backend/internal/model"
)

// Event names published by the engine. Delivery is fire-and-forget; clients
// that miss one resynchronize from the game snapshot.
const (
	EvtPhaseChanged    = "phase_changed"
	EvtLetterSelected  = "letter_selected"
	EvtLetterPlaced    = "letter_placed"
	EvtPlacementIntent = "placement_intent"
	EvtPlayerLeft      = "player_left"
	EvtGameEnded       = "game_ended"
)

type PhaseChanged struct {
	Phase       model.Phase `json:"phase"`
	Deadline    time.Time   `json:"deadline"`
	CurrentTurn int         `json:"current_turn"`
	TurnNumber  int         `json:"turn_number"`
}

type LetterSelected struct {
	Letter     string `json:"letter"`
	Position   int    `json:"position"`
	TurnNumber int    `json:"turn_number"`
	Auto       bool   `json:"auto"` // drawn by the timeout fallback
}

type LetterPlaced struct {
	Position int    `json:"position"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Letter   string `json:"letter"`
	Auto     bool   `json:"auto"`
}

type PlacementIntent struct {
	Position int `json:"position"`
}

type PlayerLeft struct {
	Position    int  `json:"position"`
	Intentional bool `json:"intentional"`
	Walkover    bool `json:"walkover"`
}

type GameEnded struct {
	Leaderboard []model.LeaderboardEntry `json:"leaderboard"`
	Walkover    bool                     `json:"walkover"`
}
