package model

import "time"

type Phase string

const (
	PhaseLetterSelection Phase = "letter_selection"
	PhaseLetterPlacement Phase = "letter_placement"
	PhaseFinished        Phase = "finished"
)

// PlacementState tracks a player's per-turn progress from holding a letter
// through confirming its placement. Within one turn it only moves forward:
// NONE/INTENT -> PLACED -> CONFIRMED.
type PlacementState int

const (
	PlacementNone PlacementState = iota
	PlacementIntent
	PlacementPlaced
	PlacementConfirmed
)

func (s PlacementState) String() string {
	switch s {
	case PlacementNone:
		return "none"
	case PlacementIntent:
		return "intent"
	case PlacementPlaced:
		return "placed"
	case PlacementConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Game is one match. CurrentLetter is empty except between a letter being
// selected and the end of that placement phase; exactly one letter is active
// game-wide at any time.
type Game struct {
	ID            string `gorm:"primaryKey"`
	RoomID        string `gorm:"index;not null"`
	Phase         Phase  `gorm:"not null"`
	CurrentTurn   int    `gorm:"not null"` // 1-based player position
	TurnNumber    int    `gorm:"not null"` // monotonic, bumps every rotation step
	CurrentLetter string
	GridSize      int       `gorm:"not null"`
	PhaseDeadline time.Time `gorm:"not null"`
	CreatedAt     time.Time
	FinishedAt    *time.Time
}

func (g *Game) Finished() bool { return g.Phase == PhaseFinished }
