package model

import (
	"sort"
	"time"
)

// Player is one participant in one game. Rows are never hard-deleted; a
// departed player keeps their row with LeftAt set so historical stats stay
// queryable.
type Player struct {
	ID             string         `gorm:"primaryKey"`
	GameID         string         `gorm:"index;not null"`
	UserID         string         `gorm:"index;not null"`
	Position       int            `gorm:"not null"` // 1..N, dense, assigned by join order
	Grid           Grid           `gorm:"serializer:json"`
	PlacementState PlacementState `gorm:"not null"`
	HeldLetter     string
	FinalScore     int
	Words          []WordScore `gorm:"serializer:json"` // last computed word list
	LeftAt         *time.Time
}

func (p *Player) Active() bool { return p.LeftAt == nil }

// ActivePlayers filters to players still in the game, ordered by position.
func ActivePlayers(players []*Player) []*Player {
	var out []*Player
	for _, p := range players {
		if p.Active() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// PlayerAtPosition returns the player seated at pos, or nil.
func PlayerAtPosition(players []*Player, pos int) *Player {
	for _, p := range players {
		if p.Position == pos {
			return p
		}
	}
	return nil
}

// NextActivePosition walks the rotation from the position after `from`,
// wrapping around, and returns the first still-active position. Returns 0 if
// nobody active remains.
func NextActivePosition(players []*Player, from int) int {
	maxPos := 0
	for _, p := range players {
		if p.Position > maxPos {
			maxPos = p.Position
		}
	}
	if maxPos == 0 {
		return 0
	}
	pos := from
	for i := 0; i < maxPos; i++ {
		pos = pos%maxPos + 1
		if p := PlayerAtPosition(players, pos); p != nil && p.Active() {
			return pos
		}
	}
	return 0
}
