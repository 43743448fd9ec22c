package model

import (
	"testing"
	"time"
)

func seated(positions ...int) []*Player {
	var players []*Player
	for _, pos := range positions {
		players = append(players, &Player{Position: pos})
	}
	return players
}

func TestNextActivePosition(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		left []int // positions marked departed
		from int
		want int
	}{
		{name: "simple rotation", from: 1, want: 2},
		{name: "wraps around", from: 3, want: 1},
		{name: "skips departed seat", left: []int{2}, from: 1, want: 3},
		{name: "skips departed seat on wrap", left: []int{1}, from: 3, want: 2},
		{name: "nobody active", left: []int{1, 2, 3}, from: 1, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			players := seated(1, 2, 3)
			for _, pos := range tc.left {
				PlayerAtPosition(players, pos).LeftAt = &now
			}
			if got := NextActivePosition(players, tc.from); got != tc.want {
				t.Fatalf("NextActivePosition: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestGrid_FirstEmptyRowMajor(t *testing.T) {
	g := NewGrid(2)
	g.Set(0, 0, "A")

	x, y, ok := g.FirstEmpty()
	if !ok || x != 1 || y != 0 {
		t.Fatalf("want (1,0), got (%d,%d) ok=%v", x, y, ok)
	}

	g.Set(1, 0, "B")
	g.Set(0, 1, "C")
	g.Set(1, 1, "D")
	if !g.Full() {
		t.Fatalf("grid should be full")
	}
}

func TestPlacementState_String(t *testing.T) {
	for state, want := range map[PlacementState]string{
		PlacementNone:      "none",
		PlacementIntent:    "intent",
		PlacementPlaced:    "placed",
		PlacementConfirmed: "confirmed",
	} {
		if got := state.String(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}
