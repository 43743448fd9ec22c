package model

type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// WordScore is one scored word on a grid. X,Y anchor the first letter.
// Complete marks a word that fills an entire row or column by itself and
// therefore carries the completeness bonus in Points.
type WordScore struct {
	Word      string    `json:"word"`
	Points    int       `json:"points"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Direction Direction `json:"direction"`
	Complete  bool      `json:"complete"`
}

// GridScore is the full scoring breakdown for one grid.
type GridScore struct {
	Words        Words `json:"words"`
	Total        int   `json:"total"`
	CompleteRows int   `json:"complete_rows"`
	CompleteCols int   `json:"complete_cols"`
}

type Words []WordScore

// LeaderboardEntry is one row of the final standings.
type LeaderboardEntry struct {
	Position int         `json:"position"`
	UserID   string      `json:"user_id"`
	Score    int         `json:"score"`
	Words    []WordScore `json:"words"`
	Left     bool        `json:"left"`
}
