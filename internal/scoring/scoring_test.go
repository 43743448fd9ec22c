package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskarhn/gridword-backend/internal/lexicon"
	"github.com/oskarhn/gridword-backend/internal/model"
)

func gridFromRows(rows ...string) model.Grid {
	g := model.NewGrid(len(rows))
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if r != '.' {
				g.Set(x, y, string(r))
			}
			x++
		}
	}
	return g
}

func TestScore_WholeLineWordGetsBonus(t *testing.T) {
	lex := lexicon.NewSet([]string{"AT", "CAT", "CATS"})
	s := New(lex)

	g := gridFromRows(
		"CATS",
		"....",
		"....",
		"....",
	)
	gs := s.Score(g)

	// CATS as a single whole-row word: 4 letters + 2 bonus. "CAT"+invalid S
	// or "AT" alone would score less.
	require.Len(t, gs.Words, 1)
	assert.Equal(t, "CATS", gs.Words[0].Word)
	assert.Equal(t, 6, gs.Words[0].Points)
	assert.True(t, gs.Words[0].Complete)
	assert.Equal(t, model.Horizontal, gs.Words[0].Direction)
	assert.Equal(t, 0, gs.Words[0].X)
	assert.Equal(t, 0, gs.Words[0].Y)
	assert.Equal(t, 6, gs.Total)
	assert.Equal(t, 1, gs.CompleteRows)
	assert.Equal(t, 0, gs.CompleteCols)
}

func TestScore_PartialRunGetsNoBonus(t *testing.T) {
	lex := lexicon.NewSet([]string{"CAT"})
	s := New(lex)

	// Row is not fully filled, so no completeness bonus even though CAT is
	// the whole run.
	g := gridFromRows(
		"CAT.",
		"....",
		"....",
		"....",
	)
	gs := s.Score(g)

	require.Len(t, gs.Words, 1)
	assert.Equal(t, "CAT", gs.Words[0].Word)
	assert.Equal(t, 3, gs.Words[0].Points)
	assert.False(t, gs.Words[0].Complete)
}

func TestScore_MultiWordPartitionOfCompleteLineGetsNoBonus(t *testing.T) {
	lex := lexicon.NewSet([]string{"AT", "CAT"})
	s := New(lex)

	// Full 5-wide row "ATCAT" splits into AT + CAT = 5 points; a multi-word
	// partition of a complete line earns no bonus.
	g := gridFromRows(
		"ATCAT",
		".....",
		".....",
		".....",
		".....",
	)
	gs := s.Score(g)

	require.Len(t, gs.Words, 2)
	assert.Equal(t, "AT", gs.Words[0].Word)
	assert.Equal(t, "CAT", gs.Words[1].Word)
	assert.Equal(t, 5, gs.Total)
	for _, w := range gs.Words {
		assert.False(t, w.Complete)
	}
	assert.Equal(t, 1, gs.CompleteRows)
}

func TestScore_OptimalPartitionBeatsGreedy(t *testing.T) {
	// Greedy left-to-right would take AB (2) and miss BCD (3); the optimal
	// choice skips the first letter. Run: A B C D with words AB and BCD.
	lex := lexicon.NewSet([]string{"AB", "BCD"})
	s := New(lex)

	g := gridFromRows(
		"ABCD",
		"....",
		"....",
		"....",
	)
	gs := s.Score(g)

	require.Len(t, gs.Words, 1)
	assert.Equal(t, "BCD", gs.Words[0].Word)
	assert.Equal(t, 3, gs.Total)
}

func TestScore_HighScoringPrefixKeptWhenTailDies(t *testing.T) {
	lex := lexicon.NewSet([]string{"CAT"})
	s := New(lex)

	// The run is CATXX; the tail cannot be continued but the CAT prefix is
	// still scored.
	g := gridFromRows(
		"CATXX",
		".....",
		".....",
		".....",
		".....",
	)
	gs := s.Score(g)

	require.Len(t, gs.Words, 1)
	assert.Equal(t, "CAT", gs.Words[0].Word)
	assert.Equal(t, 3, gs.Total)
}

func TestScore_RowAndColumnScoredIndependently(t *testing.T) {
	lex := lexicon.NewSet([]string{"AT", "TA"})
	s := New(lex)

	// Every cell is part of one horizontal and one vertical word:
	//   A T        rows: AT, TA   cols: AT, TA
	//   T A
	g := gridFromRows(
		"AT",
		"TA",
	)
	gs := s.Score(g)

	require.Len(t, gs.Words, 4)
	// Each word fills a complete 2-cell line on its own: 2 + 2 bonus.
	for _, w := range gs.Words {
		assert.Equal(t, 4, w.Points)
		assert.True(t, w.Complete)
	}
	assert.Equal(t, 16, gs.Total)
	assert.Equal(t, 2, gs.CompleteRows)
	assert.Equal(t, 2, gs.CompleteCols)
}

func TestScore_EmptyCellBreaksRuns(t *testing.T) {
	lex := lexicon.NewSet([]string{"ATAT"})
	s := New(lex)

	// AT.AT: the gap splits the line into two runs of 2; ATAT never forms.
	g := gridFromRows(
		"AT.AT",
		".....",
		".....",
		".....",
		".....",
	)
	gs := s.Score(g)
	assert.Empty(t, gs.Words)
	assert.Equal(t, 0, gs.Total)
}

func TestScore_SingleLettersNeverScore(t *testing.T) {
	s := New(lexicon.AcceptAll{})

	g := gridFromRows(
		"A..",
		".B.",
		"..C",
	)
	gs := s.Score(g)
	assert.Empty(t, gs.Words)
	assert.Equal(t, 0, gs.Total)
}

func TestScore_Deterministic(t *testing.T) {
	lex := lexicon.NewSet([]string{"AT", "TA", "CAT", "CATS"})
	s := New(lex)

	g := gridFromRows(
		"CATS",
		"A..A",
		"T.TT",
		"SATS",
	)
	first := s.Score(g)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Score(g))
	}
}
