// Package scoring turns a filled grid into points. Score is a pure function
// of the grid's cells; it holds no state beyond the injected lexicon.
package scoring

import (
	"strings"

	"github.com/oskarhn/gridword-backend/internal/lexicon"
	"github.com/oskarhn/gridword-backend/internal/model"
)

// CompleteLineBonus is added to a word's points when it spans a full row or
// column by itself.
const CompleteLineBonus = 2

type Scorer struct {
	lex lexicon.Lexicon
}

func New(lex lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score computes the full breakdown for a grid. Every row and column is
// scored independently, so one cell can contribute to both a horizontal and
// a vertical word.
func (s *Scorer) Score(grid model.Grid) model.GridScore {
	var gs model.GridScore
	size := grid.Size()

	for y := 0; y < size; y++ {
		line := grid.Row(y)
		words := s.scoreLine(line, func(i int) (int, int) { return i, y }, model.Horizontal)
		gs.Words = append(gs.Words, words...)
		if fullLine(line) {
			gs.CompleteRows++
		}
	}
	for x := 0; x < size; x++ {
		line := grid.Col(x)
		words := s.scoreLine(line, func(i int) (int, int) { return x, i }, model.Vertical)
		gs.Words = append(gs.Words, words...)
		if fullLine(line) {
			gs.CompleteCols++
		}
	}

	for _, w := range gs.Words {
		gs.Total += w.Points
	}
	return gs
}

// scoreLine splits one row or column into maximal contiguous letter runs and
// scores each run. coord maps a line index to grid coordinates.
func (s *Scorer) scoreLine(line []string, coord func(i int) (x, y int), dir model.Direction) []model.WordScore {
	var out []model.WordScore
	full := fullLine(line)

	start := 0
	for start < len(line) {
		if line[start] == "" {
			start++
			continue
		}
		end := start
		for end < len(line) && line[end] != "" {
			end++
		}
		run := line[start:end]
		if len(run) >= 2 {
			wholeLine := full && start == 0 && end == len(line)
			for _, w := range s.scoreRun(run, wholeLine) {
				x, y := coord(start + w.offset)
				out = append(out, model.WordScore{
					Word:      w.word,
					Points:    w.points,
					X:         x,
					Y:         y,
					Direction: dir,
					Complete:  w.complete,
				})
			}
		}
		start = end
	}
	return out
}

type runWord struct {
	word     string
	points   int
	offset   int // index of the first letter within the run
	complete bool
}

// scoreRun finds the set of non-overlapping contiguous words inside one run
// that maximizes total points. Forward DP over run prefixes: best[i] is the
// highest value achievable using only letters before position i, either by
// skipping letter i-1 (best[i-1]) or by ending a dictionary word run[j..i)
// at i. Letters not covered by a chosen word score nothing. best[n] is the
// overall optimum since skipping is always allowed.
func (s *Scorer) scoreRun(run []string, wholeLine bool) []runWord {
	n := len(run)
	best := make([]int, n+1)
	// from[i] = start index of the word ending at i in the optimal solution,
	// or -1 when position i-1 is skipped.
	from := make([]int, n+1)

	for i := 1; i <= n; i++ {
		best[i] = best[i-1]
		from[i] = -1
		for j := 0; j <= i-2; j++ {
			word := strings.Join(run[j:i], "")
			if !s.lex.HasWord(word) {
				continue
			}
			if v := best[j] + (i - j); v > best[i] {
				best[i] = v
				from[i] = j
			}
		}
	}

	// Walk back from the end to recover the chosen words.
	var words []runWord
	for i := n; i > 0; {
		if from[i] < 0 {
			i--
			continue
		}
		j := from[i]
		words = append(words, runWord{
			word:   strings.Join(run[j:i], ""),
			points: i - j,
			offset: j,
		})
		i = j
	}
	// Reverse into left-to-right order.
	for l, r := 0, len(words)-1; l < r; l, r = l+1, r-1 {
		words[l], words[r] = words[r], words[l]
	}

	// The completeness bonus applies only when the run fills the whole line
	// and the chosen partition is a single word spanning the entire run.
	if wholeLine && len(words) == 1 && words[0].points == n {
		words[0].points += CompleteLineBonus
		words[0].complete = true
	}
	return words
}

func fullLine(line []string) bool {
	for _, c := range line {
		if c == "" {
			return false
		}
	}
	return true
}
