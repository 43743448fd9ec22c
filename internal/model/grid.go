package model

// Grid is a square letter matrix. Empty cells hold "". A cell is written at
// most once per game; placed letters are never moved or erased.
type Grid [][]string

func NewGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]string, size)
	}
	return g
}

func (g Grid) Size() int { return len(g) }

func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

func (g Grid) At(x, y int) string { return g[y][x] }

func (g Grid) Set(x, y int, letter string) { g[y][x] = letter }

// FirstEmpty scans in row-major order and returns the first empty cell.
// ok is false when the grid is full.
func (g Grid) FirstEmpty() (x, y int, ok bool) {
	for yy := range g {
		for xx := range g[yy] {
			if g[yy][xx] == "" {
				return xx, yy, true
			}
		}
	}
	return 0, 0, false
}

func (g Grid) Full() bool {
	_, _, ok := g.FirstEmpty()
	return !ok
}

// Row returns the letters of row y, left to right.
func (g Grid) Row(y int) []string { return g[y] }

// Col returns the letters of column x, top to bottom.
func (g Grid) Col(x int) []string {
	col := make([]string, len(g))
	for y := range g {
		col[y] = g[y][x]
	}
	return col
}
