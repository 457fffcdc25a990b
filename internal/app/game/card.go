package game

import "math/rand/v2"

const (
	gridSize   = 5
	columnSpan = 15
	freeCell   = 0
)

// NewGrid deals a fresh card: five distinct numbers per column from
// that column's range, free center.
func NewGrid() Grid {
	var g Grid
	for col := 0; col < gridSize; col++ {
		picks := rand.Perm(columnSpan)[:gridSize]
		for row := 0; row < gridSize; row++ {
			g[row][col] = col*columnSpan + picks[row] + 1
		}
	}
	g[gridSize/2][gridSize/2] = freeCell
	return g
}
