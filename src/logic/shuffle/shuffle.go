package shuffle

import (
	"math/rand/v2"
	"tilepuzzle/src/base"
)

// target positions in row-major order
func Layout(g base.Grid) []base.Point {
	out := make([]base.Point, 0, g.Cells())
	for i := 0; i < g.Cells(); i++ {
		out = append(out, g.PointOf(g.CellAt(i)))
	}
	return out
}

// Fisher-Yates in place
func Shuffle(positions []base.Point, rng *rand.Rand) {
	for i := len(positions) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
}

// NewPieces lays out the grid and scatters the pieces over a permutation of
// their own targets. Every piece starts unmarked.
func NewPieces(g base.Grid, rng *rand.Rand) []base.Piece {
	targets := Layout(g)
	positions := make([]base.Point, len(targets))
	copy(positions, targets)
	Shuffle(positions, rng)

	pieces := make([]base.Piece, len(targets))
	for i := range targets {
		pieces[i] = base.Piece{
			Index:   i,
			Current: positions[i],
			Target:  targets[i],
		}
	}
	return pieces
}
