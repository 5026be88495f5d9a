package shuffle

import (
	"math/rand/v2"
	"testing"
	"tilepuzzle/src/base"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFourByFour(t *testing.T) {
	g := base.Grid{Size: 4, ContainerSize: 400}
	pts := Layout(g)
	require.Len(t, pts, 16)
	assert.Equal(t, base.Point{X: 0, Y: 0}, pts[0])
	assert.Equal(t, base.Point{X: 300, Y: 0}, pts[3])
	assert.Equal(t, base.Point{X: 100, Y: 100}, pts[5])
	assert.Equal(t, base.Point{X: 300, Y: 300}, pts[15])
}

func TestNewPiecesIsBijection(t *testing.T) {
	for size := base.MinGridSize; size <= base.MaxGridSize; size++ {
		for seed := uint64(0); seed < 20; seed++ {
			g := base.Grid{Size: size, ContainerSize: 480}
			pieces := NewPieces(g, rand.New(rand.NewPCG(seed, seed^0x9e37)))
			require.Len(t, pieces, size*size)

			seen := make(map[base.Cell]int)
			for i, p := range pieces {
				assert.Equal(t, i, p.Index)
				assert.False(t, p.Correct)
				c := g.CellOf(p.Current)
				require.True(t, g.InBounds(c), "piece %d out of grid", i)
				assert.Equal(t, g.PointOf(c), p.Current, "piece %d not on a cell", i)
				seen[c]++
				assert.Equal(t, g.PointOf(g.CellAt(i)), p.Target)
			}
			assert.Len(t, seen, size*size, "size %d seed %d", size, seed)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	g := base.Grid{Size: 4, ContainerSize: 400}
	orig := Layout(g)
	pts := Layout(g)
	Shuffle(pts, rand.New(rand.NewPCG(7, 11)))
	assert.ElementsMatch(t, orig, pts)
}

func TestShuffleCoversAllPositions(t *testing.T) {
	// each element should reach each slot over enough runs
	rng := rand.New(rand.NewPCG(1, 2))
	counts := [3][3]int{}
	for n := 0; n < 3000; n++ {
		pts := []base.Point{{X: 0}, {X: 1}, {X: 2}}
		Shuffle(pts, rng)
		for slot, p := range pts {
			counts[int(p.X)][slot]++
		}
	}
	for v := 0; v < 3; v++ {
		for slot := 0; slot < 3; slot++ {
			assert.InDelta(t, 1000, counts[v][slot], 150)
		}
	}
}
