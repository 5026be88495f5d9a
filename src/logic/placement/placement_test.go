package placement

import (
	"math/rand/v2"
	"testing"
	"tilepuzzle/src/base"
	"tilepuzzle/src/logic/shuffle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// pieces resting on their targets, in order
func solvedState(size int, container float64) *base.State {
	g := base.Grid{Size: size, ContainerSize: container}
	st := &base.State{Grid: g, Phase: base.Playing, Drag: base.Drag{Piece: -1}}
	for i, p := range shuffle.Layout(g) {
		st.Pieces = append(st.Pieces, base.Piece{Index: i, Current: p, Target: p, Correct: true})
	}
	return st
}

func assertNoOverlap(t *testing.T, st *base.State) {
	t.Helper()
	seen := make(map[base.Cell]int)
	for i, p := range st.Pieces {
		c := st.Grid.CellOf(p.Current)
		if j, ok := seen[c]; ok {
			t.Fatalf("pieces %d and %d share cell %+v", j, i, c)
		}
		seen[c] = i
		assert.Equal(t, st.Grid.PointOf(c), p.Current, "piece %d off grid", i)
	}
}

func TestSnapNearestCell(t *testing.T) {
	g := base.Grid{Size: 4, ContainerSize: 400}
	assert.Equal(t, base.Point{X: 100, Y: 200}, Snap(g, base.Point{X: 149, Y: 151}))
	assert.Equal(t, base.Point{X: 200, Y: 0}, Snap(g, base.Point{X: 150, Y: 49}))
	assert.Equal(t, base.Point{X: 0, Y: 300}, Snap(g, base.Point{X: 0, Y: 300}))
}

func TestJudgeTolerance(t *testing.T) {
	p := base.Piece{Current: base.Point{X: 104, Y: 96}, Target: base.Point{X: 100, Y: 100}}
	assert.True(t, Judge(&p))
	assert.Equal(t, p.Target, p.Current)

	p = base.Piece{Current: base.Point{X: 105, Y: 95}, Target: base.Point{X: 100, Y: 100}}
	assert.True(t, Judge(&p))

	p = base.Piece{Current: base.Point{X: 106, Y: 100}, Target: base.Point{X: 100, Y: 100}, Correct: true}
	assert.False(t, Judge(&p))
	assert.Equal(t, base.Point{X: 106, Y: 100}, p.Current)
}

func TestDropOntoOwnTargetIsCorrect(t *testing.T) {
	st := solvedState(3, 300)
	// swap 0 and 1 so both are wrong
	st.Pieces[0].Current, st.Pieces[1].Current = st.Pieces[1].Current, st.Pieces[0].Current
	st.Pieces[0].Correct, st.Pieces[1].Correct = false, false

	// drag piece 0 from (100,0) to near (0,0); its origin (100,0) is now free
	from := st.Pieces[0].Current
	st.Pieces[0].Current = base.Point{X: 3, Y: 2}
	res := Drop(st, 0, from, rng(1))

	assert.True(t, res.Correct)
	assert.Equal(t, base.Point{}, st.Pieces[0].Current)
	require.NotNil(t, res.Displaced)
	assert.Equal(t, 1, res.Displaced.Index)
	// the only free neighbour of (0,0) is the vacated (100,0), piece 1's target
	assert.Equal(t, base.Point{X: 100, Y: 0}, st.Pieces[1].Current)
	assert.True(t, st.Pieces[1].Correct)
	assertNoOverlap(t, st)
}

func TestDropWithoutCollision(t *testing.T) {
	st := solvedState(3, 300)
	st.Pieces = st.Pieces[:8] // cell (2,2) empty
	st.Pieces[0].Current = base.Point{X: 190, Y: 210}
	res := Drop(st, 0, base.Point{}, rng(2))
	assert.Nil(t, res.Displaced)
	assert.False(t, res.Correct)
	assert.False(t, res.Unresolved)
	assert.Equal(t, base.Point{X: 200, Y: 200}, st.Pieces[0].Current)
}

func TestDropRelocatesToFarFreeCell(t *testing.T) {
	// drag the top-left piece to the bottom-right corner of a 4x4 grid:
	// the only free cell is the far-away origin
	st := solvedState(4, 400)
	from := st.Pieces[0].Current
	st.Pieces[0].Current = base.Point{X: 298, Y: 303}
	res := Drop(st, 0, from, rng(3))

	assert.False(t, res.Unresolved)
	assert.Equal(t, base.Point{X: 300, Y: 300}, st.Pieces[0].Current)
	require.NotNil(t, res.Displaced)
	assert.Equal(t, 15, res.Displaced.Index)
	assert.Equal(t, base.Point{}, st.Pieces[15].Current)
	assert.False(t, st.Pieces[15].Correct)
	// nobody else moved
	for i := 1; i < 15; i++ {
		assert.Equal(t, st.Pieces[i].Target, st.Pieces[i].Current)
		assert.True(t, st.Pieces[i].Correct)
	}
	assertNoOverlap(t, st)
}

func TestDropFullGridUnresolved(t *testing.T) {
	st := solvedState(3, 300)
	extra := base.Piece{Index: 9, Current: base.Point{X: 100, Y: 100}, Target: base.Point{}}
	st.Pieces = append(st.Pieces, extra)
	res := Drop(st, 9, base.Point{}, rng(4))
	assert.True(t, res.Unresolved)
	assert.Nil(t, res.Displaced)
}

func TestRandomDropsKeepInvariant(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		r := rng(seed)
		g := base.Grid{Size: 3 + int(seed%4), ContainerSize: 360}
		st := &base.State{Grid: g, Phase: base.Playing, Pieces: shuffle.NewPieces(g, r)}
		for step := 0; step < 40; step++ {
			idx := r.IntN(len(st.Pieces))
			from := st.Pieces[idx].Current
			st.Pieces[idx].Current = base.Point{X: r.Float64() * g.MaxOffset(), Y: r.Float64() * g.MaxOffset()}
			res := Drop(st, idx, from, r)
			require.False(t, res.Unresolved)
			assertNoOverlap(t, st)
			if res.Correct {
				assert.Equal(t, st.Pieces[idx].Target, st.Pieces[idx].Current)
			}
		}
	}
}
