package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridGeometry(t *testing.T) {
	g := Grid{Size: 4, ContainerSize: 400}
	assert.Equal(t, 100.0, g.CellSize())
	assert.Equal(t, 16, g.Cells())
	assert.Equal(t, 300.0, g.MaxOffset())
	assert.True(t, g.IsValid())

	assert.Equal(t, Cell{Col: 1, Row: 2}, g.CellOf(Point{X: 120, Y: 180}))
	// exact half rounds up
	assert.Equal(t, Cell{Col: 1, Row: 0}, g.CellOf(Point{X: 50, Y: 49.9}))
	assert.Equal(t, Point{X: 300, Y: 100}, g.PointOf(Cell{Col: 3, Row: 1}))
	assert.Equal(t, 7, g.IndexOf(Cell{Col: 3, Row: 1}))
	assert.Equal(t, Cell{Col: 3, Row: 1}, g.CellAt(7))
	assert.False(t, g.InBounds(Cell{Col: 4, Row: 0}))
	assert.False(t, g.InBounds(Cell{Col: 0, Row: -1}))
}

func TestGridValidity(t *testing.T) {
	assert.False(t, Grid{Size: 2, ContainerSize: 400}.IsValid())
	assert.False(t, Grid{Size: 9, ContainerSize: 400}.IsValid())
	assert.False(t, Grid{Size: 4, ContainerSize: 0}.IsValid())
	assert.True(t, Grid{Size: 3, ContainerSize: 1}.IsValid())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	st := &State{Pieces: []Piece{{Index: 0}, {Index: 1}}}
	snap := st.Snapshot()
	snap.Pieces[0].Correct = true
	assert.False(t, st.Pieces[0].Correct)
}

func TestPieceAt(t *testing.T) {
	st := &State{
		Grid: Grid{Size: 3, ContainerSize: 300},
		Pieces: []Piece{
			{Index: 0, Current: Point{X: 100, Y: 0}},
			{Index: 1, Current: Point{X: 100, Y: 0}},
			{Index: 2, Current: Point{X: 0, Y: 200}},
		},
	}
	assert.Equal(t, 0, st.PieceAt(Cell{Col: 1, Row: 0}, -1))
	assert.Equal(t, 1, st.PieceAt(Cell{Col: 1, Row: 0}, 0))
	assert.Equal(t, -1, st.PieceAt(Cell{Col: 2, Row: 2}, -1))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "solved", Solved.String())
	assert.True(t, Expired.IsTerminal())
	assert.False(t, Playing.IsTerminal())
}
