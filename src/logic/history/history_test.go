package history

import (
	"testing"
	"tilepuzzle/src/base"
	"tilepuzzle/src/logic/placement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushUndo(t *testing.T) {
	st := &base.State{Pieces: []base.Piece{
		{Index: 0, Current: base.Point{X: 0}},
		{Index: 1, Current: base.Point{X: 100}},
	}}
	h := NewHistory()
	require.Error(t, h.Undo(st))

	before := st.Snapshot().Pieces
	st.Pieces[0].Current = base.Point{X: 100}
	st.Pieces[1].Current = base.Point{X: 0}
	st.Pieces[1].Correct = true
	h.Push(before, placement.DropResult{Index: 0})

	// Push keeps its own copy
	before[0].Current = base.Point{X: 999}

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, 0, last.Drop.Index)
	assert.Equal(t, 1, h.Len())

	require.NoError(t, h.Undo(st))
	assert.Equal(t, base.Point{X: 0}, st.Pieces[0].Current)
	assert.Equal(t, base.Point{X: 100}, st.Pieces[1].Current)
	assert.False(t, st.Pieces[1].Correct)
	assert.Equal(t, 0, h.Len())
}

func TestUndoMismatch(t *testing.T) {
	h := NewHistory()
	h.Push([]base.Piece{{}, {}}, placement.DropResult{})
	assert.Error(t, h.Undo(&base.State{Pieces: []base.Piece{{}}}))
	assert.Error(t, h.Undo(nil))
	h.Clear()
	assert.Equal(t, 0, h.Len())
}
