package rules

import (
	"testing"
	"tilepuzzle/src/base"

	"github.com/stretchr/testify/assert"
)

func state(correct ...bool) *base.State {
	st := &base.State{Grid: base.Grid{Size: 3, ContainerSize: 300}, Phase: base.Playing}
	for i, c := range correct {
		st.Pieces = append(st.Pieces, base.Piece{
			Index:   i,
			Current: st.Grid.PointOf(st.Grid.CellAt(i)),
			Correct: c,
		})
	}
	return st
}

func TestCompletionFiresOnlyWhenAllCorrect(t *testing.T) {
	st := state(true, true, false)
	assert.False(t, CheckCompletion(st))
	assert.Equal(t, base.Playing, st.Phase)
	assert.Equal(t, 2, CountCorrect(st))

	st.Pieces[2].Correct = true
	assert.Equal(t, base.Solved, StatusOf(st))
	assert.True(t, CheckCompletion(st))
	assert.Equal(t, base.Solved, st.Phase)
	// already solved: nothing more to signal
	assert.False(t, CheckCompletion(st))
}

func TestCompletionIgnoredWhenExpired(t *testing.T) {
	st := state(true, true)
	st.Phase = base.Expired
	assert.False(t, CheckCompletion(st))
	assert.Equal(t, base.Expired, StatusOf(st))
}

func TestEmptyStateNeverComplete(t *testing.T) {
	assert.False(t, AllCorrect(&base.State{}))
	assert.False(t, AllCorrect(nil))
	assert.Equal(t, base.Idle, StatusOf(nil))
}

func TestHasOverlap(t *testing.T) {
	st := state(false, false, false)
	assert.False(t, HasOverlap(st))
	st.Pieces[2].Current = st.Pieces[0].Current
	assert.True(t, HasOverlap(st))

	// the dragged piece is not at rest
	st.Drag = base.Drag{Active: true, Piece: 2}
	assert.False(t, HasOverlap(st))
}
