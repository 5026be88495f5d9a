package src

import (
	"fmt"
	"image"
	"testing"
	"tilepuzzle/src/base"
	"tilepuzzle/src/logx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T, limit int) *GameBuilder {
	t.Helper()
	gb := NewGameBuilder(logx.NewNop())
	gb.SetSeed(42)
	gb.SetTimeLimit(limit)
	return gb
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 64, 64))
}

// drags piece i from wherever it is onto its own target
func solvePiece(gb *GameBuilder, i int) base.Snapshot {
	snap := gb.Snapshot()
	p := snap.Pieces[i]
	start := base.Point{X: p.Current.X + 1, Y: p.Current.Y + 1}
	gb.PointerDown(i, start)
	gb.PointerMove(start.Add(p.Target.Sub(p.Current)).Add(base.Point{X: 3, Y: -2}))
	return gb.PointerUp()
}

func assertAtRest(t *testing.T, snap base.Snapshot) {
	t.Helper()
	seen := map[base.Cell]bool{}
	for _, p := range snap.Pieces {
		c := snap.Grid.CellOf(p.Current)
		require.False(t, seen[c], "cell %+v used twice", c)
		seen[c] = true
	}
}

func TestStartGameValidation(t *testing.T) {
	gb := newBuilder(t, 0)
	_, err := gb.StartGame(nil, 4, 400)
	assert.ErrorIs(t, err, ErrNoImage)
	_, err = gb.StartGame(testImage(), 2, 400)
	assert.ErrorIs(t, err, ErrInvalidGrid)
	_, err = gb.StartGame(testImage(), 4, 0)
	assert.ErrorIs(t, err, ErrInvalidGrid)
	assert.Equal(t, base.Idle, gb.Status())

	_, err = gb.Restart()
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestStartGameFourByFour(t *testing.T) {
	gb := newBuilder(t, 0)
	snap, err := gb.StartGame(testImage(), 4, 400)
	require.NoError(t, err)
	assert.Len(t, snap.Pieces, 16)
	assert.Equal(t, 100.0, snap.Grid.CellSize())
	assert.Equal(t, base.Playing, snap.Phase)
	assert.NotEmpty(t, snap.ID)

	var targets, currents []base.Point
	for _, p := range snap.Pieces {
		targets = append(targets, p.Target)
		currents = append(currents, p.Current)
	}
	assert.ElementsMatch(t, targets, currents)
	assertAtRest(t, snap)
}

func TestSolveWholePuzzle(t *testing.T) {
	gb := newBuilder(t, 0)
	_, err := gb.StartGame(testImage(), 3, 300)
	require.NoError(t, err)

	for round := 0; round < 20 && gb.Status() == base.Playing; round++ {
		snap := gb.Snapshot()
		for i := range snap.Pieces {
			if gb.Snapshot().Phase != base.Playing {
				break
			}
			if !gb.Snapshot().Pieces[i].Correct {
				snap = solvePiece(gb, i)
				assertAtRest(t, snap)
			}
		}
	}
	snap := gb.Snapshot()
	require.Equal(t, base.Solved, snap.Phase)
	for _, p := range snap.Pieces {
		assert.True(t, p.Correct)
		assert.Equal(t, p.Target, p.Current)
	}
	assert.Greater(t, snap.Moves, 0)

	// interaction is disabled once solved
	before := gb.Snapshot()
	gb.PointerDown(0, base.Point{X: 1, Y: 1})
	gb.PointerMove(base.Point{X: 200, Y: 200})
	after := gb.PointerUp()
	assert.Equal(t, before.Pieces, after.Pieces)
	assert.Equal(t, before.Moves, after.Moves)
}

func TestCompletionNotBeforeAllCorrect(t *testing.T) {
	gb := newBuilder(t, 0)
	_, err := gb.StartGame(testImage(), 3, 300)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		snap := gb.Snapshot()
		correct := 0
		for _, p := range snap.Pieces {
			if p.Correct {
				correct++
			}
		}
		assert.Equal(t, correct == 9, snap.Phase == base.Solved)
		if snap.Phase == base.Solved {
			break
		}
		solvePiece(gb, i)
	}
}

func TestCountdownExpires(t *testing.T) {
	gb := newBuilder(t, 3)
	snap, err := gb.StartGame(testImage(), 4, 400)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.TimeLeft)

	// a drag in flight when time runs out goes back to its origin
	origin := snap.Pieces[5].Current
	gb.PointerDown(5, base.Point{X: origin.X + 1, Y: origin.Y + 1})
	gb.PointerMove(base.Point{X: 390, Y: 390})

	assert.Equal(t, base.Playing, gb.Tick().Phase)
	assert.Equal(t, base.Playing, gb.Tick().Phase)
	snap = gb.Tick()
	assert.Equal(t, base.Expired, snap.Phase)
	assert.Equal(t, 0, snap.TimeLeft)
	assert.False(t, snap.Drag.Active)
	assert.Equal(t, origin, snap.Pieces[5].Current)
	assertAtRest(t, snap)

	// stays expired, no further ticks counted
	snap = gb.Tick()
	assert.Equal(t, base.Expired, snap.Phase)
	assert.Equal(t, 0, snap.TimeLeft)

	// restart resets the full duration
	snap, err = gb.Restart()
	require.NoError(t, err)
	assert.Equal(t, base.Playing, snap.Phase)
	assert.Equal(t, 3, snap.TimeLeft)
}

func TestNoTimerWithoutLimit(t *testing.T) {
	gb := newBuilder(t, 0)
	_, err := gb.StartGame(testImage(), 3, 300)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		gb.Tick()
	}
	assert.Equal(t, base.Playing, gb.Status())
}

func TestPointerCancelDrops(t *testing.T) {
	gb := newBuilder(t, 0)
	snap, err := gb.StartGame(testImage(), 3, 300)
	require.NoError(t, err)
	p := snap.Pieces[0].Current
	gb.PointerDownAt(base.Point{X: p.X + 10, Y: p.Y + 10})
	assert.True(t, gb.Snapshot().Drag.Active)
	gb.PointerMove(base.Point{X: p.X + 60, Y: p.Y + 10})
	snap = gb.PointerCancel()
	assert.False(t, snap.Drag.Active)
	assert.Equal(t, 1, snap.Moves)
	assertAtRest(t, snap)
	_, ok := gb.LastDrop()
	assert.True(t, ok)
}

func TestUndoRestoresPreviousLayout(t *testing.T) {
	gb := newBuilder(t, 0)
	start, err := gb.StartGame(testImage(), 4, 400)
	require.NoError(t, err)

	p := start.Pieces[3].Current
	gb.PointerDown(3, p)
	gb.PointerMove(base.Point{X: 400 - p.X, Y: 400 - p.Y})
	moved := gb.PointerUp()
	assert.Equal(t, 1, moved.Moves)

	undone := gb.Undo()
	assert.Equal(t, start.Pieces, undone.Pieces)
	assert.Equal(t, 0, undone.Moves)
	assert.Empty(t, gb.History())

	// nothing left to undo
	assert.Equal(t, start.Pieces, gb.Undo().Pieces)
}

type warnRecorder struct {
	*logx.Logx
	warnings []string
}

func (w *warnRecorder) Warnf(template string, args ...interface{}) {
	w.warnings = append(w.warnings, fmt.Sprintf(template, args...))
}

func TestPointerUpWarnsOnSharedCell(t *testing.T) {
	rec := &warnRecorder{Logx: logx.NewNop()}
	gb := NewGameBuilder(rec)
	gb.SetSeed(3)
	snap, err := gb.StartGame(testImage(), 3, 300)
	require.NoError(t, err)

	p := snap.Pieces[2].Current
	gb.PointerDown(2, p)
	gb.PointerUp()
	assert.Empty(t, rec.warnings)

	gb.state.Pieces[1].Current = gb.state.Pieces[0].Current
	gb.PointerDown(2, p)
	gb.PointerUp()
	require.Len(t, rec.warnings, 1)
	assert.Contains(t, rec.warnings[0], "share a cell")
}
