package drag

import (
	"math"
	"tilepuzzle/src/base"
)

// IDLE -> DRAGGING on pointer down over a piece
func Begin(st *base.State, index int, pointer base.Point) bool {
	if st == nil || st.Phase != base.Playing || st.Drag.Active || !st.IsValidPiece(index) {
		return false
	}
	st.Drag = base.Drag{
		Active:       true,
		Piece:        index,
		StartPointer: pointer,
		Origin:       st.Pieces[index].Current,
	}
	return true
}

// Move recomputes the dragged piece from the reference offset and clamps it
// inside the container.
func Move(st *base.State, pointer base.Point) bool {
	if st == nil || !st.Drag.Active {
		return false
	}
	p := st.Drag.Origin.Add(pointer.Sub(st.Drag.StartPointer))
	st.Pieces[st.Drag.Piece].Current = Clamp(st.Grid, p)
	return true
}

// DRAGGING -> IDLE, returns the released piece or -1
func End(st *base.State) int {
	if st == nil || !st.Drag.Active {
		return -1
	}
	idx := st.Drag.Piece
	st.Drag = base.Drag{Piece: -1}
	return idx
}

// Abort puts the dragged piece back where the drag started.
func Abort(st *base.State) int {
	if st == nil || !st.Drag.Active {
		return -1
	}
	idx := st.Drag.Piece
	st.Pieces[idx].Current = st.Drag.Origin
	st.Drag = base.Drag{Piece: -1}
	return idx
}

// HitTest returns the piece under pointer, or -1. Later pieces are drawn on
// top, so they win.
func HitTest(st *base.State, pointer base.Point) int {
	if st == nil {
		return -1
	}
	cs := st.Grid.CellSize()
	for i := len(st.Pieces) - 1; i >= 0; i-- {
		p := st.Pieces[i].Current
		if pointer.X >= p.X && pointer.X < p.X+cs && pointer.Y >= p.Y && pointer.Y < p.Y+cs {
			return i
		}
	}
	return -1
}

func Clamp(g base.Grid, p base.Point) base.Point {
	maxOff := g.MaxOffset()
	return base.Point{
		X: math.Max(0, math.Min(p.X, maxOff)),
		Y: math.Max(0, math.Min(p.Y, maxOff)),
	}
}
