package rules

import (
	"tilepuzzle/src/base"
)

func AllCorrect(st *base.State) bool {
	if st == nil || len(st.Pieces) == 0 {
		return false
	}
	for _, p := range st.Pieces {
		if !p.Correct {
			return false
		}
	}
	return true
}

func CountCorrect(st *base.State) int {
	n := 0
	for _, p := range st.Pieces {
		if p.Correct {
			n++
		}
	}
	return n
}

// true when two resting pieces share a cell
func HasOverlap(st *base.State) bool {
	seen := make(map[base.Cell]bool, len(st.Pieces))
	for i, p := range st.Pieces {
		if st.Drag.Active && st.Drag.Piece == i {
			continue
		}
		c := st.Grid.CellOf(p.Current)
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

// switches a playing game to Solved when every piece is marked correct
func CheckCompletion(st *base.State) bool {
	if st == nil || st.Phase != base.Playing {
		return false
	}
	if AllCorrect(st) {
		st.Phase = base.Solved
		return true
	}
	return false
}

// return current phase after consistency checks
func StatusOf(st *base.State) base.Phase {
	if st == nil {
		return base.Idle
	}
	if st.Phase == base.Playing && AllCorrect(st) {
		return base.Solved
	}
	return st.Phase
}
