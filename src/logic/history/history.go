package history

import (
	"errors"
	"tilepuzzle/src/base"
	"tilepuzzle/src/logic/placement"
)

// drop log with undo
type History struct {
	entries []Entry
}

type Entry struct {
	Drop   placement.DropResult
	Before []base.Piece // copy of the pieces before the drop
}

func NewHistory() *History {
	return &History{entries: make([]Entry, 0)}
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Push stores a drop together with the pieces as they were before it.
func (h *History) Push(before []base.Piece, drop placement.DropResult) {
	cp := make([]base.Piece, len(before))
	copy(cp, before)
	h.entries = append(h.entries, Entry{Drop: drop, Before: cp})
}

// Undo restores the pieces to how they were before the last drop.
func (h *History) Undo(st *base.State) error {
	if st == nil {
		return errors.New("nil state")
	}
	if len(h.entries) == 0 {
		return errors.New("empty history")
	}
	last := h.entries[len(h.entries)-1]
	if len(last.Before) != len(st.Pieces) {
		return errors.New("history does not match state")
	}
	h.entries = h.entries[:len(h.entries)-1]
	copy(st.Pieces, last.Before)
	return nil
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
}
