package placement

import (
	"math"
	"math/rand/v2"
	"tilepuzzle/src/base"
)

type DropResult struct {
	Index      int         `json:"index"`
	From       base.Point  `json:"from"`
	To         base.Point  `json:"to"`
	Displaced  *Relocation `json:"displaced,omitempty"`
	Correct    bool        `json:"correct"`
	Unresolved bool        `json:"unresolved,omitempty"` // no free cell left for the displaced piece
}

// Relocation records a piece moved out of the way by a drop.
type Relocation struct {
	Index int        `json:"index"`
	From  base.Point `json:"from"`
	To    base.Point `json:"to"`
}

var directions = [4]base.Cell{
	{Col: -1, Row: 0},
	{Col: 1, Row: 0},
	{Col: 0, Row: -1},
	{Col: 0, Row: 1},
}

// nearest multiple of cell size on each axis
func Snap(g base.Grid, p base.Point) base.Point {
	return g.PointOf(g.CellOf(p))
}

// Judge marks the piece correct and pins it to its target when it is within
// tolerance on both axes.
func Judge(p *base.Piece) bool {
	if math.Abs(p.Current.X-p.Target.X) <= base.Tolerance &&
		math.Abs(p.Current.Y-p.Target.Y) <= base.Tolerance {
		p.Current = p.Target
		p.Correct = true
	} else {
		p.Correct = false
	}
	return p.Correct
}

// Drop runs snap, collision resolution and the correctness check for the
// released piece. from is where the drag started.
func Drop(st *base.State, index int, from base.Point, rng *rand.Rand) DropResult {
	piece := &st.Pieces[index]
	piece.Current = Snap(st.Grid, piece.Current)

	res := DropResult{Index: index, From: from}
	res.Displaced, res.Unresolved = Resolve(st, index, rng)
	if res.Displaced != nil {
		Judge(&st.Pieces[res.Displaced.Index])
	}
	res.Correct = Judge(piece)
	res.To = piece.Current
	return res
}

// Resolve moves whatever piece shares the dropped piece's cell. A random free
// neighbour is used when one exists, otherwise the nearest free cell found by
// a breadth-first walk over the grid. Only that one piece moves; the dropped
// piece stays. The walk visits each cell at most once.
func Resolve(st *base.State, dropped int, rng *rand.Rand) (*Relocation, bool) {
	g := st.Grid
	start := g.CellOf(st.Pieces[dropped].Current)
	other := st.PieceAt(start, dropped)
	if other < 0 {
		return nil, false
	}

	var free []base.Cell
	for _, d := range directions {
		c := base.Cell{Col: start.Col + d.Col, Row: start.Row + d.Row}
		if g.InBounds(c) && st.PieceAt(c, -1) < 0 {
			free = append(free, c)
		}
	}
	var dst base.Cell
	if len(free) > 0 {
		dst = free[rng.IntN(len(free))]
	} else {
		var ok bool
		if dst, ok = nearestFree(st, start, rng); !ok {
			return nil, true
		}
	}

	r := &Relocation{Index: other, From: st.Pieces[other].Current, To: g.PointOf(dst)}
	st.Pieces[other].Current = r.To
	return r, false
}

// breadth-first search from start to the closest empty cell
func nearestFree(st *base.State, start base.Cell, rng *rand.Rand) (base.Cell, bool) {
	g := st.Grid
	visited := make(map[base.Cell]bool, g.Cells())
	visited[start] = true
	queue := []base.Cell{start}

	dirs := directions
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		for _, d := range dirs {
			next := base.Cell{Col: cur.Col + d.Col, Row: cur.Row + d.Row}
			if !g.InBounds(next) || visited[next] {
				continue
			}
			if st.PieceAt(next, -1) < 0 {
				return next, true
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return base.Cell{}, false
}
