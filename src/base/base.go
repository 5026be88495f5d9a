package base

import (
	"fmt"
	"math"
)

const (
	MinGridSize int     = 3
	MaxGridSize int     = 8
	Tolerance   float64 = 5 // pixels
)

type Phase uint8

const (
	Idle    Phase = 0
	Playing Phase = 1
	Solved  Phase = 2
	Expired Phase = 3
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Solved:
		return "solved"
	case Expired:
		return "expired"
	default:
		return "invalid"
	}
}

// terminal phases ignore all pointer input
func (p Phase) IsTerminal() bool {
	return p == Solved || p == Expired
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

func (p Point) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Cell is a column/row pair on the grid.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

type Piece struct {
	Index   int   `json:"index"` // row-major 0..N-1
	Current Point `json:"current"`
	Target  Point `json:"target"`
	Correct bool  `json:"correct"`
}

type Grid struct {
	Size          int     `json:"size"`
	ContainerSize float64 `json:"container_size"`
}

func (g Grid) CellSize() float64 {
	if g.Size <= 0 {
		return 0
	}
	return g.ContainerSize / float64(g.Size)
}

func (g Grid) Cells() int {
	return g.Size * g.Size
}

func (g Grid) IsValid() bool {
	return g.Size >= MinGridSize && g.Size <= MaxGridSize && g.ContainerSize > 0 &&
		!math.IsInf(g.ContainerSize, 0) && !math.IsNaN(g.ContainerSize)
}

func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Size && c.Row < g.Size
}

// nearest cell, ties go up
func (g Grid) CellOf(p Point) Cell {
	cs := g.CellSize()
	return Cell{
		Col: int(math.Floor(p.X/cs + 0.5)),
		Row: int(math.Floor(p.Y/cs + 0.5)),
	}
}

func (g Grid) PointOf(c Cell) Point {
	cs := g.CellSize()
	return Point{X: float64(c.Col) * cs, Y: float64(c.Row) * cs}
}

func (g Grid) IndexOf(c Cell) int {
	return c.Row*g.Size + c.Col
}

func (g Grid) CellAt(index int) Cell {
	return Cell{Col: index % g.Size, Row: index / g.Size}
}

// MaxOffset is the largest coordinate a piece's top-left corner may take.
func (g Grid) MaxOffset() float64 {
	return g.ContainerSize - g.CellSize()
}

type Drag struct {
	Active       bool  `json:"active"`
	Piece        int   `json:"piece"`
	StartPointer Point `json:"start_pointer"`
	Origin       Point `json:"origin"`
}

// State is the whole puzzle session. The caller owns it and hands it to
// every handler.
type State struct {
	ID       string  `json:"id"`
	Grid     Grid    `json:"grid"`
	Pieces   []Piece `json:"pieces"`
	Drag     Drag    `json:"drag"`
	Phase    Phase   `json:"phase"`
	Duration int     `json:"duration"`  // seconds, 0 = no countdown
	TimeLeft int     `json:"time_left"` // seconds
	Moves    int     `json:"moves"`
}

// Snapshot is a deep copy handed to presentation code.
type Snapshot State

func (s *State) Snapshot() Snapshot {
	out := *s
	out.Pieces = make([]Piece, len(s.Pieces))
	copy(out.Pieces, s.Pieces)
	return Snapshot(out)
}

func (s *State) IsValidPiece(index int) bool {
	return index >= 0 && index < len(s.Pieces)
}

// PieceAt returns the index of the first piece other than skip resting on
// cell c, or -1.
func (s *State) PieceAt(c Cell, skip int) int {
	for i := range s.Pieces {
		if i == skip {
			continue
		}
		if s.Grid.CellOf(s.Pieces[i].Current) == c {
			return i
		}
	}
	return -1
}
