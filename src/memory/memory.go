package memory

import (
	"errors"
	"image"
	"math/rand/v2"
	"tilepuzzle/src/logic/countdown"
	"tilepuzzle/src/logx"
	"time"
)

const (
	MemorizeTime   int     = 7  // seconds
	ShapesCount    int     = 12 //
	MinShapeSize   int     = 30
	MaxShapeSize   int     = 60
	EraserRadius   float64 = 20
	ErasedRequired float64 = 0.3 // strictly more than this share must be erased
)

type Kind uint8

const (
	Circle Kind = iota
	Square
	Triangle
	Hexagon
	Star
)

var Kinds = []Kind{Circle, Square, Triangle, Hexagon, Star}

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Hexagon:
		return "hexagon"
	case Star:
		return "star"
	default:
		return "unknown"
	}
}

// Colors is the shape palette.
var Colors = []string{"#FF5733", "#33FF57", "#3357FF", "#FF33F5", "#F5FF33", "#33FFF5"}

type Shape struct {
	Kind  Kind   `json:"kind"`
	Color string `json:"color"`
	Size  int    `json:"size"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// Bounds is the square the shape is drawn in.
func (s Shape) Bounds() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.Size, s.Y+s.Size)
}

type Phase uint8

const (
	Instructions Phase = iota
	Memorize
	Erase
	Result
)

func (p Phase) String() string {
	switch p {
	case Instructions:
		return "instructions"
	case Memorize:
		return "memorize"
	case Erase:
		return "erase"
	case Result:
		return "result"
	default:
		return "invalid"
	}
}

var ErrWrongPhase = errors.New("action not allowed in this phase")

type Game struct {
	W, H    int
	Shapes  []Shape
	Target  int // index into Shapes
	Phase   Phase
	Score   int
	Correct bool // outcome of the last check
	Ratio   float64

	timer  *countdown.Countdown
	eraser *Eraser
	rng    *rand.Rand
	logger logx.Logger
}

func NewGame(w, h int, logger logx.Logger) *Game {
	seed := uint64(time.Now().UnixNano())
	return &Game{
		W:      w,
		H:      h,
		Target: -1,
		timer:  countdown.New(MemorizeTime),
		eraser: NewEraser(w, h, EraserRadius),
		rng:    rand.New(rand.NewPCG(seed, seed^0x5bd1e995)),
		logger: logger,
	}
}

func (g *Game) SetSeed(seed uint64) {
	g.rng = rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
}

// Start generates a new board, picks the target and runs the memorize timer.
func (g *Game) Start() {
	g.Shapes = g.generate()
	g.Target = g.rng.IntN(len(g.Shapes))
	g.Correct = false
	g.Ratio = 0
	g.eraser.Reset()
	g.timer.Reset()
	g.Phase = Memorize
	g.logger.Debugf("memory round: target %v %s", g.Shapes[g.Target].Kind, g.Shapes[g.Target].Color)
}

func (g *Game) generate() []Shape {
	out := make([]Shape, ShapesCount)
	for i := range out {
		size := randBetween(g.rng, MinShapeSize, MaxShapeSize)
		out[i] = Shape{
			Kind:  Kinds[g.rng.IntN(len(Kinds))],
			Color: Colors[g.rng.IntN(len(Colors))],
			Size:  size,
			X:     randBetween(g.rng, 0, max(0, g.W-size)),
			Y:     randBetween(g.rng, 0, max(0, g.H-size)),
		}
	}
	return out
}

// inclusive on both ends
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Tick advances the memorize countdown once; the board is covered at zero.
func (g *Game) Tick() {
	if g.Phase != Memorize {
		return
	}
	if g.timer.Tick() {
		g.Phase = Erase
		g.logger.Debug("memorize time over, cover board")
	}
}

func (g *Game) TimeLeft() int {
	return g.timer.Left
}

func (g *Game) EraseAt(x, y float64) {
	if g.Phase != Erase {
		return
	}
	g.eraser.Erase(x, y)
}

// back to a full cover, same board
func (g *Game) ResetCover() {
	if g.Phase != Erase {
		return
	}
	g.eraser.Reset()
}

// Check judges how much of the target square was uncovered.
func (g *Game) Check() (bool, error) {
	if g.Phase != Erase {
		return false, ErrWrongPhase
	}
	g.Ratio = g.eraser.ErasedRatio(g.Shapes[g.Target].Bounds())
	g.Correct = g.Ratio > ErasedRequired
	if g.Correct {
		g.Score++
	}
	g.Phase = Result
	g.logger.Infof("memory check: erased %.2f correct=%v score=%d", g.Ratio, g.Correct, g.Score)
	return g.Correct, nil
}

// score is kept across rounds
func (g *Game) PlayAgain() {
	g.Phase = Instructions
}

func (g *Game) Eraser() *Eraser {
	return g.eraser
}

func (g *Game) TargetShape() (Shape, bool) {
	if g.Target < 0 || g.Target >= len(g.Shapes) {
		return Shape{}, false
	}
	return g.Shapes[g.Target], true
}
