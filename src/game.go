package src

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"tilepuzzle/src/base"
	"tilepuzzle/src/logic/countdown"
	"tilepuzzle/src/logic/drag"
	"tilepuzzle/src/logic/history"
	"tilepuzzle/src/logic/placement"
	"tilepuzzle/src/logic/rules"
	"tilepuzzle/src/logic/shuffle"
	"tilepuzzle/src/logx"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoImage     = errors.New("no source image")
	ErrInvalidGrid = errors.New("invalid grid")
	ErrNotStarted  = errors.New("game not started")
)

// call StartGame first
type GameBuilder struct {
	state    *base.State
	timer    *countdown.Countdown
	history  *history.History
	rng      *rand.Rand
	image    image.Image
	lastDrop *placement.DropResult
	logger   logx.Logger
}

func NewGameBuilder(logger logx.Logger) *GameBuilder {
	seed := uint64(time.Now().UnixNano())
	return &GameBuilder{
		state:   &base.State{Phase: base.Idle, Drag: base.Drag{Piece: -1}},
		timer:   countdown.New(0),
		history: history.NewHistory(),
		rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		logger:  logger,
	}
}

// fixed source, for reproducible games
func (gb *GameBuilder) SetSeed(seed uint64) {
	gb.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
}

// SetTimeLimit enables the countdown for the next start. 0 disables it.
func (gb *GameBuilder) SetTimeLimit(seconds int) {
	gb.timer = countdown.New(seconds)
}

func (gb *GameBuilder) TimeLimit() int {
	return gb.timer.Duration
}

// StartGame throws away any previous pieces and lays out a fresh shuffled
// grid over img.
func (gb *GameBuilder) StartGame(img image.Image, gridSize int, containerSize float64) (base.Snapshot, error) {
	if img == nil {
		return gb.Snapshot(), ErrNoImage
	}
	g := base.Grid{Size: gridSize, ContainerSize: containerSize}
	if !g.IsValid() {
		return gb.Snapshot(), fmt.Errorf("%w: size %d, container %.1f", ErrInvalidGrid, gridSize, containerSize)
	}

	gb.image = img
	gb.timer.Reset()
	gb.history.Clear()
	gb.lastDrop = nil
	gb.state = &base.State{
		ID:       uuid.NewString(),
		Grid:     g,
		Pieces:   shuffle.NewPieces(g, gb.rng),
		Drag:     base.Drag{Piece: -1},
		Phase:    base.Playing,
		Duration: gb.timer.Duration,
		TimeLeft: gb.timer.Left,
	}
	gb.logger.Infow("start game", "id", gb.state.ID, "grid", gridSize, "container", containerSize, "time_limit", gb.timer.Duration)
	return gb.Snapshot(), nil
}

// same image and grid, new shuffle
func (gb *GameBuilder) Restart() (base.Snapshot, error) {
	if gb.image == nil || gb.state.Phase == base.Idle {
		return gb.Snapshot(), ErrNotStarted
	}
	return gb.StartGame(gb.image, gb.state.Grid.Size, gb.state.Grid.ContainerSize)
}

func (gb *GameBuilder) PointerDown(index int, p base.Point) base.Snapshot {
	if drag.Begin(gb.state, index, p) {
		gb.logger.Debugf("drag piece %d from %v", index, gb.state.Pieces[index].Current)
	}
	return gb.Snapshot()
}

// PointerDownAt picks the piece under the pointer.
func (gb *GameBuilder) PointerDownAt(p base.Point) base.Snapshot {
	idx := drag.HitTest(gb.state, p)
	if idx < 0 {
		return gb.Snapshot()
	}
	return gb.PointerDown(idx, p)
}

func (gb *GameBuilder) PointerMove(p base.Point) base.Snapshot {
	drag.Move(gb.state, p)
	return gb.Snapshot()
}

// PointerUp runs the drop sequence for the dragged piece.
func (gb *GameBuilder) PointerUp() base.Snapshot {
	if !gb.state.Drag.Active {
		return gb.Snapshot()
	}
	from := gb.state.Drag.Origin
	idx := drag.End(gb.state)

	before := gb.state.Snapshot().Pieces
	before[idx].Current = from
	res := placement.Drop(gb.state, idx, from, gb.rng)
	gb.history.Push(before, res)
	gb.lastDrop = &res
	gb.state.Moves = gb.history.Len()

	if res.Unresolved {
		gb.logger.Warnf("piece %d dropped on %v: no free cell for the displaced piece", idx, res.To)
	} else if rules.HasOverlap(gb.state) {
		gb.logger.Warnf("pieces share a cell after dropping piece %d on %v", idx, res.To)
	}
	if res.Displaced != nil {
		gb.logger.Debugf("piece %d pushed from %v to %v", res.Displaced.Index, res.Displaced.From, res.Displaced.To)
	}
	gb.logger.Debugf("drop piece %d at %v correct=%v", idx, res.To, res.Correct)

	if rules.CheckCompletion(gb.state) {
		gb.timer.Stop()
		gb.logger.Infow("puzzle solved", "id", gb.state.ID, "moves", gb.state.Moves, "time_left", gb.timer.Left)
	}
	return gb.Snapshot()
}

// lost pointer capture or window blur counts as a drop
func (gb *GameBuilder) PointerCancel() base.Snapshot {
	if gb.state.Drag.Active {
		gb.logger.Debug("pointer cancelled, dropping piece")
	}
	return gb.PointerUp()
}

// Tick is called once per second.
func (gb *GameBuilder) Tick() base.Snapshot {
	if gb.state.Phase != base.Playing {
		return gb.Snapshot()
	}
	expired := gb.timer.Tick()
	gb.state.TimeLeft = gb.timer.Left
	if expired {
		if idx := drag.Abort(gb.state); idx >= 0 {
			gb.logger.Debugf("time expired while dragging piece %d", idx)
		}
		gb.state.Phase = base.Expired
		gb.logger.Infow("time expired", "id", gb.state.ID, "correct", rules.CountCorrect(gb.state), "pieces", len(gb.state.Pieces))
	}
	return gb.Snapshot()
}

// Undo reverts the last drop while the game is running.
func (gb *GameBuilder) Undo() base.Snapshot {
	if gb.state.Phase != base.Playing || gb.state.Drag.Active {
		return gb.Snapshot()
	}
	if err := gb.history.Undo(gb.state); err != nil {
		gb.logger.Debugf("undo: %v", err)
		return gb.Snapshot()
	}
	gb.state.Moves = gb.history.Len()
	gb.lastDrop = nil
	return gb.Snapshot()
}

func (gb *GameBuilder) Snapshot() base.Snapshot {
	return gb.state.Snapshot()
}

func (gb *GameBuilder) Status() base.Phase {
	return rules.StatusOf(gb.state)
}

// LastDrop is the result of the most recent drop, if any.
func (gb *GameBuilder) LastDrop() (placement.DropResult, bool) {
	if gb.lastDrop == nil {
		return placement.DropResult{}, false
	}
	return *gb.lastDrop, true
}

func (gb *GameBuilder) Image() image.Image {
	return gb.image
}

func (gb *GameBuilder) History() []history.Entry {
	return gb.history.Entries()
}
