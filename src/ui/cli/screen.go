package cli

import (
	"fmt"
	"image/color"
	"math"
	"tilepuzzle/src/base"
	"tilepuzzle/src/logic/rules"
	"time"

	"github.com/gdamore/tcell/v2"
)

// terminal characters per puzzle cell
const (
	cellW  = 8
	cellH  = 4
	boardX = 2
	boardY = 2
)

func newTerminalScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

type screenUI struct {
	c         *CLIProcessing
	s         tcell.Screen
	mouseDown bool
}

func newScreenUI(c *CLIProcessing, s tcell.Screen) *screenUI {
	s.EnableMouse(tcell.MouseDragEvents)
	s.EnableFocus()
	return &screenUI{c: c, s: s}
}

// RunScreen drives the puzzle with mouse drags on s until the user quits.
func (c *CLIProcessing) RunScreen(s tcell.Screen) error {
	defer s.Fini()
	ui := newScreenUI(c, s)

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go s.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	ui.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !ui.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if c.builder.TimeLimit() > 0 {
				c.builder.Tick()
			}
		}
		ui.draw()
	}
}

// toBoard maps a terminal cell to container pixels at the cell's middle.
func (ui *screenUI) toBoard(x, y int) base.Point {
	cs := ui.c.builder.Snapshot().Grid.CellSize()
	return base.Point{
		X: (float64(x-boardX) + 0.5) * cs / cellW,
		Y: (float64(y-boardY) + 0.5) * cs / cellH,
	}
}

func (ui *screenUI) toScreen(p base.Point, cs float64) (int, int) {
	return boardX + int(math.Round(p.X*cellW/cs)), boardY + int(math.Round(p.Y*cellH/cs))
}

// handle returns false when the user asked to leave.
func (ui *screenUI) handle(ev tcell.Event) bool {
	b := ui.c.builder
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() != tcell.KeyRune:
		case ev.Rune() == 'q':
			return false
		case ev.Rune() == 'r':
			if _, err := b.Restart(); err != nil {
				ui.c.logger.Errorf("restart: %v", err)
			}
		case ev.Rune() == 'u':
			b.Undo()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !ui.mouseDown:
			b.PointerDownAt(ui.toBoard(x, y))
		case down && ui.mouseDown:
			b.PointerMove(ui.toBoard(x, y))
		case !down && ui.mouseDown:
			b.PointerUp()
		}
		ui.mouseDown = down
	case *tcell.EventFocus:
		if !ev.Focused {
			b.PointerCancel()
			ui.mouseDown = false
		}
	case *tcell.EventResize:
		ui.s.Sync()
	case nil:
		return false
	}
	return true
}

func (ui *screenUI) draw() {
	ui.c.refreshColors()
	snap := ui.c.builder.Snapshot()
	s := ui.s
	s.Clear()

	cs := snap.Grid.CellSize()
	n := snap.Grid.Size
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < n*cellH; y++ {
		for x := 0; x < n*cellW; x++ {
			s.SetContent(boardX+x, boardY+y, '·', nil, dim)
		}
	}

	dragged := -1
	if snap.Drag.Active {
		dragged = snap.Drag.Piece
	}
	for i, p := range snap.Pieces {
		if i != dragged {
			ui.drawPiece(p, cs, false)
		}
	}
	if dragged >= 0 {
		ui.drawPiece(snap.Pieces[dragged], cs, true)
	}

	st := base.State(snap)
	status := fmt.Sprintf("Moves: %d  Placed: %d/%d  %s", snap.Moves, rules.CountCorrect(&st), len(snap.Pieces), snap.Phase)
	if snap.Duration > 0 {
		status += fmt.Sprintf("  Time: %d:%02d", snap.TimeLeft/60, snap.TimeLeft%60)
	}
	drawText(s, boardX, boardY+n*cellH+1, tcell.StyleDefault.Bold(true), status)
	drawText(s, boardX, boardY+n*cellH+2, dim, "drag pieces with the mouse, u undo, r restart, q quit")
	s.Show()
}

func (ui *screenUI) drawPiece(p base.Piece, cs float64, lifted bool) {
	x0, y0 := ui.toScreen(p.Current, cs)
	c := color.RGBA{0x80, 0x80, 0x80, 0xff}
	if p.Index < len(ui.c.colors) {
		c = ui.c.colors[p.Index]
	}
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	if luminance(c) > 140 {
		style = style.Foreground(tcell.ColorBlack)
	} else {
		style = style.Foreground(tcell.ColorWhite)
	}
	if lifted {
		style = style.Reverse(true)
	}
	for y := 0; y < cellH; y++ {
		for x := 0; x < cellW; x++ {
			ui.s.SetContent(x0+x, y0+y, ' ', nil, style)
		}
	}
	label := fmt.Sprint(p.Index)
	drawText(ui.s, x0+(cellW-len(label))/2, y0+cellH/2, style, label)
	if p.Correct {
		ui.s.SetContent(x0+cellW-1, y0, '*', nil, style.Bold(true))
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
