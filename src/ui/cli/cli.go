package cli

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"tilepuzzle/src"
	"tilepuzzle/src/base"
	"tilepuzzle/src/imageio"
	"tilepuzzle/src/logic/rules"
	"tilepuzzle/src/logx"
	"time"

	"golang.org/x/term"
)

var errQuit = errors.New("quit")

type CLIProcessing struct {
	builder *src.GameBuilder
	logger  logx.Logger
	in      io.Reader
	out     io.Writer

	// per piece colour, averaged from its tile
	colors []color.RGBA
	gameID string
	tick   time.Duration
}

func NewCLI(b *src.GameBuilder, logger logx.Logger) *CLIProcessing {
	return &CLIProcessing{builder: b, logger: logger, in: os.Stdin, out: os.Stdout, tick: time.Second}
}

// Run opens the full screen mouse UI on a terminal and falls back to line
// mode when stdin is not one.
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	s, err := newTerminalScreen()
	if err != nil {
		c.logger.Warnf("terminal screen: %v, using line mode", err)
		return c.RunLineMode()
	}
	return c.RunScreen(s)
}

// refreshColors recomputes tile colours when a new game was started.
func (c *CLIProcessing) refreshColors() {
	snap := c.builder.Snapshot()
	if snap.ID == c.gameID && c.colors != nil {
		return
	}
	c.gameID = snap.ID
	img := c.builder.Image()
	if img == nil || !snap.Grid.IsValid() {
		c.colors = nil
		return
	}
	fitted := imageio.Fit(img, int(snap.Grid.ContainerSize))
	c.colors = make([]color.RGBA, snap.Grid.Cells())
	for i := range c.colors {
		c.colors[i] = imageio.AverageColor(fitted, imageio.TileRect(snap.Grid, i))
	}
}

// RunLineMode reads one command per line. Ticks are delivered between
// commands so a timed game keeps counting down while the user types.
func (c *CLIProcessing) RunLineMode() error {
	EnableANSI()
	lines := make(chan string)
	done := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	// Stdin cannot be unblocked, so on quit or expiry this reader stays in
	// Scan until the process exits right after.
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		done <- scanner.Err()
		close(lines)
	}()

	c.printBoard()
	fmt.Fprintln(c.out, "Commands: move <piece> <col> <row>, undo, restart, show, q to quit.")

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return <-done
			}
			if err := c.exec(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(c.out, "error: %v\n", err)
				continue
			}
			if c.builder.Status().IsTerminal() {
				return nil
			}
		case <-ticker.C:
			if c.builder.TimeLimit() == 0 {
				continue
			}
			before := c.builder.Status()
			snap := c.builder.Tick()
			if snap.Phase == base.Expired && before != base.Expired {
				c.printBoard()
				return nil
			}
		}
	}
}

func (c *CLIProcessing) exec(line string) error {
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil
	}
	switch f[0] {
	case "q", "Q", "quit":
		fmt.Fprintln(c.out, "Quitting")
		return errQuit
	case "undo", "u":
		c.builder.Undo()
	case "restart", "r":
		if _, err := c.builder.Restart(); err != nil {
			return err
		}
	case "show", "s":
	case "move", "m":
		if len(f) != 4 {
			return fmt.Errorf("usage: move <piece> <col> <row>")
		}
		n := make([]int, 3)
		for i, s := range f[1:] {
			v, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("bad number %q", s)
			}
			n[i] = v
		}
		if err := c.move(n[0], base.Cell{Col: n[1], Row: n[2]}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown command %q", f[0])
	}
	c.printBoard()
	return nil
}

// move drags a piece by its centre onto the centre of cell to.
func (c *CLIProcessing) move(index int, to base.Cell) error {
	snap := c.builder.Snapshot()
	if index < 0 || index >= len(snap.Pieces) {
		return fmt.Errorf("no piece %d", index)
	}
	if !snap.Grid.InBounds(to) {
		return fmt.Errorf("cell %d,%d is off the board", to.Col, to.Row)
	}
	half := snap.Grid.CellSize() / 2
	center := base.Point{X: half, Y: half}
	start := snap.Pieces[index].Current.Add(center)
	c.builder.PointerDown(index, start)
	c.builder.PointerMove(snap.Grid.PointOf(to).Add(center))
	c.builder.PointerUp()
	if res, ok := c.builder.LastDrop(); ok && res.Unresolved {
		fmt.Fprintln(c.out, "no free cell for the pushed piece")
	}
	return nil
}

func (c *CLIProcessing) printBoard() {
	c.refreshColors()
	snap := c.builder.Snapshot()
	PrintBoard(c.out, snap, c.colors)
	c.printStatus(snap)
}

func (c *CLIProcessing) printStatus(snap base.Snapshot) {
	st := base.State(snap)
	fmt.Fprintf(c.out, "Moves: %d  Placed: %d/%d", snap.Moves, rules.CountCorrect(&st), len(snap.Pieces))
	if snap.Duration > 0 {
		fmt.Fprintf(c.out, "  Time: %d:%02d", snap.TimeLeft/60, snap.TimeLeft%60)
	}
	fmt.Fprintf(c.out, "  Status: %s\n", snap.Phase)
}

// LoadImage decodes path, or returns the built-in sample for an empty path.
func LoadImage(path string, size int) (image.Image, error) {
	if path == "" {
		return imageio.Sample(size), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := imageio.Decode(f)
	return img, err
}
