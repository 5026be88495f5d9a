package cli

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"tilepuzzle/src/base"
	"tilepuzzle/src/calendar"
	"time"
)

// ANSI-code
const (
	reset  = "\033[0m"
	dimF   = "\033[90m"
	boldF  = "\033[1m"
	whiteF = "\033[97m"
	blackF = "\033[30m"
)

func bg(c color.RGBA) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// readable text colour on top of c
func fgFor(c color.RGBA) string {
	if luminance(c) > 140 {
		return blackF
	}
	return whiteF
}

func luminance(c color.RGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// PrintBoard draws the resting pieces as numbered coloured cells. A trailing
// '*' marks a piece on its own cell.
func PrintBoard(w io.Writer, snap base.Snapshot, colors []color.RGBA) {
	st := base.State(snap)
	n := snap.Grid.Size

	fmt.Fprintln(w)
	fmt.Fprint(w, "    ")
	for col := 0; col < n; col++ {
		fmt.Fprintf(w, "%4d ", col)
	}
	fmt.Fprintln(w)
	for row := 0; row < n; row++ {
		fmt.Fprintf(w, "%3d ", row)
		for col := 0; col < n; col++ {
			idx := st.PieceAt(base.Cell{Col: col, Row: row}, -1)
			if idx < 0 {
				fmt.Fprintf(w, "%s  .. %s", dimF, reset)
				continue
			}
			p := snap.Pieces[idx]
			mark := " "
			if p.Correct {
				mark = "*"
			}
			c := color.RGBA{0x80, 0x80, 0x80, 0xff}
			if p.Index < len(colors) {
				c = colors[p.Index]
			}
			fmt.Fprintf(w, "%s%s%3d%s %s", bg(c), fgFor(c), p.Index, mark, reset)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// PrintMonth prints a Sunday-first month grid; days with events are bold
// and listed below the grid.
func PrintMonth(w io.Writer, year int, month time.Month, events []calendar.Event, loc *time.Location) {
	byDay := calendar.ByDay(events, year, month, loc)

	title := fmt.Sprintf("%s %d", month, year)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", max(0, (28-len(title))/2)), title)
	fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")
	for _, week := range calendar.MonthGrid(year, month, loc) {
		for _, d := range week {
			switch {
			case !d.InMonth:
				fmt.Fprintf(w, "%s%3d%s ", dimF, d.Date.Day(), reset)
			case len(byDay[d.Date.Day()]) > 0:
				fmt.Fprintf(w, "%s%3d%s ", boldF, d.Date.Day(), reset)
			default:
				fmt.Fprintf(w, "%3d ", d.Date.Day())
			}
		}
		fmt.Fprintln(w)
	}

	for _, e := range calendar.InMonth(events, year, month, loc) {
		when := e.Start.In(loc).Format("Jan 02 15:04")
		if e.AllDay {
			when = e.Start.In(loc).Format("Jan 02") + " all day"
		}
		fmt.Fprintf(w, "  %-18s %s", when, e.Title)
		if e.Type.Name != "" {
			fmt.Fprintf(w, " [%s]", e.Type.Name)
		}
		fmt.Fprintln(w)
	}
}
