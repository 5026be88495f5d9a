package gdraw

import (
	"fmt"
	"image/color"
	"strings"
	"tilepuzzle/src/calendar"
	"tilepuzzle/src/ui/gui/gbase/gos"
	"tilepuzzle/src/ui/gui/ghelper"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// events.json next to the binary replaces the demo events
const eventsFile = "events.json"

const (
	calX     = 40
	calY     = 130
	calCellW = 130
	calCellH = 92
	chipH    = 18
)

type GUICalendarDrawer struct {
	msg     *ghelper.MessageBox
	buttons ghelper.ButtonSet

	// index of buttons
	btnBackIdx  int
	btnPrevIdx  int
	btnTodayIdx int
	btnNextIdx  int

	year   int
	month  time.Month
	weeks  []calendar.Week
	byDay  map[int][]calendar.Event
	events []calendar.Event
	today  time.Time

	ptr   pointerTracker
	clock frameClock
}

func NewGUICalendarDrawer(ctx *ghelper.GUIGameContext) *GUICalendarDrawer {
	now := time.Now()
	cd := &GUICalendarDrawer{msg: ghelper.NewMessageBox(), clock: newFrameClock(), today: now}
	cd.events = loadEvents(ctx, now)

	h := 48
	cd.btnBackIdx, cd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("button.back"), calX, 30, 120, h, cd.buttons)
	cd.btnPrevIdx, cd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("calendar.prev"), ctx.Config.WindowW-340, 30, 60, h, cd.buttons)
	cd.btnTodayIdx, cd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("calendar.today"), ctx.Config.WindowW-270, 30, 140, h, cd.buttons)
	cd.btnNextIdx, cd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("calendar.next"), ctx.Config.WindowW-120, 30, 60, h, cd.buttons)

	cd.setMonth(now.Year(), now.Month())
	return cd
}

func loadEvents(ctx *ghelper.GUIGameContext, now time.Time) []calendar.Event {
	if _, err := gos.Stat(eventsFile); err == nil {
		events, err := calendar.LoadEvents(eventsFile)
		if err == nil {
			ctx.Logx.Infof("loaded %d events from %s", len(events), eventsFile)
			return events
		}
		ctx.Logx.Errorf("load %s: %v", eventsFile, err)
	}
	return calendar.SampleEvents(now)
}

func (cd *GUICalendarDrawer) setMonth(year int, month time.Month) {
	cd.year, cd.month = year, month
	cd.weeks = calendar.MonthGrid(year, month, time.Local)
	cd.byDay = calendar.ByDay(cd.events, year, month, time.Local)
}

func (cd *GUICalendarDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	p := cd.ptr.read()
	dt := cd.clock.dt()

	if cd.msg.Open {
		cd.msg.Update(ctx, p.X, p.Y, p.JustReleased)
		cd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	switch cd.buttons.Update(p.X, p.Y, p.JustPressed, p.JustReleased, dt) {
	case cd.btnBackIdx:
		return SceneMenu, nil
	case cd.btnPrevIdx:
		cd.setMonth(calendar.Prev(cd.year, cd.month))
	case cd.btnNextIdx:
		cd.setMonth(calendar.Next(cd.year, cd.month))
	case cd.btnTodayIdx:
		cd.setMonth(cd.today.Year(), cd.today.Month())
	default:
		if p.JustReleased {
			if day, ok := cd.dayAt(p.X, p.Y); ok {
				cd.msg.ShowMessage(cd.describeDay(ctx, day), nil)
			}
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		cd.setMonth(calendar.Prev(cd.year, cd.month))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		cd.setMonth(calendar.Next(cd.year, cd.month))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return SceneMenu, nil
	}
	return SceneNotChanged, nil
}

func (cd *GUICalendarDrawer) dayAt(x, y int) (calendar.Day, bool) {
	if x < calX || y < calY {
		return calendar.Day{}, false
	}
	col, row := (x-calX)/calCellW, (y-calY)/calCellH
	if col > 6 || row >= len(cd.weeks) {
		return calendar.Day{}, false
	}
	return cd.weeks[row][col], true
}

func (cd *GUICalendarDrawer) describeDay(ctx *ghelper.GUIGameContext, day calendar.Day) string {
	lang := ctx.AssetsWorker.Lang()
	var events []calendar.Event
	if day.InMonth {
		events = cd.byDay[day.Date.Day()]
	} else {
		events = calendar.ByDay(cd.events, day.Date.Year(), day.Date.Month(), time.Local)[day.Date.Day()]
	}

	var sb strings.Builder
	sb.WriteString(day.Date.Format(time.DateOnly))
	if len(events) == 0 {
		sb.WriteString("\n" + lang.T("calendar.empty"))
		return sb.String()
	}
	for _, e := range events {
		when := lang.T("calendar.allday")
		if !e.AllDay {
			when = e.Start.Format("15:04") + "-" + e.End.Format("15:04")
		}
		fmt.Fprintf(&sb, "\n%s  %s", when, e.Title)
		if e.Location != "" {
			fmt.Fprintf(&sb, " (%s)", e.Location)
		}
	}
	return sb.String()
}

func (cd *GUICalendarDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()
	lang := ctx.AssetsWorker.Lang()

	title := fmt.Sprintf(lang.T("calendar.title"), lang.T(fmt.Sprintf("calendar.m%d", int(cd.month))), cd.year)
	text.Draw(screen, title, fonts.Bold, calX+150, 62, ctx.Theme.MenuText)

	for i := 0; i < 7; i++ {
		ghelper.DrawCentered(screen, lang.T(fmt.Sprintf("calendar.wd%d", i)), fonts.Pixel, calX+i*calCellW+calCellW/2, calY-16, ctx.Theme.MenuText)
	}

	for r, week := range cd.weeks {
		for c, day := range week {
			cd.drawDay(ctx, screen, day, calX+c*calCellW, calY+r*calCellH)
		}
	}

	cd.buttons.Draw(screen, fonts.PixelLow, ctx.Theme)
	cd.msg.Draw(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\nevents: %d", ebiten.ActualTPS(), len(cd.events)))
	}
}

func (cd *GUICalendarDrawer) drawDay(ctx *ghelper.GUIGameContext, screen *ebiten.Image, day calendar.Day, x, y int) {
	fonts := ctx.AssetsWorker.Fonts()
	fill := ctx.Theme.ButtonFill
	if !day.InMonth {
		fill = ctx.Theme.BoardBg
	}
	ghelper.EbitenutilDrawRect(screen, float64(x), float64(y), calCellW, calCellH, ctx.Theme.ButtonStroke)
	ghelper.EbitenutilDrawRect(screen, float64(x+1), float64(y+1), calCellW-2, calCellH-2, fill)

	numCol := ctx.Theme.MenuText
	if sameDay(day.Date, cd.today) {
		ghelper.EbitenutilDrawRectStroke(screen, float64(x+1), float64(y+1), calCellW-2, calCellH-2, 3, ctx.Theme.Accent)
		numCol = ctx.Theme.Accent
	}
	text.Draw(screen, fmt.Sprint(day.Date.Day()), fonts.Pixel, x+8, y+18, numCol)
	if !day.InMonth {
		return
	}

	// up to three chips, then a counter
	events := cd.byDay[day.Date.Day()]
	for i, e := range events {
		cy := y + 26 + i*(chipH+3)
		if i == 3 {
			text.Draw(screen, fmt.Sprintf("+%d", len(events)-3), fonts.PixelLow, x+8, cy+12, ctx.Theme.MenuText)
			break
		}
		ghelper.EbitenutilDrawRect(screen, float64(x+4), float64(cy), calCellW-8, chipH, hexColor(e.Type.Color, ctx.Theme.Accent))
		text.Draw(screen, clip(e.Title, 15), fonts.PixelLow, x+8, cy+13, color.White)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// #rrggbb, anything else gives def
func hexColor(s string, def color.RGBA) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return def
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
