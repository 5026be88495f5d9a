package gdraw

import (
	"fmt"
	"tilepuzzle/src/base"
	"tilepuzzle/src/logic/rules"
	"tilepuzzle/src/ui/gui/gbase"
	"tilepuzzle/src/ui/gui/ghelper"
	"tilepuzzle/src/ui/gui/ghelper/gclipboard"
	"tilepuzzle/src/ui/gui/ghelper/gimages"
	"tilepuzzle/src/ui/gui/ghelper/gsound"
	"tilepuzzle/src/ui/gui/ghelper/gtick"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIPuzzleDrawer runs a puzzle started by the setup scene.
type GUIPuzzleDrawer struct {
	msg     *ghelper.MessageBox
	buttons ghelper.ButtonSet

	// index of buttons
	btnRestartIdx int
	btnUndoIdx    int
	btnCopyIdx    int
	btnBackIdx    int

	pieces  []*ebiten.Image
	snap    base.Snapshot
	gameID  string
	seconds gtick.Seconds
	// phase already announced with a message box
	announced base.Phase

	ptr   pointerTracker
	clock frameClock
}

func NewGUIPuzzleDrawer(ctx *ghelper.GUIGameContext) *GUIPuzzleDrawer {
	pd := &GUIPuzzleDrawer{msg: ghelper.NewMessageBox(), clock: newFrameClock()}

	if ctx.Builder.Status() == base.Idle {
		if err := startPuzzle(ctx); err != nil {
			ctx.Logx.Errorf("start puzzle: %v", err)
		}
	}

	x := gbase.BoardX + gbase.BoardSize + 60
	w, h, gap := 200, 56, 18
	y := gbase.BoardY + 160
	pd.btnRestartIdx, pd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("play.restart"), x, y, w, h, pd.buttons)
	pd.btnUndoIdx, pd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("play.undo"), x, y+h+gap, w, h, pd.buttons)
	pd.btnCopyIdx, pd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("play.copy"), x, y+(h+gap)*2, w, h, pd.buttons)
	pd.btnBackIdx, pd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("button.back"), x, y+(h+gap)*3, w, h, pd.buttons)

	pd.sync(ctx)
	return pd
}

func (pd *GUIPuzzleDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	p := pd.ptr.read()
	dt := pd.clock.dt()

	// one engine tick per elapsed second, also while a message box is open
	if pd.snap.Phase == base.Playing && pd.snap.Duration > 0 {
		for n := pd.seconds.Add(dt); n > 0; n-- {
			pd.snap = ctx.Builder.Tick()
		}
	}

	if pd.msg.Open {
		pd.msg.Update(ctx, p.X, p.Y, p.JustReleased)
		pd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	pd.handleBoard(ctx, p)

	switch pd.buttons.Update(p.X, p.Y, p.JustPressed && !pd.snap.Drag.Active, p.JustReleased, dt) {
	case pd.btnRestartIdx:
		pd.restart(ctx)
	case pd.btnUndoIdx:
		pd.snap = ctx.Builder.Undo()
	case pd.btnCopyIdx:
		pd.copyResult(ctx)
	case pd.btnBackIdx:
		pd.snap = ctx.Builder.PointerCancel()
		return ScenePuzzleSetup, nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		pd.restart(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyU),
		inpututil.IsKeyJustPressed(ebiten.KeyZ) && ebiten.IsKeyPressed(ebiten.KeyControl):
		pd.snap = ctx.Builder.Undo()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		pd.snap = ctx.Builder.PointerCancel()
		return SceneMenu, nil
	}

	pd.announce(ctx)
	return SceneNotChanged, nil
}

// handleBoard feeds pointer events in board coordinates to the engine.
func (pd *GUIPuzzleDrawer) handleBoard(ctx *ghelper.GUIGameContext, p pointer) {
	pt := base.Point{X: float64(p.X - gbase.BoardX), Y: float64(p.Y - gbase.BoardY)}

	// window lost focus mid-drag
	if pd.snap.Drag.Active && !ebiten.IsFocused() {
		pd.snap = ctx.Builder.PointerCancel()
		pd.dropCue(ctx)
		return
	}

	switch {
	case p.JustPressed && inBoard(p.X, p.Y):
		pd.snap = ctx.Builder.PointerDownAt(pt)
	case p.Down && pd.snap.Drag.Active:
		pd.snap = ctx.Builder.PointerMove(pt)
	case p.JustReleased && pd.snap.Drag.Active:
		pd.snap = ctx.Builder.PointerUp()
		pd.dropCue(ctx)
	}
}

func (pd *GUIPuzzleDrawer) dropCue(ctx *ghelper.GUIGameContext) {
	res, ok := ctx.Builder.LastDrop()
	if !ok {
		return
	}
	switch {
	case pd.snap.Phase == base.Solved:
		ctx.Sound.Play(gsound.CueSolved)
	case res.Correct:
		ctx.Sound.Play(gsound.CueCorrect)
	default:
		ctx.Sound.Play(gsound.CueSnap)
	}
}

func (pd *GUIPuzzleDrawer) announce(ctx *ghelper.GUIGameContext) {
	if pd.snap.Phase == pd.announced || !pd.snap.Phase.IsTerminal() {
		return
	}
	pd.announced = pd.snap.Phase
	st := base.State(pd.snap)
	switch pd.snap.Phase {
	case base.Solved:
		pd.msg.ShowMessage(fmt.Sprintf(ctx.AssetsWorker.Lang().T("play.solved"), pd.snap.Moves), nil)
	case base.Expired:
		ctx.Sound.Play(gsound.CueExpired)
		pd.msg.ShowMessage(fmt.Sprintf(ctx.AssetsWorker.Lang().T("play.expired"), rules.CountCorrect(&st), len(pd.snap.Pieces)), nil)
	}
}

func (pd *GUIPuzzleDrawer) restart(ctx *ghelper.GUIGameContext) {
	if _, err := ctx.Builder.Restart(); err != nil {
		ctx.Logx.Errorf("restart: %v", err)
		return
	}
	pd.sync(ctx)
}

// sync reloads the snapshot and, for a new game, cuts fresh tiles.
func (pd *GUIPuzzleDrawer) sync(ctx *ghelper.GUIGameContext) {
	pd.snap = ctx.Builder.Snapshot()
	pd.seconds.Reset()
	pd.announced = base.Idle
	if pd.snap.ID == pd.gameID && pd.pieces != nil {
		return
	}
	pd.gameID = pd.snap.ID
	if img := ctx.Builder.Image(); img != nil && pd.snap.Grid.IsValid() {
		pd.pieces = gimages.PieceImages(img, pd.snap.Grid)
	}
}

func (pd *GUIPuzzleDrawer) copyResult(ctx *ghelper.GUIGameContext) {
	if !gclipboard.Available() {
		pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.no_clipboard"), nil)
		return
	}
	st := base.State(pd.snap)
	s := fmt.Sprintf(ctx.AssetsWorker.Lang().T("play.result"),
		pd.snap.Grid.Size, pd.snap.Grid.Size, pd.snap.Phase, pd.snap.Moves, rules.CountCorrect(&st), len(pd.snap.Pieces))
	if err := gclipboard.WriteAll(s); err != nil {
		ctx.Logx.Errorf("clipboard: %v", err)
		pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.no_clipboard"), nil)
		return
	}
	pd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("play.copied"), nil)
}

func (pd *GUIPuzzleDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	pd.drawBoard(ctx, screen)
	pd.drawInfo(ctx, screen)
	pd.buttons.Draw(screen, ctx.AssetsWorker.Fonts().PixelLow, ctx.Theme)
	pd.msg.Draw(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\ngame: %s", ebiten.ActualTPS(), pd.snap.ID))
	}
}

func (pd *GUIPuzzleDrawer) drawBoard(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	bx, by, size := float64(gbase.BoardX), float64(gbase.BoardY), float64(gbase.BoardSize)
	ghelper.EbitenutilDrawRect(screen, bx-4, by-4, size+8, size+8, ctx.Theme.ButtonStroke)
	ghelper.EbitenutilDrawRect(screen, bx, by, size, size, ctx.Theme.BoardBg)

	cs := pd.snap.Grid.CellSize()
	for i := 1; i < pd.snap.Grid.Size; i++ {
		off := float64(i) * cs
		ghelper.EbitenutilDrawRect(screen, bx+off, by, 1, size, ctx.Theme.ButtonStroke)
		ghelper.EbitenutilDrawRect(screen, bx, by+off, size, 1, ctx.Theme.ButtonStroke)
	}
	if len(pd.pieces) != len(pd.snap.Pieces) {
		return
	}

	// dragged piece on top
	dragged := -1
	if pd.snap.Drag.Active {
		dragged = pd.snap.Drag.Piece
	}
	for i, pc := range pd.snap.Pieces {
		if i != dragged {
			pd.drawPiece(ctx, screen, pc, cs, false)
		}
	}
	if dragged >= 0 {
		pd.drawPiece(ctx, screen, pd.snap.Pieces[dragged], cs, true)
	}
}

func (pd *GUIPuzzleDrawer) drawPiece(ctx *ghelper.GUIGameContext, screen *ebiten.Image, pc base.Piece, cs float64, lifted bool) {
	x := float64(gbase.BoardX) + pc.Current.X
	y := float64(gbase.BoardY) + pc.Current.Y
	op := &ebiten.DrawImageOptions{}
	if lifted {
		// slight lift around the piece centre
		op.GeoM.Translate(-cs/2, -cs/2)
		op.GeoM.Scale(1.05, 1.05)
		op.GeoM.Translate(cs/2, cs/2)
		op.ColorScale.ScaleAlpha(0.9)
	}
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(pd.pieces[pc.Index], op)

	switch {
	case pc.Correct:
		ghelper.EbitenutilDrawRectStroke(screen, x, y, cs, cs, 2, ctx.Theme.Correct)
	case lifted:
		ghelper.EbitenutilDrawRectStroke(screen, x, y, cs, cs, 2, ctx.Theme.Accent)
	}
}

func (pd *GUIPuzzleDrawer) drawInfo(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	fonts := ctx.AssetsWorker.Fonts()
	lang := ctx.AssetsWorker.Lang()
	x := gbase.BoardX + gbase.BoardSize + 60
	y := gbase.BoardY + 10

	title := fmt.Sprintf("%dx%d", pd.snap.Grid.Size, pd.snap.Grid.Size)
	if ctx.SourceName != "" {
		title += "  " + ctx.SourceName
	}
	text.Draw(screen, title, fonts.Bold, gbase.BoardX, gbase.BoardY-40, ctx.Theme.MenuText)

	if pd.snap.Duration > 0 {
		col := ctx.Theme.MenuText
		if pd.snap.TimeLeft <= 10 {
			col = ctx.Theme.Accent
		}
		text.Draw(screen, formatClock(pd.snap.TimeLeft), fonts.Big, x, y+24, col)
	}
	st := base.State(pd.snap)
	text.Draw(screen, fmt.Sprintf(lang.T("play.moves"), pd.snap.Moves), fonts.Normal, x, y+70, ctx.Theme.MenuText)
	text.Draw(screen, fmt.Sprintf(lang.T("play.correct"), rules.CountCorrect(&st), len(pd.snap.Pieces)), fonts.Normal, x, y+96, ctx.Theme.MenuText)
	text.Draw(screen, pd.snap.Phase.String(), fonts.Pixel, x, y+122, ctx.Theme.MenuText)
}

func inBoard(x, y int) bool {
	return ghelper.PointInRect(x, y, gbase.BoardX, gbase.BoardY, gbase.BoardSize, gbase.BoardSize)
}
