package gdraw

import (
	"fmt"
	"image"
	"math"
	"tilepuzzle/src/memory"
	"tilepuzzle/src/ui/gui/gbase"
	"tilepuzzle/src/ui/gui/ghelper"
	"tilepuzzle/src/ui/gui/ghelper/gsound"
	"tilepuzzle/src/ui/gui/ghelper/gtick"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	memX = 60
	memY = 140
	// seconds between two erase cues while rubbing
	eraseCueGap = 0.12
)

type GUIMemoryDrawer struct {
	msg     *ghelper.MessageBox
	buttons ghelper.ButtonSet

	// index of buttons
	btnStartIdx int
	btnCheckIdx int
	btnResetIdx int
	btnAgainIdx int
	btnBackIdx  int

	shapesImg *ebiten.Image
	targetImg *ebiten.Image
	coverImg  *ebiten.Image
	coverOld  bool

	rubbing  bool
	lastX    float64
	lastY    float64
	cueTimer float64
	seconds  gtick.Seconds

	ptr   pointerTracker
	clock frameClock
}

func NewGUIMemoryDrawer(ctx *ghelper.GUIGameContext) *GUIMemoryDrawer {
	md := &GUIMemoryDrawer{
		msg:      ghelper.NewMessageBox(),
		coverImg: ebiten.NewImage(gbase.MemoryW, gbase.MemoryH),
		coverOld: true,
		clock:    newFrameClock(),
	}
	x := memX + gbase.MemoryW + 60
	w, h, gap := 200, 56, 18
	y := memY + 140
	md.btnStartIdx, md.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("memory.start"), x, y, w, h, md.buttons)
	md.btnCheckIdx, md.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("memory.check"), x, y, w, h, md.buttons)
	md.btnResetIdx, md.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("memory.reset"), x, y+h+gap, w, h, md.buttons)
	md.btnAgainIdx, md.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("memory.again"), x, y, w, h, md.buttons)
	md.btnBackIdx, md.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("button.back"), x, ctx.Config.WindowH-h-60, w, h, md.buttons)

	// coming back mid-round: the board is still in the game
	if ctx.Memory.Phase != memory.Instructions {
		md.renderBoard(ctx)
	}
	return md
}

// visible buttons depend on the phase
func (md *GUIMemoryDrawer) active(ctx *ghelper.GUIGameContext) ghelper.ButtonSet {
	switch ctx.Memory.Phase {
	case memory.Instructions:
		return ghelper.ButtonSet{md.buttons[md.btnStartIdx], md.buttons[md.btnBackIdx]}
	case memory.Erase:
		return ghelper.ButtonSet{md.buttons[md.btnCheckIdx], md.buttons[md.btnResetIdx], md.buttons[md.btnBackIdx]}
	case memory.Result:
		return ghelper.ButtonSet{md.buttons[md.btnAgainIdx], md.buttons[md.btnBackIdx]}
	default:
		return ghelper.ButtonSet{md.buttons[md.btnBackIdx]}
	}
}

func (md *GUIMemoryDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	p := md.ptr.read()
	dt := md.clock.dt()
	game := ctx.Memory

	if game.Phase == memory.Memorize {
		for n := md.seconds.Add(dt); n > 0; n-- {
			game.Tick()
		}
		if game.Phase == memory.Erase {
			md.coverOld = true
		}
	}

	if md.msg.Open {
		md.msg.Update(ctx, p.X, p.Y, p.JustReleased)
		md.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	if game.Phase == memory.Erase {
		md.rub(ctx, p, dt)
	}

	active := md.active(ctx)
	if i := active.Update(p.X, p.Y, p.JustPressed, p.JustReleased, dt); i >= 0 {
		switch active[i] {
		case md.buttons[md.btnStartIdx]:
			game.Start()
			md.seconds.Reset()
			md.renderBoard(ctx)
		case md.buttons[md.btnCheckIdx]:
			ok, err := game.Check()
			if err != nil {
				ctx.Logx.Warnf("memory check: %v", err)
				break
			}
			if ok {
				ctx.Sound.Play(gsound.CueCorrect)
				md.msg.ShowMessage(ctx.AssetsWorker.Lang().T("memory.correct"), nil)
			} else {
				ctx.Sound.Play(gsound.CueExpired)
				md.msg.ShowMessage(ctx.AssetsWorker.Lang().T("memory.wrong"), nil)
			}
		case md.buttons[md.btnResetIdx]:
			game.ResetCover()
			md.coverOld = true
		case md.buttons[md.btnAgainIdx]:
			game.PlayAgain()
		case md.buttons[md.btnBackIdx]:
			return SceneMenu, nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneMenu, nil
	}
	return SceneNotChanged, nil
}

// rub erases along the pointer path so fast strokes leave no gaps.
func (md *GUIMemoryDrawer) rub(ctx *ghelper.GUIGameContext, p pointer, dt float64) {
	x, y := float64(p.X-memX), float64(p.Y-memY)
	inside := ghelper.PointInRect(p.X, p.Y, memX, memY, gbase.MemoryW, gbase.MemoryH)

	if p.JustPressed && inside {
		md.rubbing = true
		md.lastX, md.lastY = x, y
	}
	if !p.Down {
		md.rubbing = false
		return
	}
	if !md.rubbing {
		return
	}

	step := memory.EraserRadius / 2.0
	dist := math.Hypot(x-md.lastX, y-md.lastY)
	n := max(int(dist/step), 1)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		ctx.Memory.EraseAt(md.lastX+(x-md.lastX)*t, md.lastY+(y-md.lastY)*t)
	}
	md.lastX, md.lastY = x, y
	md.coverOld = true

	md.cueTimer -= dt
	if dist > 0 && md.cueTimer <= 0 {
		ctx.Sound.Play(gsound.CueErase)
		md.cueTimer = eraseCueGap
	}
}

func (md *GUIMemoryDrawer) renderBoard(ctx *ghelper.GUIGameContext) {
	game := ctx.Memory
	md.shapesImg = ebiten.NewImageFromImage(memory.RenderShapes(game.Shapes, game.W, game.H))
	if t, ok := game.TargetShape(); ok {
		md.targetImg = ebiten.NewImageFromImage(memory.RenderShape(t, 80))
	}
	md.coverOld = true
}

func (md *GUIMemoryDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()
	lang := ctx.AssetsWorker.Lang()
	game := ctx.Memory

	text.Draw(screen, lang.T("memory.title"), fonts.Bold, memX, 60, ctx.Theme.MenuText)
	text.Draw(screen, fmt.Sprintf(lang.T("memory.score"), game.Score), fonts.Normal, memX, 96, ctx.Theme.MenuText)

	ghelper.EbitenutilDrawRect(screen, memX-4, memY-4, float64(gbase.MemoryW+8), float64(gbase.MemoryH+8), ctx.Theme.ButtonStroke)
	ghelper.EbitenutilDrawRect(screen, memX, memY, float64(gbase.MemoryW), float64(gbase.MemoryH), ctx.Theme.BoardBg)

	side := memX + gbase.MemoryW + 60
	switch game.Phase {
	case memory.Instructions:
		text.Draw(screen, lang.T("memory.instructions"), fonts.Normal, memX+24, memY+48, ctx.Theme.MenuText)
	case memory.Memorize:
		md.drawLayer(screen, md.shapesImg)
		text.Draw(screen, fmt.Sprintf(lang.T("memory.memorize"), game.TimeLeft()), fonts.Big, side, memY+40, ctx.Theme.Accent)
	case memory.Erase:
		md.drawLayer(screen, md.shapesImg)
		md.drawLayer(screen, md.cover(ctx))
		text.Draw(screen, lang.T("memory.find"), fonts.Normal, side, memY+10, ctx.Theme.MenuText)
		md.drawLayerAt(screen, md.targetImg, side, memY+24)
	case memory.Result:
		md.drawLayer(screen, md.shapesImg)
		md.drawLayer(screen, md.cover(ctx))
		if t, ok := game.TargetShape(); ok {
			r := t.Bounds().Add(image.Pt(memX, memY))
			col := ctx.Theme.Correct
			if !game.Correct {
				col = ctx.Theme.Accent
			}
			ghelper.EbitenutilDrawRectStroke(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), 3, col)
		}
		text.Draw(screen, fmt.Sprintf("%.0f%%", game.Ratio*100), fonts.Big, side, memY+40, ctx.Theme.MenuText)
	}

	md.active(ctx).Draw(screen, fonts.PixelLow, ctx.Theme)
	md.msg.Draw(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\nphase: %s", ebiten.ActualTPS(), game.Phase))
	}
}

func (md *GUIMemoryDrawer) cover(ctx *ghelper.GUIGameContext) *ebiten.Image {
	if md.coverOld {
		md.coverImg.WritePixels(ctx.Memory.Eraser().Cover(ctx.Theme.Cover).Pix)
		md.coverOld = false
	}
	return md.coverImg
}

func (md *GUIMemoryDrawer) drawLayer(screen, img *ebiten.Image) {
	md.drawLayerAt(screen, img, memX, memY)
}

func (md *GUIMemoryDrawer) drawLayerAt(screen, img *ebiten.Image, x, y int) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}
