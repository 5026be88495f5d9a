package gdraw

import (
	"fmt"
	"math"
	"tilepuzzle/src/ui/gui/gbase"
	"tilepuzzle/src/ui/gui/ghelper"
	"tilepuzzle/src/ui/gui/ghelper/glang"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var menuLabels = []string{"menu.puzzle", "menu.memory", "menu.calendar", "menu.settings", "menu.exit"}

type GUIMenuDrawer struct {
	buttons ghelper.ButtonSet
	msg     *ghelper.MessageBox

	// language selector square bottom-left
	langBoxX, langBoxY, langBoxS int

	// about selector square bottom-left
	aboutBoxX, aboutBoxY, aboutBoxS int

	ptr   pointerTracker
	clock frameClock

	// floating logo
	logoImg     *ebiten.Image
	logoScale   int
	logoElapsed float64
	logoOffsetY float64
	shadowImg   *ebiten.Image
}

func NewGUIMenuDrawer(ctx *ghelper.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{clock: newFrameClock(), msg: ghelper.NewMessageBox()}
	md.makeLayout(ctx)
	md.logoImg = ctx.AssetsWorker.Icon(60)
	md.logoScale = 2
	md.logoOffsetY = -90.0
	return md
}

func (md *GUIMenuDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	// keyboard: toggle palette
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ctx.Theme == gbase.LightPalette {
			ctx.Theme = gbase.DarkPalette
		} else {
			ctx.Theme = gbase.LightPalette
		}
		md.refreshButtons(ctx)
	}

	p := md.ptr.read()
	dt := md.clock.dt()

	// if message box open -> handle clicks on it
	if md.msg.Open {
		md.msg.Update(ctx, p.X, p.Y, p.JustReleased)
		md.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	switch i := md.buttons.Update(p.X, p.Y, p.JustPressed, p.JustReleased, dt); i {
	case 0:
		return ScenePuzzleSetup, nil
	case 1:
		return SceneMemory, nil
	case 2:
		return SceneCalendar, nil
	case 3:
		return SceneSettings, nil
	case 4:
		return SceneNotChanged, gbase.ErrExit
	}

	if p.JustReleased {
		if ghelper.PointInRect(p.X, p.Y, md.langBoxX, md.langBoxY, md.langBoxS, md.langBoxS) {
			next := glang.EN
			if ctx.AssetsWorker.Lang().GetLang() == glang.EN {
				next = glang.RU
			}
			if err := ctx.AssetsWorker.Lang().SetLang(next); err != nil {
				ctx.Logx.Errorf("set lang %s: %v", next, err)
			} else {
				ctx.Config.Lang = next.String()
			}
			md.refreshButtons(ctx)
			return SceneNotChanged, nil
		}
		if ghelper.PointInRect(p.X, p.Y, md.aboutBoxX, md.aboutBoxY, md.aboutBoxS, md.aboutBoxS) {
			md.msg.ShowMessage(ctx.AssetsWorker.Lang().T("about.body"), nil)
			return SceneNotChanged, nil
		}
	}

	md.logoElapsed += dt
	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	md.buttons.Draw(screen, ctx.AssetsWorker.Fonts().Pixel, ctx.Theme)
	md.drawBoxes(ctx, screen)
	md.drawLogo(screen)
	md.msg.Draw(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (md *GUIMenuDrawer) makeLayout(ctx *ghelper.GUIGameContext) {
	// center buttons vertically
	btnW, btnH := 320, 64
	gap := 18
	n := len(menuLabels)
	totalH := n*btnH + (n-1)*gap
	startY := (ctx.Config.WindowH-totalH)/2 + 40
	cx := ctx.Config.WindowW / 2

	md.buttons = ghelper.ButtonSet{}
	for i, key := range menuLabels {
		_, md.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T(key), cx-btnW/2, startY+i*(btnH+gap), btnW, btnH, md.buttons)
	}

	md.langBoxS = 56
	md.langBoxX = 20
	md.langBoxY = ctx.Config.WindowH - md.langBoxS - 20

	md.aboutBoxS = md.langBoxS
	md.aboutBoxX = md.langBoxX + 70
	md.aboutBoxY = md.langBoxY
}

func (md *GUIMenuDrawer) refreshButtons(ctx *ghelper.GUIGameContext) {
	for i, b := range md.buttons {
		b.Label = ctx.AssetsWorker.Lang().T(menuLabels[i])
	}
	md.buttons.Rerender(ctx.Theme)
}

func (md *GUIMenuDrawer) drawBoxes(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	fonts := ctx.AssetsWorker.Fonts()
	box := ghelper.RenderRoundedRect(md.langBoxS, md.langBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(md.langBoxX), float64(md.langBoxY))
	screen.DrawImage(box, op)
	ghelper.DrawCentered(screen, ctx.AssetsWorker.Lang().GetLang().String(), fonts.Bold, md.langBoxX+md.langBoxS/2, md.langBoxY+md.langBoxS/2, ctx.Theme.ButtonText)
	text.Draw(screen, ctx.AssetsWorker.Lang().T("lang.type"), fonts.PixelLow, md.langBoxX, md.langBoxY-6, ctx.Theme.MenuText)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(md.aboutBoxX), float64(md.aboutBoxY))
	screen.DrawImage(box, op)
	ghelper.DrawCentered(screen, "?", fonts.Bold, md.aboutBoxX+md.aboutBoxS/2, md.aboutBoxY+md.aboutBoxS/2, ctx.Theme.ButtonText)

	// version on bottom-right
	text.Draw(screen, ctx.AssetsWorker.Lang().T("version"), fonts.Normal, ctx.Config.WindowW-100, ctx.Config.WindowH-24, ctx.Theme.MenuText)
}

func (md *GUIMenuDrawer) drawLogo(screen *ebiten.Image) {
	if md.logoImg == nil || len(md.buttons) == 0 {
		return
	}
	first := md.buttons[0]
	centerX := float64(first.X + first.W/2)
	topY := float64(first.Y)

	// bobbing params
	amp, slowAmp := 10.0, 2.0
	dy := math.Sin(2*math.Pi*md.logoElapsed)*amp + math.Sin(2*math.Pi*0.15*md.logoElapsed)*slowAmp
	rot := math.Sin(2*math.Pi*0.8*md.logoElapsed) * (6 * math.Pi / 180.0)

	w, h := md.logoImg.Bounds().Dx(), md.logoImg.Bounds().Dy()
	finalY := topY - float64(h*md.logoScale)/2.0 + md.logoOffsetY + dy

	if md.shadowImg == nil {
		sw, sh := max(int(float64(w*md.logoScale)*1.6), 4), max(int(float64(h*md.logoScale)*0.5), 2)
		dc := gg.NewContext(sw, sh)
		for i := 0; i < 8; i++ {
			dc.SetRGBA(0, 0, 0, 0.18*(1.0-float64(i)/8.0))
			pad := float64(i)
			dc.DrawEllipse(float64(sw)/2, float64(sh)/2+pad*0.2, float64(sw)/2-pad, float64(sh)/2-pad*0.6)
			dc.Fill()
		}
		md.shadowImg = ebiten.NewImageFromImage(dc.Image())
	}

	// shadow shrinks as the logo rises
	heightFactor := (dy + amp + slowAmp) / (2 * (amp + slowAmp))
	shadowScale := 0.7 + (1.0-heightFactor)*0.25
	sW := float64(md.shadowImg.Bounds().Dx()) * shadowScale
	sH := float64(md.shadowImg.Bounds().Dy()) * shadowScale
	sop := &ebiten.DrawImageOptions{}
	sop.GeoM.Scale(shadowScale, shadowScale)
	sop.GeoM.Translate(centerX-sW/2.0, topY-sH*0.6-24)
	sop.Filter = ebiten.FilterLinear
	screen.DrawImage(md.shadowImg, sop)

	// center -> scale -> rotate -> translate
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2.0, -float64(h)/2.0)
	op.GeoM.Scale(float64(md.logoScale), float64(md.logoScale))
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(centerX, finalY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(md.logoImg, op)
}
