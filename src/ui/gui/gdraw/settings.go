package gdraw

import (
	"fmt"
	"tilepuzzle/src/ui/gui/gbase"
	"tilepuzzle/src/ui/gui/ghelper"
	"tilepuzzle/src/ui/gui/ghelper/glang"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUISettingsDrawer struct {
	msg     *ghelper.MessageBox
	buttons ghelper.ButtonSet

	// index of buttons
	btnLangEnIdx     int
	btnLangRuIdx     int
	btnThemeLightIdx int
	btnThemeDarkIdx  int
	btnSoundIdx      int
	btnDebugIdx      int
	btnApplyIdx      int
	btnBackIdx       int

	ptr   pointerTracker
	clock frameClock
}

func NewGUISettingsDrawer(ctx *ghelper.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{msg: ghelper.NewMessageBox(), clock: newFrameClock()}

	btnW, btnH := 220, 56
	spacingX, spacingY := 20, 18
	startX, startY := 260, 120

	// lang
	sd.btnLangEnIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX, startY, btnW, btnH, sd.buttons)
	sd.btnLangRuIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX+btnW+spacingX, startY, btnW, btnH, sd.buttons)
	// theme
	themeY := startY + btnH + spacingY
	sd.btnThemeLightIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX, themeY, btnW, btnH, sd.buttons)
	sd.btnThemeDarkIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX+btnW+spacingX, themeY, btnW, btnH, sd.buttons)
	// toggles
	otherY := themeY + btnH + spacingY
	sd.btnSoundIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX, otherY, btnW, btnH, sd.buttons)
	sd.btnDebugIdx, sd.buttons = ghelper.AppendButton(ctx, "", startX+btnW+spacingX, otherY, btnW, btnH, sd.buttons)
	// apply / back
	applyW, applyH := 160, 56
	applyX := ctx.Config.WindowW - applyW - 60
	applyY := ctx.Config.WindowH - applyH - 60
	sd.btnApplyIdx, sd.buttons = ghelper.AppendButton(ctx, "", applyX, applyY, applyW, applyH, sd.buttons)
	sd.btnBackIdx, sd.buttons = ghelper.AppendButton(ctx, "", applyX-180, applyY, applyW, applyH, sd.buttons)

	sd.refreshButtons(ctx)
	return sd
}

func (sd *GUISettingsDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	p := sd.ptr.read()
	dt := sd.clock.dt()

	if sd.msg.Open {
		sd.msg.Update(ctx, p.X, p.Y, p.JustReleased)
		sd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	i := sd.buttons.Update(p.X, p.Y, p.JustPressed, p.JustReleased, dt)
	switch i {
	case sd.btnLangEnIdx:
		sd.setLang(ctx, glang.EN)
	case sd.btnLangRuIdx:
		sd.setLang(ctx, glang.RU)
	case sd.btnThemeLightIdx:
		ctx.Theme = gbase.LightPalette
	case sd.btnThemeDarkIdx:
		ctx.Theme = gbase.DarkPalette
	case sd.btnSoundIdx:
		ctx.Config.Sound = !ctx.Config.Sound
		ctx.Sound.SetEnabled(ctx.Config.Sound)
		if ctx.Config.Sound {
			if err := ctx.Sound.Init(); err != nil {
				ctx.Logx.Warnf("audio device: %v", err)
			}
		}
	case sd.btnDebugIdx:
		ctx.Config.Debug = !ctx.Config.Debug
	case sd.btnApplyIdx:
		ctx.Config.Theme = ctx.Theme.String()
		if err := ctx.Config.Save(); err != nil {
			ctx.Logx.Errorf("config save failed: %v", err)
			sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.save.failed"), nil)
		} else {
			sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.save.success"), nil)
		}
	case sd.btnBackIdx:
		return SceneMenu, nil
	}
	if i >= 0 {
		sd.refreshButtons(ctx)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneMenu, nil
	}
	return SceneNotChanged, nil
}

func (sd *GUISettingsDrawer) setLang(ctx *ghelper.GUIGameContext, l glang.LangType) {
	if err := ctx.AssetsWorker.Lang().SetLang(l); err != nil {
		ctx.Logx.Errorf("set lang %s: %v", l, err)
		return
	}
	ctx.Config.Lang = l.String()
}

func (sd *GUISettingsDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	titlesX, titlesY, spacingY := 40, 80, 74
	fonts := ctx.AssetsWorker.Fonts()
	lang := ctx.AssetsWorker.Lang()
	text.Draw(screen, lang.T("settings.title"), fonts.Bold, titlesX, titlesY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.lang"), fonts.Pixel, titlesX+20, titlesY+spacingY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.theme"), fonts.Pixel, titlesX+20, titlesY+2*spacingY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.other"), fonts.Pixel, titlesX+20, titlesY+3*spacingY, ctx.Theme.MenuText)

	sd.buttons.Draw(screen, fonts.PixelLow, ctx.Theme)
	sd.msg.Draw(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

// update labels and accent buttons
func (sd *GUISettingsDrawer) refreshButtons(ctx *ghelper.GUIGameContext) {
	lang := ctx.AssetsWorker.Lang()
	onOff := func(v bool, on, off string) string {
		if v {
			return lang.T(on)
		}
		return lang.T(off)
	}
	for i, b := range sd.buttons {
		switch i {
		case sd.btnLangEnIdx:
			b.Label = lang.T("settings.lang.en")
			b.Selected = lang.GetLang() == glang.EN
		case sd.btnLangRuIdx:
			b.Label = lang.T("settings.lang.ru")
			b.Selected = lang.GetLang() == glang.RU
		case sd.btnThemeLightIdx:
			b.Label = lang.T("settings.theme.light")
			b.Selected = ctx.Theme == gbase.LightPalette
		case sd.btnThemeDarkIdx:
			b.Label = lang.T("settings.theme.dark")
			b.Selected = ctx.Theme == gbase.DarkPalette
		case sd.btnSoundIdx:
			b.Label = onOff(ctx.Config.Sound, "settings.sound.on", "settings.sound.off")
			b.Selected = ctx.Config.Sound
		case sd.btnDebugIdx:
			b.Label = onOff(ctx.Config.Debug, "settings.debug.on", "settings.debug.off")
			b.Selected = ctx.Config.Debug
		case sd.btnApplyIdx:
			b.Label = lang.T("button.save")
		case sd.btnBackIdx:
			b.Label = lang.T("button.back")
		}
	}
	sd.buttons.Rerender(ctx.Theme)
}
