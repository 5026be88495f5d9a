package gui

import (
	"image"
	"tilepuzzle/src"
	"tilepuzzle/src/logx"
	"tilepuzzle/src/ui/gui/gbase/gconf"
	"tilepuzzle/src/ui/gui/gdraw"
	"tilepuzzle/src/ui/gui/ghelper"
	"tilepuzzle/src/ui/gui/ghelper/gsound"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *ghelper.GUIGameContext
}

func NewGUI(b *src.GameBuilder, configPath string, logx logx.Logger) (*GUIProcessing, error) {
	cfg, err := gconf.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	as, err := ghelper.NewGUIAssetsWorker(cfg)
	if err != nil {
		return nil, err
	}

	snd := gsound.NewPlayer(cfg.Sound)
	if cfg.Sound {
		// no audio device is not fatal
		if err := snd.Init(); err != nil {
			logx.Warnf("audio disabled: %v", err)
		}
	}

	ctx := ghelper.NewGUIGameContext(b, as, cfg, snd, logx)
	mgr := gdraw.NewSceneManager(ctx)
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	defer gp.ctx.Sound.Close()

	ebiten.SetWindowIcon([]image.Image{
		gp.ctx.AssetsWorker.IconNative(16),
		gp.ctx.AssetsWorker.IconNative(32),
		gp.ctx.AssetsWorker.IconNative(48),
		gp.ctx.AssetsWorker.IconNative(60),
	})
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("tilepuzzle")
	// keep ticking while unfocused so the countdown keeps running
	ebiten.SetRunnableOnUnfocused(true)
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update()
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
