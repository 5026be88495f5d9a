package gdraw

import (
	"errors"
	"fmt"
	"image"
	"tilepuzzle/src/imageio"
	"tilepuzzle/src/ui/gui/gbase"
	"tilepuzzle/src/ui/gui/gbase/gos"
	"tilepuzzle/src/ui/gui/ghelper"
	"tilepuzzle/src/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const previewSize = 240

type imageSource int

const (
	sourceSample imageSource = iota
	sourceFile
)

type pickResult struct {
	img  image.Image
	name string
	path string
	err  error
}

// GUIPuzzleSetupDrawer picks grid size, time limit and picture for the
// next puzzle.
type GUIPuzzleSetupDrawer struct {
	msg     *ghelper.MessageBox
	buttons ghelper.ButtonSet

	// index of buttons
	btnImageIdx int
	btnStartIdx int
	btnSaveIdx  int
	btnBackIdx  int

	gridWheel *ghelper.NumberWheel
	timeWheel *ghelper.NumberWheel

	preview *ebiten.Image
	pickCh  chan pickResult
	picking bool

	startX, startY int

	ptr   pointerTracker
	clock frameClock
}

func NewGUIPuzzleSetupDrawer(ctx *ghelper.GUIGameContext) *GUIPuzzleSetupDrawer {
	x, y, w, h := 40, 80, 160, 56
	sd := &GUIPuzzleSetupDrawer{
		msg:    ghelper.NewMessageBox(),
		pickCh: make(chan pickResult, 1),
		startX: x,
		startY: y,
		clock:  newFrameClock(),
	}

	sd.gridWheel = ghelper.NewNumberWheel(x+20, y+80, w, h*2+30, 3, 8, 1, ctx.Config.GridSize, "setup.grid")
	sd.gridWheel.Format = func(v int) string { return fmt.Sprintf("%dx%d", v, v) }
	sd.gridWheel.SetOnChange(func(v int) { ctx.Config.GridSize = v })

	sd.timeWheel = ghelper.NewNumberWheel(x+20+w+40, y+80, w, h*2+30, 0, 600, 15, ctx.Config.TimeLimit, "setup.time")
	sd.timeWheel.Format = func(v int) string {
		if v == 0 {
			return ctx.AssetsWorker.Lang().T("setup.unlimited")
		}
		return formatClock(v)
	}
	sd.timeWheel.SetOnChange(func(v int) { ctx.Config.TimeLimit = v })

	sd.btnImageIdx, sd.buttons = ghelper.AppendButton(ctx, "", x+20, y+80+h*2+80, w*2+40, h, sd.buttons)
	// navigate buttons
	sd.btnStartIdx, sd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("setup.start"), ctx.Config.WindowW-w-60, ctx.Config.WindowH-h-60, w, h, sd.buttons)
	sd.btnSaveIdx, sd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("button.save"), ctx.Config.WindowW-240-w, ctx.Config.WindowH-h-60, w, h, sd.buttons)
	sd.btnBackIdx, sd.buttons = ghelper.AppendButton(ctx, ctx.AssetsWorker.Lang().T("button.back"), ctx.Config.WindowW-420-w, ctx.Config.WindowH-h-60, w, h, sd.buttons)

	// last picked file, if still readable
	if ctx.Source == nil && ctx.Config.LastImage != "" {
		if img, err := loadImageFile(ctx.Config.LastImage); err == nil {
			ctx.Source = img
			ctx.SourceName = ctx.Config.LastImage
		} else {
			ctx.Logx.Warnf("last image %s: %v", ctx.Config.LastImage, err)
		}
	}
	sd.refreshPreview(ctx)
	sd.refreshButtons(ctx)
	return sd
}

func (sd *GUIPuzzleSetupDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	p := sd.ptr.read()
	dt := sd.clock.dt()

	select {
	case res := <-sd.pickCh:
		sd.picking = false
		sd.applyPick(ctx, res)
	default:
	}

	if sd.msg.Open {
		sd.msg.Update(ctx, p.X, p.Y, p.JustReleased)
		sd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	sd.gridWheel.Update(p.X, p.Y, p.JustReleased, inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowDown))
	sd.timeWheel.Update(p.X, p.Y, p.JustReleased, inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowDown))

	switch sd.buttons.Update(p.X, p.Y, p.JustPressed, p.JustReleased, dt) {
	case sd.btnImageIdx:
		if sd.picking {
			break
		}
		sd.msg.ShowMessageWithChoices(ctx.AssetsWorker.Lang().T("setup.image.choose"), []ghelper.MessageChoice{
			{Label: ctx.AssetsWorker.Lang().T("setup.image.sample"), Value: sourceSample},
			{Label: ctx.AssetsWorker.Lang().T("setup.image.file"), Value: sourceFile},
		}, func(_ int, v any) {
			switch v.(imageSource) {
			case sourceSample:
				ctx.Source, ctx.SourceName = nil, ""
				ctx.Config.LastImage = ""
				sd.refreshPreview(ctx)
				sd.refreshButtons(ctx)
			case sourceFile:
				sd.browse(ctx)
			}
		})
	case sd.btnStartIdx:
		if sd.picking {
			break
		}
		if err := startPuzzle(ctx); err != nil {
			ctx.Logx.Errorf("start puzzle: %v", err)
			sd.msg.ShowMessage(err.Error(), nil)
			break
		}
		return ScenePuzzle, nil
	case sd.btnSaveIdx:
		if err := ctx.Config.Save(); err != nil {
			ctx.Logx.Errorf("config save failed: %v", err)
			sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.save.failed"), nil)
		} else {
			sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.save.success"), nil)
		}
	case sd.btnBackIdx:
		return SceneMenu, nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !sd.picking {
		if err := startPuzzle(ctx); err == nil {
			return ScenePuzzle, nil
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneMenu, nil
	}
	return SceneNotChanged, nil
}

func (sd *GUIPuzzleSetupDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()

	text.Draw(screen, ctx.AssetsWorker.Lang().T("setup.title"), fonts.Bold, sd.startX, sd.startY, ctx.Theme.MenuText)
	text.Draw(screen, ctx.AssetsWorker.Lang().T("setup.image"), fonts.Pixel, sd.startX+20, sd.buttons[sd.btnImageIdx].Y-8, ctx.Theme.MenuText)

	sd.gridWheel.Draw(ctx, screen)
	sd.timeWheel.Draw(ctx, screen)
	sd.buttons.Draw(screen, fonts.PixelLow, ctx.Theme)

	// preview with the grid lines of the chosen size
	px, py := ctx.Config.WindowW-previewSize-80, sd.startY+60
	ghelper.EbitenutilDrawRect(screen, float64(px-4), float64(py-4), previewSize+8, previewSize+8, ctx.Theme.ButtonStroke)
	if sd.preview != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(px), float64(py))
		screen.DrawImage(sd.preview, op)
	}
	n := sd.gridWheel.Value()
	for i := 1; i < n; i++ {
		off := float64(previewSize*i) / float64(n)
		ghelper.EbitenutilDrawRect(screen, float64(px)+off, float64(py), 1, previewSize, ctx.Theme.Bg)
		ghelper.EbitenutilDrawRect(screen, float64(px), float64(py)+off, previewSize, 1, ctx.Theme.Bg)
	}

	sd.msg.Draw(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

// browse runs the blocking file dialog off the game loop; the result comes
// back through pickCh.
func (sd *GUIPuzzleSetupDrawer) browse(ctx *ghelper.GUIGameContext) {
	sd.picking = true
	title := ctx.AssetsWorker.Lang().T("setup.image.dialog")
	go func() {
		res, err := gdialog.OpenImage(title)
		if err != nil {
			sd.pickCh <- pickResult{err: err}
			return
		}
		img, format, err := imageio.DecodeBytes(res.Data)
		if err == nil {
			ctx.Logx.Debugf("picked %s (%s)", res.Path, format)
		}
		sd.pickCh <- pickResult{img: img, name: res.Name, path: res.Path, err: err}
	}()
}

func (sd *GUIPuzzleSetupDrawer) applyPick(ctx *ghelper.GUIGameContext, res pickResult) {
	switch {
	case gdialog.IsCancelled(res.err):
		return
	case errors.Is(res.err, imageio.ErrNotImage):
		ctx.Logx.Warnf("rejected %s: %v", res.name, res.err)
		sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("setup.not_image"), nil)
		return
	case res.err != nil:
		ctx.Logx.Errorf("open image: %v", res.err)
		sd.msg.ShowMessage(res.err.Error(), nil)
		return
	}
	ctx.Source, ctx.SourceName = res.img, res.name
	ctx.Config.LastImage = res.path
	sd.refreshPreview(ctx)
	sd.refreshButtons(ctx)
}

func (sd *GUIPuzzleSetupDrawer) refreshPreview(ctx *ghelper.GUIGameContext) {
	src := ctx.Source
	if src == nil {
		src = imageio.Sample(previewSize)
	}
	sd.preview = ebiten.NewImageFromImage(imageio.Fit(src, previewSize))
}

func (sd *GUIPuzzleSetupDrawer) refreshButtons(ctx *ghelper.GUIGameContext) {
	label := ctx.AssetsWorker.Lang().T("setup.image.sample")
	if ctx.SourceName != "" {
		label = ctx.SourceName
	}
	sd.buttons[sd.btnImageIdx].Label = label
	sd.buttons.Rerender(ctx.Theme)
}

// startPuzzle shuffles a new game from the chosen picture and settings.
func startPuzzle(ctx *ghelper.GUIGameContext) error {
	img := ctx.Source
	if img == nil {
		img = imageio.Sample(gbase.BoardSize)
	}
	ctx.Builder.SetTimeLimit(ctx.Config.TimeLimit)
	_, err := ctx.Builder.StartGame(img, ctx.Config.GridSize, float64(gbase.BoardSize))
	return err
}

func loadImageFile(path string) (image.Image, error) {
	f, err := gos.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := imageio.Decode(f)
	return img, err
}

func formatClock(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
