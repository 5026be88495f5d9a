package gdraw

import (
	"tilepuzzle/src/ui/gui/ghelper"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *ghelper.GUIGameContext) (SceneType, error)
	Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneMenu SceneType = iota
	ScenePuzzleSetup
	ScenePuzzle
	SceneMemory
	SceneCalendar
	SceneSettings
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *ghelper.GUIGameContext) Scene {
	switch t {
	case SceneMenu:
		s = NewGUIMenuDrawer(ctx)
	case ScenePuzzleSetup:
		s = NewGUIPuzzleSetupDrawer(ctx)
	case ScenePuzzle:
		s = NewGUIPuzzleDrawer(ctx)
	case SceneMemory:
		s = NewGUIMemoryDrawer(ctx)
	case SceneCalendar:
		s = NewGUICalendarDrawer(ctx)
	case SceneSettings:
		s = NewGUISettingsDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// ---- Scene manager ----

type SceneManager struct {
	ctx     *ghelper.GUIGameContext
	current Scene
}

func NewSceneManager(ctx *ghelper.GUIGameContext) *SceneManager {
	return &SceneManager{ctx: ctx, current: NewGUIMenuDrawer(ctx)}
}

func (sm *SceneManager) Update() error {
	t, err := sm.current.Update(sm.ctx)
	if err != nil {
		return err
	}
	if t != SceneNotChanged {
		sm.ctx.Logx.Debugf("scene switch -> %d", t)
		sm.current = t.ToScene(sm.current, sm.ctx)
	}
	return nil
}

func (sm *SceneManager) Draw(screen *ebiten.Image) {
	sm.current.Draw(sm.ctx, screen)
}

// ---- Pointer ----

// pointer merges the left mouse button and the first touch into one
// press/move/release stream.
type pointer struct {
	X, Y         int
	Down         bool
	JustPressed  bool
	JustReleased bool
	Touch        bool
}

type pointerTracker struct {
	prevDown bool
	touchID  ebiten.TouchID
	touching bool
	lastX    int
	lastY    int
}

func (pt *pointerTracker) read() pointer {
	if !pt.touching {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			pt.touchID = ids[0]
			pt.touching = true
		}
	}
	if pt.touching {
		p := pointer{Touch: true}
		if inpututil.IsTouchJustReleased(pt.touchID) {
			pt.touching = false
			p.X, p.Y = pt.lastX, pt.lastY
			p.JustReleased = true
			pt.prevDown = false
			return p
		}
		p.X, p.Y = ebiten.TouchPosition(pt.touchID)
		pt.lastX, pt.lastY = p.X, p.Y
		p.Down = true
		p.JustPressed = !pt.prevDown
		pt.prevDown = true
		return p
	}

	mx, my := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p := pointer{
		X:            mx,
		Y:            my,
		Down:         down,
		JustPressed:  down && !pt.prevDown,
		JustReleased: !down && pt.prevDown,
	}
	pt.prevDown = down
	return p
}

// frameClock returns the seconds since the previous call.
type frameClock struct {
	last time.Time
}

func newFrameClock() frameClock {
	return frameClock{last: time.Now()}
}

func (fc *frameClock) dt() float64 {
	now := time.Now()
	d := now.Sub(fc.last).Seconds()
	fc.last = now
	return d
}
