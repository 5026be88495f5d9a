package ghelper

import (
	"fmt"
	"image/color"
	"math"
	"tilepuzzle/src/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect
	Selected   bool          // drawn with the accent fill

	Hover   bool
	Pressed bool

	Scale         float64
	TargetScale   float64
	OffsetY       float64 // pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // per second
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette) *Button {
	b := &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
	}
	b.Render(theme)
	return b
}

// Render redraws the background after a theme or selection change.
func (b *Button) Render(theme gbase.Palette) {
	fill := theme.ButtonFill
	if b.Selected {
		fill = theme.Accent
	}
	b.Image = RenderRoundedRect(b.W, b.H, 12, fill, theme.ButtonStroke, 3)
}

func (b *Button) SetSelected(v bool, theme gbase.Palette) {
	if b.Selected == v {
		return
	}
	b.Selected = v
	b.Render(theme)
}

func (b *Button) Contains(px, py int) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}

// HandleInput returns true when a press that started on the button is
// released on it.
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0
	}
	if justReleased {
		if b.Pressed && inside {
			b.Pressed = false
			b.TargetScale = 1.03 // bounce
			b.TargetOffsetY = 0
			return true
		}
		b.Pressed = false
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	if !b.Pressed {
		b.TargetOffsetY = 0
		if inside {
			b.TargetScale = 1.02
		} else {
			b.TargetScale = 1.0
		}
	}
	return false
}

func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	t := 1.0 - math.Exp(-b.AnimSpeed*dt)
	b.Scale += (b.TargetScale - b.Scale) * t
	b.OffsetY += (b.TargetOffsetY - b.OffsetY) * t

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	DrawCentered(screen, b.Label, face, int(cx), int(cy), theme.ButtonText)
}

// ButtonSet is a list of buttons that share one input pass per frame.
type ButtonSet []*Button

// Update feeds the pointer to every button and returns the index of the
// clicked one or -1.
func (bs ButtonSet) Update(mx, my int, justClicked, justReleased bool, dt float64) int {
	clicked := -1
	for i, b := range bs {
		if b.HandleInput(mx, my, justClicked, justReleased) && clicked < 0 {
			clicked = i
		}
		b.UpdateAnim(dt)
	}
	return clicked
}

func (bs ButtonSet) Draw(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	for _, b := range bs {
		b.DrawAnimated(screen, face, theme)
	}
}

// AppendButton adds a themed button and returns its index.
func AppendButton(ctx *GUIGameContext, label string, x, y, w, h int, buttons ButtonSet) (int, ButtonSet) {
	buttons = append(buttons, NewButton(label, x, y, w, h, ctx.Theme))
	return len(buttons) - 1, buttons
}

func (bs ButtonSet) Rerender(theme gbase.Palette) {
	for _, b := range bs {
		b.Render(theme)
	}
}

// ---- MessageBox ----

type MessageChoice struct {
	Label string
	Value any
}

type rect struct{ X, Y, W, H int }

type MessageBox struct {
	Label string

	Open      bool
	Animating bool
	Scale     float64 // 0..1
	Opening   bool
	OnClose   func()

	Choices    []MessageChoice
	HoverIndex int
	OnSelect   func(idx int, v any)
}

func NewMessageBox() *MessageBox {
	return &MessageBox{HoverIndex: -1}
}

const (
	choiceW   = 150
	choiceH   = 48
	choiceGap = 14
	okW, okH  = 120, 44
)

// layout is shared by Update and Draw so hit boxes match what is drawn
func (mb *MessageBox) layout(ctx *GUIGameContext) (modal rect, label rect, items []rect) {
	b := textBounds(ctx.AssetsWorker.Fonts().Normal, mb.Label)
	tw, th := max(b.Dx(), 200), b.Dy()
	mw, mh := tw+64, th+40
	n := len(mb.Choices)
	if n > 0 {
		total := n*choiceW + (n-1)*choiceGap
		mw = max(mw, total+64)
		mh += choiceH + 36
	} else {
		mh += okH + 36
	}

	s := math.Max(0, math.Min(1, mb.Scale))
	cw, ch := max(int(float64(mw)*s), 6), max(int(float64(mh)*s), 6)
	modal = rect{X: (ctx.Config.WindowW - cw) / 2, Y: (ctx.Config.WindowH - ch) / 2, W: cw, H: ch}
	label = rect{X: modal.X + 32, Y: modal.Y + 28 + th, W: tw, H: th}

	if n > 0 {
		total := n*choiceW + (n-1)*choiceGap
		x0 := modal.X + (modal.W-total)/2
		y0 := modal.Y + modal.H - choiceH - 20
		for i := range mb.Choices {
			items = append(items, rect{X: x0 + i*(choiceW+choiceGap), Y: y0, W: choiceW, H: choiceH})
		}
	} else {
		items = append(items, rect{X: modal.X + (modal.W-okW)/2, Y: modal.Y + modal.H - okH - 20, W: okW, H: okH})
	}
	return modal, label, items
}

func (mb *MessageBox) AnimateMessage() {
	const dt = 1.0 / 60.0
	const speed = 6.0
	if !mb.Animating {
		return
	}
	if mb.Opening {
		mb.Scale += speed * dt
		if mb.Scale >= 1.0 {
			mb.Scale = 1.0
			mb.Animating = false
		}
		return
	}
	mb.Scale -= speed * dt
	if mb.Scale <= 0.0 {
		mb.Scale = 0.0
		mb.Animating = false
		mb.Open = false
		if mb.OnClose != nil {
			mb.OnClose()
		}
	}
}

func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.show(msg, nil, nil)
	mb.OnClose = onClose
}

func (mb *MessageBox) ShowMessageWithChoices(msg string, choices []MessageChoice, onSelect func(idx int, v any)) {
	mb.show(msg, choices, onSelect)
}

func (mb *MessageBox) show(msg string, choices []MessageChoice, onSelect func(int, any)) {
	mb.Label = msg
	mb.Choices = choices
	mb.OnSelect = onSelect
	mb.OnClose = nil
	mb.HoverIndex = -1
	mb.Open = true
	mb.Opening = true
	mb.Animating = true
	mb.Scale = 0.0
}

// Update handles the pointer while the box is shown.
func (mb *MessageBox) Update(ctx *GUIGameContext, mx, my int, justReleased bool) {
	if !mb.Open || (!mb.Opening && mb.Animating) {
		return
	}
	_, _, items := mb.layout(ctx)
	mb.HoverIndex = -1
	for i, r := range items {
		if PointInRect(mx, my, r.X, r.Y, r.W, r.H) {
			mb.HoverIndex = i
		}
	}
	if !justReleased || mb.HoverIndex < 0 {
		return
	}
	if len(mb.Choices) > 0 && mb.OnSelect != nil {
		mb.OnSelect(mb.HoverIndex, mb.Choices[mb.HoverIndex].Value)
	}
	mb.CollapseMessage()
}

func (mb *MessageBox) IsOverlayed() bool {
	return mb.Open || mb.Animating
}

func (mb *MessageBox) Draw(ctx *GUIGameContext, screen *ebiten.Image) {
	if !mb.IsOverlayed() {
		return
	}
	EbitenutilDrawRect(screen, 0, 0, float64(ctx.Config.WindowW), float64(ctx.Config.WindowH), ctx.Theme.ModalBg)

	modal, txt, items := mb.layout(ctx)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(modal.X), float64(modal.Y))
	screen.DrawImage(RenderRoundedRect(modal.W, modal.H, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3), op)
	if mb.Scale <= 0.85 {
		return
	}

	text.Draw(screen, mb.Label, ctx.AssetsWorker.Fonts().Normal, txt.X, txt.Y, ctx.Theme.MenuText)
	if len(mb.Choices) == 0 {
		ok := items[0]
		op2 := &ebiten.DrawImageOptions{}
		op2.GeoM.Translate(float64(ok.X), float64(ok.Y))
		screen.DrawImage(RenderRoundedRect(ok.W, ok.H, 12, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 3), op2)
		DrawCentered(screen, ctx.AssetsWorker.Lang().T("button.ok"), ctx.AssetsWorker.Fonts().PixelLow, ok.X+ok.W/2, ok.Y+ok.H/2, color.White)
		return
	}
	for i, ch := range mb.Choices {
		r := items[i]
		fill := ctx.Theme.ButtonFill
		if i == mb.HoverIndex {
			fill = lerpColor(fill, ctx.Theme.Accent, 0.35)
		}
		opc := &ebiten.DrawImageOptions{}
		opc.GeoM.Translate(float64(r.X), float64(r.Y))
		screen.DrawImage(RenderRoundedRect(r.W, r.H, 12, fill, ctx.Theme.ButtonStroke, 3), opc)
		DrawCentered(screen, ch.Label, ctx.AssetsWorker.Fonts().PixelLow, r.X+r.W/2, r.Y+r.H/2, ctx.Theme.ButtonText)
	}
}

func (mb *MessageBox) CollapseMessage() {
	mb.Opening = false
	mb.Animating = true
}

// --- Number Wheel ---

// NumberWheel picks an integer with the mouse wheel, arrow keys or a click
// on the upper/lower half.
type NumberWheel struct {
	X, Y, W, H int
	Min, Max   int
	Step       int
	Title      string // lang key drawn above
	Format     func(int) string

	value    int
	offset   float64 // px, eases back to 0 after a step
	hover    bool
	onChange func(int)
}

func NewNumberWheel(x, y, w, h, min, max, step, initial int, title string) *NumberWheel {
	return &NumberWheel{
		X: x, Y: y, W: w, H: h,
		Min: min, Max: max, Step: step,
		Title:  title,
		Format: func(v int) string { return fmt.Sprintf("%d", v) },
		value:  clamp(initial, min, max),
	}
}

func (nw *NumberWheel) SetOnChange(fn func(int)) {
	nw.onChange = fn
}

func (nw *NumberWheel) Value() int { return nw.value }

func (nw *NumberWheel) SetValue(v int) {
	v = clamp(v, nw.Min, nw.Max)
	if nw.value == v {
		return
	}
	nw.value = v
	if nw.onChange != nil {
		nw.onChange(v)
	}
}

func (nw *NumberWheel) Update(mx, my int, justReleased bool, keyUp, keyDown bool) {
	nw.hover = PointInRect(mx, my, nw.X, nw.Y, nw.W, nw.H)
	dir := 0
	if nw.hover {
		if _, dy := ebiten.Wheel(); dy > 0 {
			dir = 1
		} else if dy < 0 {
			dir = -1
		}
		if keyUp {
			dir = 1
		}
		if keyDown {
			dir = -1
		}
		if justReleased {
			if my < nw.Y+nw.H/2 {
				dir = 1
			} else {
				dir = -1
			}
		}
	}
	if dir != 0 {
		before := nw.value
		nw.SetValue(nw.value + dir*nw.Step)
		if nw.value != before {
			nw.offset = float64(dir) * float64(nw.H) / 4
		}
	}
	nw.offset *= 0.8
	if math.Abs(nw.offset) < 0.5 {
		nw.offset = 0
	}
}

func (nw *NumberWheel) Draw(ctx *GUIGameContext, screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(nw.X), float64(nw.Y))
	screen.DrawImage(RenderRoundedRect(nw.W, nw.H, 10, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3), op)

	if nw.Title != "" {
		text.Draw(screen, ctx.AssetsWorker.Lang().T(nw.Title), ctx.AssetsWorker.Fonts().Pixel, nw.X+4, nw.Y-8, ctx.Theme.MenuText)
	}

	cx, cy := nw.X+nw.W/2, nw.Y+nw.H/2+int(nw.offset)
	row := nw.H / 3
	faded := lerpColor(ctx.Theme.MenuText, ctx.Theme.ButtonFill, 0.6)
	if v := nw.value + nw.Step; v <= nw.Max {
		DrawCentered(screen, nw.Format(v), ctx.AssetsWorker.Fonts().PixelLow, cx, cy-row, faded)
	}
	DrawCentered(screen, nw.Format(nw.value), ctx.AssetsWorker.Fonts().Bold, cx, cy, ctx.Theme.MenuText)
	if v := nw.value - nw.Step; v >= nw.Min {
		DrawCentered(screen, nw.Format(v), ctx.AssetsWorker.Fonts().PixelLow, cx, cy+row, faded)
	}

	if nw.hover {
		EbitenutilDrawRectStroke(screen, float64(nw.X)+1, float64(nw.Y)+1, float64(nw.W)-2, float64(nw.H)-2, 2, ctx.Theme.Accent)
	}
}

func clamp(v, a, b int) int {
	if v < a {
		return a
	}
	if v > b {
		return b
	}
	return v
}

func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return c1
	}
	if t >= 1 {
		return c2
	}
	return color.RGBA{
		R: uint8(float64(c1.R)*(1.0-t) + float64(c2.R)*t),
		G: uint8(float64(c1.G)*(1.0-t) + float64(c2.G)*t),
		B: uint8(float64(c1.B)*(1.0-t) + float64(c2.B)*t),
		A: uint8(float64(c1.A)*(1.0-t) + float64(c2.A)*t),
	}
}
