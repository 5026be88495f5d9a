package ghelper

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// RenderRoundedRect draws an anti-aliased rounded rectangle with gg.
func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

var pixel *ebiten.Image

func onePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// EbitenutilDrawRect fills a rectangle by scaling a single white pixel.
func EbitenutilDrawRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(onePixel(), op)
}

func EbitenutilDrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	thickness = math.Min(thickness, math.Min(w, h)/2.0)

	EbitenutilDrawRect(screen, x, y, w, thickness, col)                                   // up
	EbitenutilDrawRect(screen, x, y+h-thickness, w, thickness, col)                       // down
	EbitenutilDrawRect(screen, x, y+thickness, thickness, h-thickness*2, col)             // left
	EbitenutilDrawRect(screen, x+w-thickness, y+thickness, thickness, h-thickness*2, col) // right
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

func textBounds(face font.Face, s string) image.Rectangle {
	return text.BoundString(face, s)
}

// DrawCentered draws s with its bounding box centred on (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, col color.Color) {
	b := textBounds(face, s)
	text.Draw(screen, s, face, cx-b.Dx()/2-b.Min.X, cy-b.Dy()/2-b.Min.Y, col)
}
