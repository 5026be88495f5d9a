package memory

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// RenderShapes draws all shapes on a transparent w x h layer.
func RenderShapes(shapes []Shape, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	for _, s := range shapes {
		drawShape(dc, s)
	}
	return dc.Image()
}

// RenderShape draws a single shape centred in a size x size image, used for
// the target hint.
func RenderShape(s Shape, size int) image.Image {
	dc := gg.NewContext(size, size)
	s.X, s.Y, s.Size = 0, 0, size
	drawShape(dc, s)
	return dc.Image()
}

func drawShape(dc *gg.Context, s Shape) {
	size := float64(s.Size)
	x, y := float64(s.X), float64(s.Y)
	cx, cy := x+size/2, y+size/2

	dc.SetHexColor(s.Color)
	switch s.Kind {
	case Circle:
		dc.DrawCircle(cx, cy, size/2)
	case Square:
		dc.DrawRectangle(x, y, size, size)
	case Triangle:
		dc.MoveTo(cx, y)
		dc.LineTo(x+size, y+size)
		dc.LineTo(x, y+size)
		dc.ClosePath()
	case Hexagon:
		dc.DrawRegularPolygon(6, cx, cy, size/2, 0)
	case Star:
		drawStar(dc, cx, cy, size/2, size/4)
	}
	dc.Fill()
}

// five points, first one up
func drawStar(dc *gg.Context, cx, cy, outer, inner float64) {
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		px, py := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}
