package imageio

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Sample draws a built-in picture with distinct regions, so every piece of
// the puzzle is tellable apart without a user image.
func Sample(size int) image.Image {
	if size <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	s := float64(size)
	dc := gg.NewContext(size, size)

	grad := gg.NewLinearGradient(0, 0, s, s)
	grad.AddColorStop(0, color.RGBA{0x1e, 0x3c, 0x72, 0xff})
	grad.AddColorStop(0.5, color.RGBA{0x2a, 0x9d, 0x8f, 0xff})
	grad.AddColorStop(1, color.RGBA{0xf4, 0xa2, 0x61, 0xff})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()

	// sun
	dc.SetHexColor("#ffd166")
	dc.DrawCircle(s*0.75, s*0.25, s*0.12)
	dc.Fill()

	// hills
	dc.SetHexColor("#264653")
	dc.MoveTo(0, s)
	for x := 0.0; x <= s; x += s / 64 {
		dc.LineTo(x, s*0.7+math.Sin(x/s*3*math.Pi)*s*0.08)
	}
	dc.LineTo(s, s)
	dc.ClosePath()
	dc.Fill()

	// grid of dots
	dc.SetRGBA(1, 1, 1, 0.35)
	step := s / 12
	for y := step / 2; y < s*0.6; y += step {
		for x := step / 2; x < s; x += step {
			dc.DrawCircle(x, y, step*0.08)
		}
	}
	dc.Fill()
	return dc.Image()
}

