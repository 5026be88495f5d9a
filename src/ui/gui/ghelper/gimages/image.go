package gimages

import (
	"image"
	"tilepuzzle/src/base"
	"tilepuzzle/src/imageio"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

var iconSizes = []int{16, 32, 48, 60}

// drawIcon renders a 2x2 tile mark with one tile lifted out of place.
func drawIcon(size int) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)
	gap := s / 16
	cell := (s - gap*3) / 2
	colors := []string{"#2288cc", "#4caf50", "#ff5722", "#9c27b0"}
	for i, c := range colors {
		x := gap + float64(i%2)*(cell+gap)
		y := gap + float64(i/2)*(cell+gap)
		if i == 3 {
			x -= gap
			y -= gap
		}
		dc.SetHexColor(c)
		dc.DrawRoundedRectangle(x, y, cell, cell, cell/6)
		dc.Fill()
	}
	return dc.Image()
}

func LoadIconAssets() map[int]image.Image {
	out := make(map[int]image.Image, len(iconSizes))
	for _, s := range iconSizes {
		out[s] = drawIcon(s)
	}
	return out
}

func LoadImageIconAssets(icons map[int]image.Image) map[int]*ebiten.Image {
	out := make(map[int]*ebiten.Image, len(icons))
	for s, img := range icons {
		out[s] = ebiten.NewImageFromImage(img)
	}
	return out
}

// PieceImages cuts img into the grid's tiles at container resolution.
func PieceImages(img image.Image, g base.Grid) []*ebiten.Image {
	fitted := imageio.Fit(img, int(g.ContainerSize))
	tiles := imageio.Tiles(fitted, g)
	out := make([]*ebiten.Image, len(tiles))
	for i, t := range tiles {
		out[i] = ebiten.NewImageFromImage(t)
	}
	return out
}
