package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"tilepuzzle/src/base"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrNotImage = errors.New("not an image file")

// Decode reads any registered raster format. Anything else is ErrNotImage.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrNotImage
		}
		return nil, "", fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	return img, format, nil
}

func DecodeBytes(data []byte) (image.Image, string, error) {
	return Decode(bytes.NewReader(data))
}

// Fit scales img to a size x size square, the way the source image is
// stretched over the puzzle container.
func Fit(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// TileRect is the source rectangle of piece index inside a fitted image.
func TileRect(g base.Grid, index int) image.Rectangle {
	cs := g.CellSize()
	c := g.CellAt(index)
	x0 := int(float64(c.Col) * cs)
	y0 := int(float64(c.Row) * cs)
	x1 := int(float64(c.Col+1) * cs)
	y1 := int(float64(c.Row+1) * cs)
	return image.Rect(x0, y0, x1, y1)
}

// Tiles cuts a fitted image into gridSize^2 row-major tiles.
func Tiles(fitted *image.RGBA, g base.Grid) []*image.RGBA {
	out := make([]*image.RGBA, g.Cells())
	for i := range out {
		r := TileRect(g, i)
		tile := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(tile, tile.Bounds(), fitted, r.Min, draw.Src)
		out[i] = tile
	}
	return out
}

// mean colour of the rectangle, used by the terminal front end
func AverageColor(img image.Image, r image.Rectangle) color.RGBA {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return color.RGBA{}
	}
	var sr, sg, sb, n uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			sr += uint64(cr >> 8)
			sg += uint64(cg >> 8)
			sb += uint64(cb >> 8)
			n++
		}
	}
	return color.RGBA{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n), A: 0xff}
}
