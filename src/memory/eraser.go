package memory

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Eraser keeps the cleared part of the cover as an alpha mask: 0xff where
// the player rubbed the cover away.
type Eraser struct {
	dc     *gg.Context
	radius float64
	dirty  bool
	cover  *image.RGBA
}

func NewEraser(w, h int, radius float64) *Eraser {
	e := &Eraser{dc: gg.NewContext(w, h), radius: radius}
	e.Reset()
	return e
}

func (e *Eraser) Reset() {
	e.dc.SetRGBA(0, 0, 0, 0)
	e.dc.Clear()
	e.dirty = true
}

func (e *Eraser) Erase(x, y float64) {
	e.dc.SetRGBA(1, 1, 1, 1)
	e.dc.DrawCircle(x, y, e.radius)
	e.dc.Fill()
	e.dirty = true
}

// ErasedRatio is the share of fully cleared pixels inside r. Parts of r
// outside the board count as covered.
func (e *Eraser) ErasedRatio(r image.Rectangle) float64 {
	if r.Empty() {
		return 0
	}
	mask := e.dc.Image()
	inside := r.Intersect(mask.Bounds())
	erased := 0
	for y := inside.Min.Y; y < inside.Max.Y; y++ {
		for x := inside.Min.X; x < inside.Max.X; x++ {
			_, _, _, a := mask.At(x, y).RGBA()
			if a == 0xffff {
				erased++
			}
		}
	}
	return float64(erased) / float64(r.Dx()*r.Dy())
}

// Cover renders the remaining cover in col, transparent where erased.
func (e *Eraser) Cover(col color.RGBA) *image.RGBA {
	if !e.dirty && e.cover != nil {
		return e.cover
	}
	mask := e.dc.Image()
	b := mask.Bounds()
	if e.cover == nil || e.cover.Bounds() != b {
		e.cover = image.NewRGBA(b)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := mask.At(x, y).RGBA()
			keep := 0xffff - a
			// premultiplied
			e.cover.SetRGBA(x, y, color.RGBA{
				R: uint8(uint32(col.R) * keep / 0xffff),
				G: uint8(uint32(col.G) * keep / 0xffff),
				B: uint8(uint32(col.B) * keep / 0xffff),
				A: uint8(uint32(col.A) * keep / 0xffff),
			})
		}
	}
	e.dirty = false
	return e.cover
}
