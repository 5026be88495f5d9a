package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Pixel    font.Face
	PixelLow font.Face
	Normal   font.Face
	Bold     font.Face
	Big      font.Face // timer and result banners
}

func face(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadFonts builds all faces from the Go font family compiled into x/image.
func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{}
	if fonts.Pixel, err = face(gomono.TTF, 14); err != nil {
		return nil, err
	}
	if fonts.PixelLow, err = face(gomono.TTF, 12); err != nil {
		return nil, err
	}
	if fonts.Normal, err = face(goregular.TTF, 15); err != nil {
		return nil, err
	}
	if fonts.Bold, err = face(gobold.TTF, 20); err != nil {
		return nil, err
	}
	if fonts.Big, err = face(gobold.TTF, 34); err != nil {
		return nil, err
	}
	return fonts, nil
}
