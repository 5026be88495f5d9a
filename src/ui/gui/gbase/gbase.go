package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW   int = 1000
	WindowH   int = 760
	BoardSize int = 480 // puzzle container, px
	BoardX    int = 60
	BoardY    int = 120
	MemoryW   int = 600 // memory game play area
	MemoryH   int = 400
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
	BoardBg      color.RGBA
	Correct      color.RGBA // outline of a piece on its target
	Cover        color.RGBA // memory game overlay
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "light":
		return LightPalette
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
	BoardBg:      color.RGBA{0xe4, 0xe4, 0xe4, 0xff},
	Correct:      color.RGBA{0x4c, 0xaf, 0x50, 0xff},
	Cover:        color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
	BoardBg:      color.RGBA{0x2a, 0x2a, 0x2a, 0xff},
	Correct:      color.RGBA{0x66, 0xbb, 0x6a, 0xff},
	Cover:        color.RGBA{0x55, 0x55, 0x55, 0xff},
}
