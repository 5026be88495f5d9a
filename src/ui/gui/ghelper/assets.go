package ghelper

import (
	"image"
	"tilepuzzle/src/ui/gui/gbase/gconf"
	"tilepuzzle/src/ui/gui/ghelper/gfont"
	"tilepuzzle/src/ui/gui/ghelper/gimages"
	"tilepuzzle/src/ui/gui/ghelper/glang"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	fonts      *gfont.Fonts
	iconImages map[int]*ebiten.Image
	icons      map[int]image.Image
	lang       *glang.GUILangWorker
}

func NewGUIAssetsWorker(cfg *gconf.Config) (*GUIAssetsWorker, error) {
	icons := gimages.LoadIconAssets()
	l, err := glang.NewGUILangWorker("assets/lang", cfg.Lang)
	if err != nil {
		return nil, err
	}
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{
		fonts:      f,
		iconImages: gimages.LoadImageIconAssets(icons),
		icons:      icons,
		lang:       l,
	}, nil
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}
func (aw *GUIAssetsWorker) Icon(x int) *ebiten.Image {
	return aw.iconImages[x]
}
func (aw *GUIAssetsWorker) IconNative(x int) image.Image {
	return aw.icons[x]
}
func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
