package ghelper

import (
	"image"
	"tilepuzzle/src"
	"tilepuzzle/src/logx"
	"tilepuzzle/src/memory"
	"tilepuzzle/src/ui/gui/gbase"
	"tilepuzzle/src/ui/gui/gbase/gconf"
	"tilepuzzle/src/ui/gui/ghelper/gsound"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *src.GameBuilder
	Memory       *memory.Game
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Sound        *gsound.Player
	Logx         logx.Logger

	// picture chosen for the next puzzle, nil means the built-in sample
	Source     image.Image
	SourceName string
}

func NewGUIGameContext(b *src.GameBuilder, a *GUIAssetsWorker, c *gconf.Config, s *gsound.Player, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		Memory:       memory.NewGame(gbase.MemoryW, gbase.MemoryH, l.Named("memory")),
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Sound:        s,
		Logx:         l,
	}
}
