package gassets

import (
	"embed"
	"path"
	"tilepuzzle/src/ui/gui/gbase/gos"
)

//go:embed assets
var embeddedAssets embed.FS

// ReadAsset prefers a file on disk next to the binary, so translations can be
// edited without a rebuild, and falls back to the embedded copy.
func ReadAsset(name string) ([]byte, error) {
	if _, err := gos.Stat(name); err == nil {
		return gos.ReadFile(name)
	}
	return embeddedAssets.ReadFile(path.Clean(name))
}
