package gdialog

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

var ErrCancelled = dialog.ErrCancelled

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenImage asks for a picture file. The filter only helps the user; the
// content is still checked when decoded.
func OpenImage(title string) (Result, error) {
	path, err := dialog.File().
		Title(title).
		Filter("Images", "png", "jpg", "jpeg", "gif", "bmp", "webp").
		Filter("All files", "*").
		Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

func IsCancelled(err error) bool {
	return errors.Is(err, dialog.ErrCancelled)
}
