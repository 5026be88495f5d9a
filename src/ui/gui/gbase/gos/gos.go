package gos

import (
	"io"
	"os"
	"path/filepath"
)

type ReadCloser = io.ReadCloser

func Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func Open(name string) (ReadCloser, error) {
	return os.Open(name)
}

func ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile replaces name through a temp file in the same directory, so a
// crash never leaves a half-written file behind.
func WriteFile(name string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(name)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

func IsNotExist(err error) bool {
	return os.IsNotExist(err)
}
