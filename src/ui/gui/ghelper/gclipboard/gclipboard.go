package gclipboard

import "github.com/atotto/clipboard"

// Available is false on systems without a clipboard tool (no xclip/xsel).
func Available() bool {
	return !clipboard.Unsupported
}

func WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
