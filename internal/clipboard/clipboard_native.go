//go:build ((linux || freebsd || openbsd || netbsd || dragonfly || darwin) && cgo) || windows

package clipboard

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if !displayAvailable() {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

// WritePNG publishes PNG encoded image data to the clipboard.
func WritePNG(data []byte) error {
	if err := ensureInit(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

// ReadText returns the trimmed UTF-8 text held by the clipboard.
func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	return cleanText(clipboard.Read(clipboard.FmtText))
}
