// Package clipboard copies exported drawings to the system clipboard and
// reads text from it for new sticker glyphs.
package clipboard

import (
	"errors"
	"os"
	"runtime"
	"strings"
)

var (
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	// ErrEmpty is returned when the clipboard holds no data of the requested kind.
	ErrEmpty = errors.New("clipboard is empty")
)

// displayAvailable reports whether a graphical session is reachable. Only
// X11 and Wayland platforms need an environment variable to find one.
func displayAvailable() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// cleanText strips the trailing NUL some X11 clients append and surrounding
// whitespace.
func cleanText(data []byte) (string, error) {
	text := strings.TrimSpace(strings.TrimRight(string(data), "\x00"))
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}
