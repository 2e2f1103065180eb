//go:build !(((linux || freebsd || openbsd || netbsd || dragonfly || darwin) && cgo) || windows || ((linux || freebsd || openbsd || netbsd || dragonfly) && !cgo))

package clipboard

import "fmt"

func WritePNG([]byte) error {
	return fmt.Errorf("clipboard image operations are not supported on this platform")
}

func ReadText() (string, error) {
	return "", fmt.Errorf("clipboard text operations are not supported on this platform")
}
