package render

import (
	"image/color"

	"github.com/example/ltpaint/internal/sketch"
)

// Source is the drawing state a frame is built from.
type Source interface {
	Marks() []sketch.Mark
	Open() sketch.Mark
	Preview() sketch.Preview
}

// Frame repaints dst from scratch: background, committed marks in order, the
// open mark, then the preview when no mark is open.
func Frame(dst sketch.Surface, bg color.Color, src Source) {
	w, h := dst.Size()
	dst.FillRect(0, 0, w, h, bg)
	for _, m := range src.Marks() {
		m.Render(dst)
	}
	open := src.Open()
	if open != nil {
		open.Render(dst)
		return
	}
	if p := src.Preview(); p != nil {
		p.Render(dst)
	}
}
