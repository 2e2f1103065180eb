package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/ltpaint/internal/sketch"
)

// DefaultExportName is used when no file name is supplied.
const DefaultExportName = "untitled"

const (
	DefaultCanvasSize  = 256
	DefaultExportScale = 4
)

// ExportOptions describes the off-screen surface marks are replayed onto.
// Width and Height are the live canvas size; the output is Scale times
// larger in each dimension.
type ExportOptions struct {
	Width      int
	Height     int
	Scale      float64
	Background color.Color
	Faces      *Faces
}

// DefaultExportOptions renders a 256x256 canvas at 1024x1024 on white.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Width:      DefaultCanvasSize,
		Height:     DefaultCanvasSize,
		Scale:      DefaultExportScale,
		Background: color.White,
	}
}

func (o ExportOptions) normalised() ExportOptions {
	if o.Width <= 0 {
		o.Width = DefaultCanvasSize
	}
	if o.Height <= 0 {
		o.Height = DefaultCanvasSize
	}
	if o.Scale <= 0 {
		o.Scale = DefaultExportScale
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// Rasterize replays marks onto a fresh surface. Drawing commands are scaled
// rather than the finished pixels, so strokes stay sharp.
func Rasterize(marks []sketch.Mark, opts ExportOptions) *image.RGBA {
	opts = opts.normalised()
	c := NewCanvas(int(float64(opts.Width)*opts.Scale), int(float64(opts.Height)*opts.Scale))
	c.SetFaces(opts.Faces)
	c.Scale(opts.Scale)
	c.FillRect(0, 0, float64(opts.Width), float64(opts.Height), opts.Background)
	for _, m := range marks {
		m.Render(c)
	}
	return c.Image()
}

// Export writes marks to w as a PNG.
func Export(w io.Writer, marks []sketch.Mark, opts ExportOptions) error {
	if err := png.Encode(w, Rasterize(marks, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportPNG returns the encoded PNG bytes.
func ExportPNG(marks []sketch.Mark, opts ExportOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Export(&buf, marks, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFile writes marks to path, creating parent directories as needed.
func ExportFile(path string, marks []sketch.Mark, opts ExportOptions) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Export(f, marks, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ExportName turns a user supplied name into a PNG file name.
func ExportName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultExportName
	}
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		name += ".png"
	}
	return name
}
