// Package appstate hosts the paint window: it routes shiny pointer and key
// events into an input.Machine and repaints the canvas after every change.
package appstate

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/example/ltpaint/internal/clipboard"
	"github.com/example/ltpaint/internal/input"
	"github.com/example/ltpaint/internal/render"
	"github.com/example/ltpaint/internal/sketch"
	"github.com/example/ltpaint/internal/theme"
)

// Swapped out in tests.
var (
	readClipboardText = clipboard.ReadText
	writeClipboardPNG = clipboard.WritePNG
)

// AppState holds the paint session shown in the window.
type AppState struct {
	Machine      *input.Machine
	Theme        *theme.Theme
	Faces        *render.Faces
	CanvasWidth  int
	CanvasHeight int
	ExportScale  float64
	ExportDir    string
	ExportName   string
	ThinWidth    float64
	ThickWidth   float64
	Zoom         float64 // Initial window zoom

	onExport func(path string)
	onCopy   func(data []byte)
	onClose  func()
	closeMu  sync.Mutex
	closed   bool

	updateCh chan struct{}

	live      *render.Canvas
	liveScale float64
	layout    layout
	inside    bool
	quit      bool

	toolbar   []*CacheButton
	shortcuts []*CacheButton
	hover     *CacheButton
	actions   map[string]func()
	keys      map[KeyShortcut]string

	message      string
	messageUntil time.Time
}

// Option configures an AppState.
type Option func(*AppState)

// WithMachine sets the input machine the window drives.
func WithMachine(m *input.Machine) Option { return func(a *AppState) { a.Machine = m } }

// WithTheme sets the colours used for the window and paper.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithFaces sets the font used for sticker glyphs.
func WithFaces(f *render.Faces) Option { return func(a *AppState) { a.Faces = f } }

// WithCanvasSize sets the logical canvas dimensions.
func WithCanvasSize(w, h int) Option {
	return func(a *AppState) {
		if w > 0 && h > 0 {
			a.CanvasWidth, a.CanvasHeight = w, h
		}
	}
}

// WithExportScale sets the export multiplier.
func WithExportScale(s float64) Option {
	return func(a *AppState) {
		if s > 0 {
			a.ExportScale = s
		}
	}
}

// WithExport sets the directory and base name exports are written to.
func WithExport(dir, name string) Option {
	return func(a *AppState) {
		a.ExportDir = dir
		a.ExportName = name
	}
}

// WithPresets sets the widths offered by the thin and thick buttons.
func WithPresets(thin, thick float64) Option {
	return func(a *AppState) {
		if thin > 0 {
			a.ThinWidth = thin
		}
		if thick > 0 {
			a.ThickWidth = thick
		}
	}
}

// WithZoom sets the initial window zoom.
func WithZoom(z float64) Option {
	return func(a *AppState) {
		if z > 0 {
			a.Zoom = z
		}
	}
}

// WithExportListener registers fn to be called after a successful export.
func WithExportListener(fn func(path string)) Option { return func(a *AppState) { a.onExport = fn } }

// WithCopyListener registers fn to be called after the drawing is copied.
func WithCopyListener(fn func(data []byte)) Option { return func(a *AppState) { a.onCopy = fn } }

// WithOnClose registers fn to be called once when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState. The machine's listener is replaced so that every
// transition repaints the live canvas.
func New(opts ...Option) *AppState {
	a := &AppState{
		Theme:        theme.Default(),
		CanvasWidth:  render.DefaultCanvasSize,
		CanvasHeight: render.DefaultCanvasSize,
		ExportScale:  render.DefaultExportScale,
		ThinWidth:    input.ThinWidth,
		ThickWidth:   input.ThickWidth,
		Zoom:         2,
		updateCh:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Machine == nil {
		a.Machine = input.New(input.WithWidth(a.ThinWidth), input.WithPreviewInk(a.Theme.PreviewInk))
	}
	a.Machine.SetListener(func(input.Change) {
		a.redraw()
		a.requestPaint()
	})
	a.setLiveScale(math.Max(1, math.Ceil(a.Zoom)))
	return a
}

// Run opens the window and blocks until it is closed.
func (a *AppState) Run() { runDriver(a.Main) }

func (a *AppState) notifyClose() {
	a.closeMu.Lock()
	defer a.closeMu.Unlock()
	if a.closed {
		return
	}
	a.closed = true
	if a.onClose != nil {
		a.onClose()
	}
}

// requestPaint asks the window loop for a new frame without blocking.
func (a *AppState) requestPaint() {
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *AppState) setLiveScale(s float64) {
	if a.live != nil && s == a.liveScale {
		return
	}
	a.liveScale = s
	a.live = render.NewCanvas(int(float64(a.CanvasWidth)*s), int(float64(a.CanvasHeight)*s))
	a.live.SetFaces(a.Faces)
	a.redraw()
}

// redraw repaints the live canvas from the machine state.
func (a *AppState) redraw() {
	if a.live == nil {
		return
	}
	a.live.ResetScale()
	a.live.Scale(a.liveScale)
	render.Frame(a.live, a.Theme.Paper, a.Machine)
}

// Live returns the most recently rendered canvas image.
func (a *AppState) Live() *render.Canvas { return a.live }

func (a *AppState) exportOptions() render.ExportOptions {
	return render.ExportOptions{
		Width:      a.CanvasWidth,
		Height:     a.CanvasHeight,
		Scale:      a.ExportScale,
		Background: a.Theme.Paper,
		Faces:      a.Faces,
	}
}

// ExportPath is the file the next export is written to.
func (a *AppState) ExportPath() string {
	return filepath.Join(a.ExportDir, render.ExportName(a.ExportName))
}

// ExportDrawing writes the committed marks as a PNG and returns its path.
func (a *AppState) ExportDrawing() (string, error) {
	path := a.ExportPath()
	if err := render.ExportFile(path, a.Machine.Marks(), a.exportOptions()); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	a.status(fmt.Sprintf("exported %s", path))
	if a.onExport != nil {
		a.onExport(path)
	}
	return path, nil
}

// CopyDrawing places the exported PNG on the clipboard.
func (a *AppState) CopyDrawing() error {
	data, err := render.ExportPNG(a.Machine.Marks(), a.exportOptions())
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := writeClipboardPNG(data); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	a.status("drawing copied to clipboard")
	if a.onCopy != nil {
		a.onCopy(data)
	}
	return nil
}

// AddStickerFromClipboard adds the first word of the clipboard text to the
// sticker palette and arms it.
func (a *AppState) AddStickerFromClipboard() (string, error) {
	text, err := readClipboardText()
	if err != nil {
		return "", fmt.Errorf("add sticker: %w", err)
	}
	glyph := FirstGlyph(text)
	if glyph == "" {
		return "", fmt.Errorf("add sticker: clipboard has no text")
	}
	if a.Machine.AddGlyph(glyph) {
		a.buildToolbar()
	}
	a.Machine.SelectGlyph(glyph)
	a.status(fmt.Sprintf("sticker %s selected", glyph))
	return glyph, nil
}

// FirstGlyph returns the first whitespace separated word of text.
func FirstGlyph(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// SelectColor switches the stroke colour.
func (a *AppState) SelectColor(c color.RGBA) {
	a.Machine.SetColor(c)
	a.requestPaint()
}

func (a *AppState) status(msg string) {
	log.Print(msg)
	a.message = msg
	a.messageUntil = time.Now().Add(2 * time.Second)
	a.requestPaint()
}

// toCanvas maps window pixel coordinates onto the logical canvas.
func (a *AppState) toCanvas(x, y float32) sketch.Point {
	l := a.layout
	return sketch.Pt(
		(float64(x)-float64(l.canvas.Min.X))/l.zoom,
		(float64(y)-float64(l.canvas.Min.Y))/l.zoom,
	)
}
