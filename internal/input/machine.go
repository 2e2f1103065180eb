// Package input turns pointer and tool events into edits of a sketch
// document. A Machine is not safe for concurrent use; callers deliver events
// from a single goroutine.
package input

import (
	"image/color"
	"strings"

	"github.com/example/ltpaint/internal/sketch"
)

// State is the interaction mode of a Machine.
type State int

const (
	Idle State = iota
	Drawing
	PlacingSticker
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case PlacingSticker:
		return "placing-sticker"
	}
	return "unknown"
}

// Change tells a listener what kind of repaint a transition needs.
type Change int

const (
	// ContentChanged means the document or the open mark changed.
	ContentChanged Change = iota
	// PreviewChanged means only the preview changed.
	PreviewChanged
)

const (
	ThinWidth  = 2
	ThickWidth = 10
)

// DefaultGlyphs is the initial sticker palette.
var DefaultGlyphs = []string{"😁", "😂", "😎"}

// DefaultColor is the initial stroke colour.
var DefaultColor = color.RGBA{A: 0xff}

type Machine struct {
	doc     *sketch.Document
	state   State
	path    *sketch.Path
	sticker *sketch.Sticker

	width        float64
	color        color.RGBA
	glyph        string
	glyphs       []string
	stickerScale float64
	ink          color.RGBA

	tool  *sketch.ToolPreview
	stamp *sketch.StickerPreview

	listener func(Change)
}

type Option func(*Machine)

// WithDocument makes the machine edit d instead of a fresh document.
func WithDocument(d *sketch.Document) Option {
	return func(m *Machine) {
		if d != nil {
			m.doc = d
		}
	}
}

func WithWidth(w float64) Option {
	return func(m *Machine) {
		if w > 0 {
			m.width = w
		}
	}
}

func WithColor(c color.RGBA) Option {
	return func(m *Machine) { m.color = c }
}

// WithGlyphs replaces the sticker palette. Empty and duplicate entries are
// dropped.
func WithGlyphs(glyphs []string) Option {
	return func(m *Machine) {
		m.glyphs = nil
		for _, g := range glyphs {
			m.addGlyph(g)
		}
	}
}

// WithStickerScale sets the multiplier applied to sticker previews.
func WithStickerScale(s float64) Option {
	return func(m *Machine) {
		if s > 0 {
			m.stickerScale = s
		}
	}
}

// WithPreviewInk sets the colour previews are drawn in.
func WithPreviewInk(c color.RGBA) Option {
	return func(m *Machine) { m.ink = c }
}

// WithListener registers fn to be called after every transition.
func WithListener(fn func(Change)) Option {
	return func(m *Machine) { m.listener = fn }
}

// New returns an idle machine with a thin black brush.
func New(opts ...Option) *Machine {
	m := &Machine{
		doc:          sketch.NewDocument(),
		width:        ThinWidth,
		color:        DefaultColor,
		stickerScale: 1,
		ink:          color.RGBA{A: 0xff},
	}
	for _, g := range DefaultGlyphs {
		m.addGlyph(g)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetListener replaces the change listener.
func (m *Machine) SetListener(fn func(Change)) {
	m.listener = fn
}

func (m *Machine) notify(c Change) {
	if m.listener != nil {
		m.listener(c)
	}
}

// PointerDown starts a stroke, or places the selected sticker. It is
// ignored unless the machine is idle.
func (m *Machine) PointerDown(pt sketch.Point) {
	if m.state != Idle {
		return
	}
	m.tool = nil
	m.stamp = nil
	if m.glyph != "" {
		st := sketch.NewSticker(m.glyph, pt)
		m.doc.Commit(st)
		m.doc.DiscardRedo()
		m.glyph = ""
		m.sticker = st
		m.state = PlacingSticker
	} else {
		m.path = sketch.NewPath(pt, m.width, m.color)
		m.state = Drawing
	}
	m.notify(ContentChanged)
}

// PointerMove extends the open stroke, drags the placed sticker, or moves
// the preview when idle.
func (m *Machine) PointerMove(pt sketch.Point) {
	switch m.state {
	case Drawing:
		m.path.Extend(pt)
		m.notify(ContentChanged)
	case PlacingSticker:
		m.sticker.Reposition(pt)
		m.notify(ContentChanged)
	default:
		if m.glyph != "" {
			if m.stamp == nil {
				m.stamp = sketch.NewStickerPreview(pt, m.glyph, m.stickerScale, m.ink)
			} else {
				m.stamp.MoveTo(pt)
			}
		} else if m.tool == nil {
			m.tool = sketch.NewToolPreview(pt, m.width, m.ink)
		} else {
			m.tool.MoveTo(pt)
		}
		m.notify(PreviewChanged)
	}
}

// PointerUp commits the open stroke or freezes the dragged sticker.
func (m *Machine) PointerUp() {
	switch m.state {
	case Drawing:
		m.commitPath()
	case PlacingSticker:
		m.endDrag()
	default:
		return
	}
	m.state = Idle
	m.notify(ContentChanged)
}

// PointerLeave finishes whatever is in progress and hides the previews.
func (m *Machine) PointerLeave() {
	change := PreviewChanged
	if m.path != nil {
		m.commitPath()
		change = ContentChanged
	}
	m.endDrag()
	m.tool = nil
	m.stamp = nil
	m.state = Idle
	m.notify(change)
}

// SelectWidth switches to the brush with stroke width w. A pending sticker
// selection is dropped.
func (m *Machine) SelectWidth(w float64) {
	if w <= 0 {
		return
	}
	m.abandon()
	m.width = w
	m.glyph = ""
	m.tool = nil
	m.stamp = nil
	m.notify(PreviewChanged)
}

// SelectGlyph arms the next pointer-down to place glyph.
func (m *Machine) SelectGlyph(glyph string) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return
	}
	m.abandon()
	m.glyph = glyph
	m.tool = nil
	m.stamp = nil
	m.notify(PreviewChanged)
}

// SetColor changes the colour of strokes started from now on.
func (m *Machine) SetColor(c color.RGBA) {
	m.color = c
}

// AddGlyph appends glyph to the sticker palette. It reports false for empty
// or already present glyphs.
func (m *Machine) AddGlyph(glyph string) bool {
	return m.addGlyph(glyph)
}

func (m *Machine) addGlyph(glyph string) bool {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return false
	}
	for _, g := range m.glyphs {
		if g == glyph {
			return false
		}
	}
	m.glyphs = append(m.glyphs, glyph)
	return true
}

// Undo removes the newest committed mark. An open stroke is discarded
// first and consumes the undo.
func (m *Machine) Undo() {
	if m.state == Drawing {
		m.path = nil
		m.state = Idle
		m.notify(ContentChanged)
		return
	}
	m.endDrag()
	m.state = Idle
	m.doc.Undo()
	m.notify(ContentChanged)
}

// Redo restores the most recently undone mark. Like Undo, an open stroke
// is discarded instead.
func (m *Machine) Redo() {
	if m.state == Drawing {
		m.path = nil
		m.state = Idle
		m.notify(ContentChanged)
		return
	}
	m.endDrag()
	m.state = Idle
	m.doc.Redo()
	m.notify(ContentChanged)
}

// Clear empties the document and its redo history.
func (m *Machine) Clear() {
	m.abandon()
	m.doc.Clear()
	m.notify(ContentChanged)
}

// abandon drops an open stroke and ends a sticker drag, returning to Idle.
func (m *Machine) abandon() {
	m.path = nil
	m.endDrag()
	m.state = Idle
}

func (m *Machine) commitPath() {
	m.doc.Commit(m.path)
	m.doc.DiscardRedo()
	m.path = nil
}

func (m *Machine) endDrag() {
	if m.sticker != nil {
		m.sticker.EndDrag()
		m.sticker = nil
	}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Document() *sketch.Document { return m.doc }

func (m *Machine) Marks() []sketch.Mark { return m.doc.Marks() }

// Open returns the stroke being drawn, or nil.
func (m *Machine) Open() sketch.Mark {
	if m.path == nil {
		return nil
	}
	return m.path
}

// Dragged returns the sticker following the pointer, or nil. It is already
// part of the document.
func (m *Machine) Dragged() *sketch.Sticker { return m.sticker }

// Preview returns the active preview. It is nil whenever the machine is not
// idle.
func (m *Machine) Preview() sketch.Preview {
	if m.state != Idle {
		return nil
	}
	if m.stamp != nil {
		return m.stamp
	}
	if m.tool != nil {
		return m.tool
	}
	return nil
}

func (m *Machine) Width() float64 { return m.width }

func (m *Machine) Color() color.RGBA { return m.color }

// Glyph returns the armed sticker glyph, or "" when the brush is active.
func (m *Machine) Glyph() string { return m.glyph }

func (m *Machine) Glyphs() []string {
	out := make([]string, len(m.glyphs))
	copy(out, m.glyphs)
	return out
}
