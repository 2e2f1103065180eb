package sketch

import (
	"image/color"

	"github.com/google/uuid"
)

// StickerSize is the pixel size glyphs are drawn at on an unscaled surface.
const StickerSize = 30

// GlyphInk is the fill used for sticker glyphs. Colour emoji ignore it.
var GlyphInk = color.RGBA{A: 0xff}

// Mark is one undoable unit of a drawing. The concrete type is either *Path
// or *Sticker and is fixed at construction.
type Mark interface {
	ID() string
	Render(s Surface)
	isMark()
}

// Path is a freehand stroke. Points are only ever appended and the stroke
// width and colour never change.
type Path struct {
	id     string
	points []Point
	width  float64
	color  color.RGBA
	closed bool
}

// NewPath starts a stroke at start. Non-positive widths are raised to 1.
func NewPath(start Point, width float64, col color.RGBA) *Path {
	if width <= 0 {
		width = 1
	}
	return &Path{
		id:     uuid.NewString(),
		points: []Point{start},
		width:  width,
		color:  col,
	}
}

func (p *Path) isMark() {}

// ID returns the identifier assigned at construction.
func (p *Path) ID() string { return p.id }

// Extend appends pt. It has no effect once the path has been committed.
func (p *Path) Extend(pt Point) {
	if p.closed {
		return
	}
	p.points = append(p.points, pt)
}

// Points returns a copy of the recorded points in order.
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Len reports the number of recorded points.
func (p *Path) Len() int { return len(p.points) }

func (p *Path) Width() float64 { return p.width }

func (p *Path) Color() color.RGBA { return p.color }

// Closed reports whether the path has been committed and is now immutable.
func (p *Path) Closed() bool { return p.closed }

func (p *Path) close() { p.closed = true }

// Render strokes the path through every point in order.
func (p *Path) Render(s Surface) {
	if len(p.points) == 0 {
		return
	}
	s.StrokePolyline(p.points, p.width, p.color)
}

// Sticker is a single glyph stamped onto the canvas. It follows the pointer
// while dragging and is frozen by EndDrag.
type Sticker struct {
	id       string
	glyph    string
	anchor   Point
	dragging bool
}

// NewSticker creates a sticker at at in the dragging state.
func NewSticker(glyph string, at Point) *Sticker {
	return &Sticker{
		id:       uuid.NewString(),
		glyph:    glyph,
		anchor:   at,
		dragging: true,
	}
}

func (s *Sticker) isMark() {}

func (s *Sticker) ID() string { return s.id }

func (s *Sticker) Glyph() string { return s.glyph }

// Anchor is the centre of the glyph.
func (s *Sticker) Anchor() Point { return s.anchor }

func (s *Sticker) Dragging() bool { return s.dragging }

// Reposition moves the anchor while the sticker is being dragged.
func (s *Sticker) Reposition(pt Point) {
	if !s.dragging {
		return
	}
	s.anchor = pt
}

// EndDrag freezes the anchor.
func (s *Sticker) EndDrag() { s.dragging = false }

func (s *Sticker) Render(surf Surface) {
	if s.glyph == "" {
		return
	}
	surf.DrawGlyph(s.glyph, s.anchor, StickerSize, GlyphInk)
}
