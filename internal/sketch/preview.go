package sketch

import (
	"image/color"
	"math"
)

// Preview is an ephemeral hint drawn over the document while no mark is in
// progress. Previews are never recorded in a Document.
type Preview interface {
	Render(s Surface)
	isPreview()
}

// ToolPreview outlines the brush footprint at the pointer.
type ToolPreview struct {
	at    Point
	width float64
	ink   color.RGBA
}

// NewToolPreview returns an outline of diameter width centred on at.
func NewToolPreview(at Point, width float64, ink color.RGBA) *ToolPreview {
	return &ToolPreview{at: at, width: width, ink: ink}
}

func (t *ToolPreview) isPreview() {}

func (t *ToolPreview) MoveTo(pt Point) { t.at = pt }

func (t *ToolPreview) Position() Point { return t.at }

func (t *ToolPreview) Width() float64 { return t.width }

// Render draws a 1px circle whose diameter matches the stroke width.
func (t *ToolPreview) Render(s Surface) {
	s.StrokePolyline(circle(t.at, t.width/2), 1, t.ink)
}

// StickerPreview shows the selected glyph under the pointer before it is
// placed.
type StickerPreview struct {
	at    Point
	glyph string
	scale float64
	ink   color.RGBA
}

// NewStickerPreview returns a preview of glyph at at, drawn at
// StickerSize*scale.
func NewStickerPreview(at Point, glyph string, scale float64, ink color.RGBA) *StickerPreview {
	if scale <= 0 {
		scale = 1
	}
	return &StickerPreview{at: at, glyph: glyph, scale: scale, ink: ink}
}

func (p *StickerPreview) isPreview() {}

func (p *StickerPreview) MoveTo(pt Point) { p.at = pt }

func (p *StickerPreview) Position() Point { return p.at }

func (p *StickerPreview) Glyph() string { return p.glyph }

func (p *StickerPreview) Render(s Surface) {
	if p.glyph == "" {
		return
	}
	s.DrawGlyph(p.glyph, p.at, StickerSize*p.scale, p.ink)
}

// circle approximates a circle with a closed polyline. Larger radii get
// more segments so the outline stays smooth.
func circle(c Point, r float64) []Point {
	if r <= 0 {
		return []Point{c}
	}
	n := int(math.Ceil(2 * math.Pi * r / 2))
	if n < 16 {
		n = 16
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
	}
	return pts
}
