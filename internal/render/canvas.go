// Package render rasterises sketch marks onto RGBA images for the live
// window and for PNG export.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/example/ltpaint/internal/sketch"
)

// Canvas is a sketch.Surface backed by an *image.RGBA. Coordinates passed to
// its drawing methods are multiplied by the current scale.
type Canvas struct {
	img   *image.RGBA
	scale float64
	faces *Faces
}

var _ sketch.Surface = (*Canvas)(nil)

// NewCanvas allocates a transparent canvas of w by h pixels.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: 1,
	}
}

// NewCanvasFor wraps an existing image.
func NewCanvasFor(img *image.RGBA) *Canvas {
	return &Canvas{img: img, scale: 1}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// SetFaces selects the font used for glyphs. A nil value restores the
// built-in font.
func (c *Canvas) SetFaces(f *Faces) { c.faces = f }

func (c *Canvas) fonts() *Faces {
	if c.faces == nil {
		return DefaultFaces()
	}
	return c.faces
}

// Size returns the canvas dimensions in unscaled units.
func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()) / c.scale, float64(b.Dy()) / c.scale
}

func (c *Canvas) Scale(factor float64) {
	if factor <= 0 {
		return
	}
	c.scale *= factor
}

// ResetScale restores the identity transform.
func (c *Canvas) ResetScale() { c.scale = 1 }

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	s := c.scale
	r := image.Rect(
		int(math.Floor(x*s)), int(math.Floor(y*s)),
		int(math.Ceil((x+w)*s)), int(math.Ceil((y+h)*s)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// StrokePolyline builds a coverage mask for the whole polyline and
// composites it once, so overlapping segments of a translucent stroke do not
// darken each other. Every segment is a capsule with the same winding, which
// gives round caps and joins.
func (c *Canvas) StrokePolyline(pts []sketch.Point, width float64, col color.Color) {
	if len(pts) == 0 {
		return
	}
	s := c.scale
	r := width * s / 2
	if r < 0.5 {
		r = 0.5
	}
	scaled := make([]sketch.Point, len(pts))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range pts {
		q := p.Mul(s)
		scaled[i] = q
		minX, minY = math.Min(minX, q.X), math.Min(minY, q.Y)
		maxX, maxY = math.Max(maxX, q.X), math.Max(maxY, q.Y)
	}
	pad := r + 1
	box := image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)), int(math.Ceil(maxY+pad)),
	)
	if !box.Overlaps(c.img.Bounds()) {
		return
	}
	off := sketch.Pt(-float64(box.Min.X), -float64(box.Min.Y))
	for i := range scaled {
		scaled[i] = scaled[i].Add(off)
	}
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	if len(scaled) == 1 {
		capsule(z, scaled[0], scaled[0], r)
	}
	for i := 1; i < len(scaled); i++ {
		capsule(z, scaled[i-1], scaled[i], r)
	}
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.img, box, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

// capsule adds the outline of every point within r of segment ab. A zero
// length segment is a circle.
func capsule(z *vector.Rasterizer, a, b sketch.Point, r float64) {
	dir := 0.0
	if a != b {
		dir = math.Atan2(b.Y-a.Y, b.X-a.X)
	}
	up := dir + math.Pi/2
	start := sketch.Pt(a.X+r*math.Cos(up), a.Y+r*math.Sin(up))
	z.MoveTo(float32(start.X), float32(start.Y))
	z.LineTo(float32(b.X+r*math.Cos(up)), float32(b.Y+r*math.Sin(up)))
	arc(z, b, r, up, -math.Pi)
	z.LineTo(float32(a.X-r*math.Cos(up)), float32(a.Y-r*math.Sin(up)))
	arc(z, a, r, up-math.Pi, -math.Pi)
	z.ClosePath()
}

// arc continues the current path around centre from angle from by sweep
// radians, one cubic per quarter turn at most.
func arc(z *vector.Rasterizer, centre sketch.Point, r, from, sweep float64) {
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	at := func(t float64) (float64, float64) {
		return centre.X + r*math.Cos(t), centre.Y + r*math.Sin(t)
	}
	for i := 0; i < n; i++ {
		a0 := from + float64(i)*step
		a1 := a0 + step
		x0, y0 := at(a0)
		x3, y3 := at(a1)
		x1, y1 := x0-k*r*math.Sin(a0), y0+k*r*math.Cos(a0)
		x2, y2 := x3+k*r*math.Sin(a1), y3-k*r*math.Cos(a1)
		z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
	}
}

// DrawGlyph centres glyph on at. Glyphs missing from the font draw as the
// font's notdef box.
func (c *Canvas) DrawGlyph(glyph string, at sketch.Point, size float64, col color.Color) {
	if glyph == "" {
		return
	}
	face, err := c.fonts().Face(size * c.scale)
	if err != nil {
		return
	}
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: face}
	adv := d.MeasureString(glyph)
	m := face.Metrics()
	cx := fixed.Int26_6(math.Round(at.X * c.scale * 64))
	cy := fixed.Int26_6(math.Round(at.Y * c.scale * 64))
	d.Dot = fixed.Point26_6{
		X: cx - adv/2,
		Y: cy + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(glyph)
}
