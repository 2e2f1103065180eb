package sketch

import "image/color"

// Surface is the drawing sink marks and previews render onto. All
// coordinates are in canvas space; an implementation applies its own scale
// before touching pixels.
type Surface interface {
	// Size reports the drawable area in canvas units.
	Size() (w, h float64)
	// Scale multiplies the current transform by factor.
	Scale(factor float64)
	FillRect(x, y, w, h float64, col color.Color)
	// StrokePolyline strokes pts with round caps and joins. A single point
	// produces a dot of diameter width.
	StrokePolyline(pts []Point, width float64, col color.Color)
	// DrawGlyph draws text centred on at, with size as the font pixel size.
	DrawGlyph(glyph string, at Point, size float64, col color.Color)
}
