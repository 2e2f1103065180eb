package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/ltpaint/internal/render"
	"github.com/example/ltpaint/internal/sketch"
	"github.com/example/ltpaint/internal/theme"
)

// KeyShortcut describes a keyboard shortcut.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StateSelected
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// Selectable buttons reflect the current tool selection.
type Selectable interface {
	Selected() bool
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

func (cb *CacheButton) Activate() { cb.Button.Activate() }

// Selected reports the wrapped button's selection, if it has one.
func (cb *CacheButton) Selected() bool {
	if s, ok := cb.Button.(Selectable); ok {
		return s.Selected()
	}
	return false
}

// state picks the drawing state, letting selection win over hover.
func (cb *CacheButton) state(hover bool) ButtonState {
	switch {
	case cb.Selected():
		return StateSelected
	case hover:
		return StateHover
	}
	return StateDefault
}

func buttonFill(th *theme.Theme, state ButtonState) color.RGBA {
	switch state {
	case StateHover:
		return th.ButtonBackgroundHover
	case StateSelected:
		return th.ButtonBackgroundActive
	}
	return th.ButtonBackground
}

// ActionButton is a labelled toolbar button.
type ActionButton struct {
	label      string
	theme      *theme.Theme
	rect       image.Rectangle
	onActivate func()
	selected   func() bool
}

func (ab *ActionButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, ab.rect, &image.Uniform{buttonFill(ab.theme, state)}, image.Point{}, draw.Src)
	strokeRect(dst, ab.rect, ab.theme.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(ab.theme.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(ab.rect.Min.X+4, ab.rect.Min.Y+16)}
	d.DrawString(ab.label)
}

func (ab *ActionButton) Rect() image.Rectangle { return ab.rect }

func (ab *ActionButton) SetRect(r image.Rectangle) { ab.rect = r }

func (ab *ActionButton) Activate() {
	if ab.onActivate != nil {
		ab.onActivate()
	}
}

func (ab *ActionButton) Selected() bool {
	return ab.selected != nil && ab.selected()
}

// GlyphButton arms a sticker glyph.
type GlyphButton struct {
	glyph      string
	theme      *theme.Theme
	faces      *render.Faces
	rect       image.Rectangle
	onActivate func()
	selected   func() bool
}

func (gb *GlyphButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, gb.rect, &image.Uniform{buttonFill(gb.theme, state)}, image.Point{}, draw.Src)
	strokeRect(dst, gb.rect, gb.theme.ButtonBorder)
	c := render.NewCanvasFor(dst)
	c.SetFaces(gb.faces)
	mid := sketch.Pt(float64(gb.rect.Min.X+gb.rect.Max.X)/2, float64(gb.rect.Min.Y+gb.rect.Max.Y)/2)
	c.DrawGlyph(gb.glyph, mid, float64(gb.rect.Dy())-6, gb.theme.ButtonText)
}

func (gb *GlyphButton) Rect() image.Rectangle { return gb.rect }

func (gb *GlyphButton) SetRect(r image.Rectangle) { gb.rect = r }

func (gb *GlyphButton) Activate() {
	if gb.onActivate != nil {
		gb.onActivate()
	}
}

func (gb *GlyphButton) Selected() bool {
	return gb.selected != nil && gb.selected()
}

// SwatchButton selects a stroke colour.
type SwatchButton struct {
	color      color.RGBA
	theme      *theme.Theme
	rect       image.Rectangle
	onActivate func()
	selected   func() bool
}

func (sb *SwatchButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, sb.rect, &image.Uniform{buttonFill(sb.theme, state)}, image.Point{}, draw.Src)
	inner := sb.rect.Inset(3)
	draw.Draw(dst, inner, &image.Uniform{sb.color}, image.Point{}, draw.Src)
	border := sb.theme.ButtonBorder
	if state == StateSelected {
		strokeRect(dst, sb.rect, border)
		strokeRect(dst, sb.rect.Inset(1), border)
		return
	}
	strokeRect(dst, inner, border)
}

func (sb *SwatchButton) Rect() image.Rectangle { return sb.rect }

func (sb *SwatchButton) SetRect(r image.Rectangle) { sb.rect = r }

func (sb *SwatchButton) Activate() {
	if sb.onActivate != nil {
		sb.onActivate()
	}
}

func (sb *SwatchButton) Selected() bool {
	return sb.selected != nil && sb.selected()
}

// strokeRect outlines r with a 1px border.
func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	u := &image.Uniform{col}
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
