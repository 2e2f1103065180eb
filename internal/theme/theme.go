package theme

import (
	"image/color"
)

// Theme defines the colours of the paint window and of the drawing paper.
type Theme struct {
	Name string

	// Window chrome
	Background color.RGBA // Behind the toolbar and canvas
	Foreground color.RGBA // Status text

	// Toolbar
	ToolbarBackground      color.RGBA
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA // Selected width, glyph or colour
	ButtonText             color.RGBA
	ButtonBorder           color.RGBA

	// Canvas
	Paper       color.RGBA // Drawing background, also used for exports
	PaperBorder color.RGBA
	PreviewInk  color.RGBA // Tool and sticker previews
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{220, 220, 220, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		ToolbarBackground:      color.RGBA{220, 220, 220, 255},
		ButtonBackground:       color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:  color.RGBA{180, 180, 180, 255},
		ButtonBackgroundActive: color.RGBA{150, 150, 150, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonBorder:           color.RGBA{0, 0, 0, 255},
		Paper:                  color.RGBA{255, 255, 255, 255},
		PaperBorder:            color.RGBA{128, 128, 128, 255},
		PreviewInk:             color.RGBA{0, 0, 0, 255},
	}
}

// Clone returns a copy of t.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}
