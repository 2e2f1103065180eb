package render

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// NamedColor pairs a palette colour with its display name.
type NamedColor struct {
	Name  string
	Color color.RGBA
}

// Presets are the stroke colours offered in the toolbar.
var Presets = []NamedColor{
	{"black", colornames.Black},
	{"red", colornames.Red},
	{"green", colornames.Green},
	{"blue", colornames.Blue},
}

// ParseColor accepts an SVG colour name or a #RGB, #RRGGBB or #RRGGBBAA hex
// value. Hex alpha is straight and the result is premultiplied.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	n := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

// ColorName returns the preset or SVG name for c, falling back to hex.
func ColorName(c color.RGBA) string {
	for _, p := range Presets {
		if p.Color == c {
			return p.Name
		}
	}
	names := make([]string, 0, 4)
	for name, v := range colornames.Map {
		if v == c {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		sort.Strings(names)
		return names[0]
	}
	return Hex(c)
}

// Hex formats c as #RRGGBB, appending alpha when it is not opaque. The
// channels are written unpremultiplied so the result parses back to c.
func Hex(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
