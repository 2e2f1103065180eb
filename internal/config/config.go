package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/ltpaint/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
}

// Canvas describes the live drawing area and the export multiplier.
type Canvas struct {
	Width       int
	Height      int
	ExportScale float64
}

// Tools holds the brush presets and sticker settings.
type Tools struct {
	Thin         float64
	Thick        float64
	StickerScale float64
	GlyphFont    string // Optional TTF/OTF used for stickers
}

// Config holds the application configuration.
type Config struct {
	Theme      string
	ExportDir  string
	ExportName string
	Canvas     Canvas
	Tools      Tools
	Stickers   []string
	Notify     Notify
	Themes     map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Empty allows fallback to Env/Default
		Canvas: Canvas{
			Width:       256,
			Height:      256,
			ExportScale: 4,
		},
		Tools: Tools{
			Thin:         2,
			Thick:        10,
			StickerScale: 1,
		},
		Stickers: []string{"😁", "😂", "😎"},
		Themes:   make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.ExportDir != "" {
		fmt.Fprintf(&sb, "export_dir = %s\n", c.ExportDir)
	}
	if c.ExportName != "" {
		fmt.Fprintf(&sb, "export_name = %s\n", c.ExportName)
	}
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "export_scale = %g\n", c.Canvas.ExportScale)
	sb.WriteString("\n")

	sb.WriteString("[tools]\n")
	fmt.Fprintf(&sb, "thin = %g\n", c.Tools.Thin)
	fmt.Fprintf(&sb, "thick = %g\n", c.Tools.Thick)
	fmt.Fprintf(&sb, "sticker_scale = %g\n", c.Tools.StickerScale)
	if c.Tools.GlyphFont != "" {
		fmt.Fprintf(&sb, "glyph_font = %s\n", c.Tools.GlyphFont)
	}
	sb.WriteString("\n")

	sb.WriteString("[stickers]\n")
	fmt.Fprintf(&sb, "glyphs = %s\n", strings.Join(c.Stickers, " "))
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Value))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
