package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/ltpaint/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil

			if themeName, ok := strings.CutPrefix(currentSection, "theme."); ok {
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			continue
		}

		// Key = Value or Key: Value
		var key, value string
		var ok bool
		if key, value, ok = strings.Cut(line, "="); !ok {
			if key, value, ok = strings.Cut(line, ":"); !ok {
				continue
			}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case currentTheme != nil:
			err = theme.Set(currentTheme, key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		case currentSection == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case currentSection == "tools":
			err = setToolsField(&cfg.Tools, key, value)
		case currentSection == "stickers":
			err = setStickersField(cfg, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		}
		if err != nil {
			section := currentSection
			if section == "" {
				section = "root"
			}
			return nil, fmt.Errorf("line %d: error in section [%s]: %w", lineNo, section, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "export_dir":
		cfg.ExportDir = value
	case "export_name":
		cfg.ExportName = value
	}
	return nil
}

func setCanvasField(c *Canvas, key, value string) error {
	switch strings.ToLower(key) {
	case "width":
		n, err := positiveInt(key, value)
		if err != nil {
			return err
		}
		c.Width = n
	case "height":
		n, err := positiveInt(key, value)
		if err != nil {
			return err
		}
		c.Height = n
	case "export_scale":
		f, err := positiveFloat(key, value)
		if err != nil {
			return err
		}
		c.ExportScale = f
	}
	return nil
}

func setToolsField(t *Tools, key, value string) error {
	var dst *float64
	switch strings.ToLower(key) {
	case "thin":
		dst = &t.Thin
	case "thick":
		dst = &t.Thick
	case "sticker_scale":
		dst = &t.StickerScale
	case "glyph_font":
		t.GlyphFont = value
		return nil
	default:
		return nil
	}
	f, err := positiveFloat(key, value)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func setStickersField(cfg *Config, key, value string) error {
	if !strings.EqualFold(key, "glyphs") {
		return nil
	}
	cfg.Stickers = strings.Fields(value)
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "export":
		n.Export = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func positiveInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func positiveFloat(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %g", key, f)
	}
	return f, nil
}
