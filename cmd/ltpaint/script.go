package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/example/ltpaint/internal/input"
	"github.com/example/ltpaint/internal/render"
	"github.com/example/ltpaint/internal/sketch"
)

// event is one parsed line of an event script.
type event struct {
	line  int
	verb  string
	at    sketch.Point
	width float64
	color color.RGBA
	glyph string
}

// parseEvent parses a single script line. A positive line number prefixes
// any error.
func parseEvent(text string, line int) (event, error) {
	errorf := func(format string, args ...any) error {
		if line > 0 {
			return fmt.Errorf("line %d: "+format, append([]any{line}, args...)...)
		}
		return fmt.Errorf(format, args...)
	}
	fields := strings.Fields(text)
	ev := event{line: line}
	if len(fields) == 0 {
		return ev, errorf("empty event")
	}
	ev.verb = strings.ToLower(fields[0])
	args := fields[1:]
	want := func(n int) error {
		if len(args) != n {
			return errorf("%s takes %d argument(s), got %d", ev.verb, n, len(args))
		}
		return nil
	}
	switch ev.verb {
	case "down", "move":
		if err := want(2); err != nil {
			return ev, err
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return ev, errorf("invalid x %q: %w", args[0], err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return ev, errorf("invalid y %q: %w", args[1], err)
		}
		ev.at = sketch.Pt(x, y)
	case "up", "leave", "undo", "redo", "clear":
		if err := want(0); err != nil {
			return ev, err
		}
	case "width":
		if err := want(1); err != nil {
			return ev, err
		}
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil || w <= 0 {
			return ev, errorf("invalid width %q", args[0])
		}
		ev.width = w
	case "color":
		if err := want(1); err != nil {
			return ev, err
		}
		c, err := render.ParseColor(args[0])
		if err != nil {
			return ev, errorf("%w", err)
		}
		ev.color = c
	case "glyph", "sticker":
		if err := want(1); err != nil {
			return ev, err
		}
		ev.glyph = args[0]
	default:
		return ev, errorf("unknown event %q", fields[0])
	}
	return ev, nil
}

// parseScript reads events one per line. Blank lines and lines starting
// with '#' are skipped.
func parseScript(r io.Reader) ([]event, error) {
	var events []event
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := parseEvent(text, line)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return events, nil
}

// apply feeds ev into m.
func (ev event) apply(m *input.Machine) {
	switch ev.verb {
	case "down":
		m.PointerDown(ev.at)
	case "move":
		m.PointerMove(ev.at)
	case "up":
		m.PointerUp()
	case "leave":
		m.PointerLeave()
	case "width":
		m.SelectWidth(ev.width)
	case "color":
		m.SetColor(ev.color)
	case "glyph":
		m.SelectGlyph(ev.glyph)
	case "sticker":
		m.AddGlyph(ev.glyph)
	case "undo":
		m.Undo()
	case "redo":
		m.Redo()
	case "clear":
		m.Clear()
	}
}

// newMachine builds an input machine from the configured tools.
func newMachine(r *root) *input.Machine {
	cfg := r.cfg()
	return input.New(
		input.WithWidth(cfg.Tools.Thin),
		input.WithGlyphs(cfg.Stickers),
		input.WithStickerScale(cfg.Tools.StickerScale),
		input.WithPreviewInk(r.theme().PreviewInk),
	)
}

// exportOptions describes the configured export surface.
func exportOptions(r *root) (render.ExportOptions, error) {
	cfg := r.cfg()
	opts := render.ExportOptions{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Scale:      cfg.Canvas.ExportScale,
		Background: r.theme().Paper,
	}
	if cfg.Tools.GlyphFont != "" {
		faces, err := render.LoadFaces(cfg.Tools.GlyphFont)
		if err != nil {
			return opts, fmt.Errorf("load glyph font: %w", err)
		}
		opts.Faces = faces
	}
	return opts, nil
}

// describeMark summarises m for listings.
func describeMark(m sketch.Mark) string {
	switch v := m.(type) {
	case *sketch.Path:
		return fmt.Sprintf("%s path %d points %gpx %s", v.ID(), v.Len(), v.Width(), render.ColorName(v.Color()))
	case *sketch.Sticker:
		a := v.Anchor()
		return fmt.Sprintf("%s sticker %s at %g,%g", v.ID(), v.Glyph(), a.X, a.Y)
	}
	return fmt.Sprintf("%s mark", m.ID())
}
