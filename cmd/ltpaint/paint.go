package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/example/ltpaint/internal/appstate"
	"github.com/example/ltpaint/internal/input"
	"github.com/example/ltpaint/internal/render"
)

// paintCmd opens the drawing window.
type paintCmd struct {
	*root
	fs        *flag.FlagSet
	width     float64
	colorSpec string
	dir       string
	name      string
	zoom      float64
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	cfg := r.cfg()
	fs := flag.NewFlagSet("paint", flag.ContinueOnError)
	p := &paintCmd{root: r, fs: fs}
	fs.Usage = usageFunc(p)
	fs.Float64Var(&p.width, "width", cfg.Tools.Thin, "initial pen width in pixels")
	fs.StringVar(&p.colorSpec, "color", "black", "initial pen color (name or #RRGGBB)")
	fs.StringVar(&p.dir, "output", cfg.ExportDir, "directory exports are written to")
	fs.StringVar(&p.name, "name", cfg.ExportName, "export file name")
	fs.Float64Var(&p.zoom, "zoom", 2, "initial window zoom")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	if p.width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %g", p.width)
	}
	return p, nil
}

func (p *paintCmd) Run() error {
	col, err := render.ParseColor(p.colorSpec)
	if err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}
	cfg := p.cfg()
	th := p.theme()
	m := input.New(
		input.WithWidth(p.width),
		input.WithColor(col),
		input.WithGlyphs(cfg.Stickers),
		input.WithStickerScale(cfg.Tools.StickerScale),
		input.WithPreviewInk(th.PreviewInk),
	)
	opts := []appstate.Option{
		appstate.WithMachine(m),
		appstate.WithTheme(th),
		appstate.WithCanvasSize(cfg.Canvas.Width, cfg.Canvas.Height),
		appstate.WithExportScale(cfg.Canvas.ExportScale),
		appstate.WithExport(p.dir, p.name),
		appstate.WithPresets(cfg.Tools.Thin, cfg.Tools.Thick),
		appstate.WithZoom(p.zoom),
		appstate.WithExportListener(p.notifyExport),
		appstate.WithCopyListener(func(data []byte) { p.notifyCopy("drawing", data) }),
		appstate.WithOnClose(func() { log.Printf("window closed with %d marks", len(m.Marks())) }),
	}
	if cfg.Tools.GlyphFont != "" {
		faces, err := render.LoadFaces(cfg.Tools.GlyphFont)
		if err != nil {
			return fmt.Errorf("load glyph font: %w", err)
		}
		opts = append(opts, appstate.WithFaces(faces))
	}
	appstate.New(opts...).Run()
	return nil
}
