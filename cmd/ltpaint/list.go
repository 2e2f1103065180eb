package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/image/colornames"

	"github.com/example/ltpaint/internal/input"
	"github.com/example/ltpaint/internal/render"
)

type stickersCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func parseStickersCmd(args []string, r *root) (*stickersCmd, error) {
	fs := flag.NewFlagSet("stickers", flag.ContinueOnError)
	cmd := &stickersCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *stickersCmd) Run() error {
	glyphs := newMachine(c.root).Glyphs()
	if len(glyphs) == 0 {
		fmt.Fprintln(c.out, "no stickers configured")
		return nil
	}
	fmt.Fprintln(c.out, "sticker palette (keys 3-9 select in the window):")
	for idx, g := range glyphs {
		k := " "
		if idx < 7 {
			k = string(rune('3' + idx))
		}
		fmt.Fprintf(c.out, "  %s %s\n", k, g)
	}
	return nil
}

func (c *stickersCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type colorsCmd struct {
	*root
	fs  *flag.FlagSet
	all bool
	out io.Writer
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	cmd := &colorsCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(cmd)
	fs.BoolVar(&cmd.all, "all", false, "also list every named color accepted by -color")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	fmt.Fprintln(c.out, "preset colors (* marks the default color):")
	for idx, entry := range render.Presets {
		marker := " "
		if entry.Color == input.DefaultColor {
			marker = "*"
		}
		c.swatch(marker, idx, entry.Name, entry.Color.R, entry.Color.G, entry.Color.B)
	}
	if !c.all {
		return nil
	}
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(c.out, "named colors:")
	for idx, name := range names {
		col := colornames.Map[name]
		c.swatch(" ", idx, name, col.R, col.G, col.B)
	}
	return nil
}

func (c *colorsCmd) swatch(marker string, idx int, name string, r, g, b uint8) {
	hex := fmt.Sprintf("#%02X%02X%02X", r, g, b)
	block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
	fmt.Fprintf(c.out, "%s %3d: %-20s %s %s\n", marker, idx, name, hex, block)
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
