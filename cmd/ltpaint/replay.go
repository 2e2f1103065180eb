package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/example/ltpaint/internal/clipboard"
	"github.com/example/ltpaint/internal/render"
)

var writeClipboardPNG = clipboard.WritePNG

// replayCmd runs an event script through a fresh machine and exports the
// committed marks.
type replayCmd struct {
	*root
	fs     *flag.FlagSet
	script string
	output string
	dir    string
	copy   bool
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	c := &replayCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.script, "script", "", "event script to replay ('-' reads stdin)")
	fs.StringVar(&c.output, "output", "", "export file name, .png is appended when missing")
	fs.StringVar(&c.dir, "dir", "", "directory to export into (default from config)")
	fs.BoolVar(&c.copy, "copy", false, "also copy the exported PNG to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.script == "" || fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *replayCmd) Run() error {
	in := os.Stdin
	if c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	events, err := parseScript(in)
	if err != nil {
		return fmt.Errorf("%s: %w", c.script, err)
	}
	m := newMachine(c.root)
	for _, ev := range events {
		ev.apply(m)
	}

	opts, err := exportOptions(c.root)
	if err != nil {
		return err
	}
	cfg := c.cfg()
	name := c.output
	if name == "" {
		name = cfg.ExportName
	}
	dir := c.dir
	if dir == "" {
		dir = cfg.ExportDir
	}
	path := filepath.Join(dir, render.ExportName(name))
	if err := render.ExportFile(path, m.Marks(), opts); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	log.Printf("exported %d marks to %s", len(m.Marks()), path)
	c.notifyExport(path)

	if c.copy {
		data, err := render.ExportPNG(m.Marks(), opts)
		if err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		if err := writeClipboardPNG(data); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		c.notifyCopy(filepath.Base(path), data)
	}
	return nil
}
