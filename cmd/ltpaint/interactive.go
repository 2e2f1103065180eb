package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/example/ltpaint/internal/input"
	"github.com/example/ltpaint/internal/render"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// interactiveCmd drives a machine from typed events.
type interactiveCmd struct {
	r      *root
	fs     *flag.FlagSet
	execs  commandList
	dir    string
	m      *input.Machine
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	prompt bool
}

func newInteractiveCmd(r *root) *interactiveCmd {
	return &interactiveCmd{
		r:      r,
		m:      newMachine(r),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		prompt: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	i := newInteractiveCmd(r)
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	i.fs = fs
	fs.Usage = usageFunc(i)
	fs.Var(&i.execs, "e", "execute a command in immediate mode (may be specified multiple times)")
	fs.StringVar(&i.dir, "dir", r.cfg().ExportDir, "directory exports are written to")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: i}
	}
	return i, nil
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func (i *interactiveCmd) Program() string {
	return i.r.Program()
}

func (i *interactiveCmd) Run() error {
	if len(i.execs) > 0 {
		for _, line := range i.execs {
			done, err := i.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	if i.prompt {
		fmt.Fprintln(i.stdout, "Enter commands (type 'exit' to quit)")
	}
	scanner := bufio.NewScanner(i.stdin)
	for {
		if i.prompt {
			fmt.Fprint(i.stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}
		done, err := i.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(i.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// executeLine runs one command. done reports that the session should end.
func (i *interactiveCmd) executeLine(line string) (done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	args := strings.Fields(line)
	switch strings.ToLower(args[0]) {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprint(i.stdout, (&UsageError{of: i}).Error())
		return false, nil
	case "list":
		i.list()
		return false, nil
	case "state":
		i.state()
		return false, nil
	case "export":
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		return false, i.export(name)
	}
	ev, err := parseEvent(line, 0)
	if err != nil {
		return false, err
	}
	ev.apply(i.m)
	return false, nil
}

func (i *interactiveCmd) list() {
	marks := i.m.Marks()
	if len(marks) == 0 {
		fmt.Fprintln(i.stdout, "no marks")
		return
	}
	for idx, mk := range marks {
		fmt.Fprintf(i.stdout, "%3d: %s\n", idx, describeMark(mk))
	}
	if n := i.m.Document().RedoLen(); n > 0 {
		fmt.Fprintf(i.stdout, "%d mark(s) can be redone\n", n)
	}
}

func (i *interactiveCmd) state() {
	m := i.m
	fmt.Fprintf(i.stdout, "state: %s\n", m.State())
	fmt.Fprintf(i.stdout, "pen: %gpx %s\n", m.Width(), render.ColorName(m.Color()))
	if g := m.Glyph(); g != "" {
		fmt.Fprintf(i.stdout, "sticker: %s\n", g)
	}
	fmt.Fprintf(i.stdout, "palette: %s\n", strings.Join(m.Glyphs(), " "))
	if open := m.Open(); open != nil {
		fmt.Fprintf(i.stdout, "open: %s\n", describeMark(open))
	}
}

func (i *interactiveCmd) export(name string) error {
	opts, err := exportOptions(i.r)
	if err != nil {
		return err
	}
	if name == "" {
		name = i.r.cfg().ExportName
	}
	path := filepath.Join(i.dir, render.ExportName(name))
	if err := render.ExportFile(path, i.m.Marks(), opts); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	fmt.Fprintf(i.stdout, "exported %s\n", path)
	i.r.notifyExport(path)
	return nil
}
