package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/ltpaint/internal/config"
	"github.com/example/ltpaint/internal/notify"
	"github.com/example/ltpaint/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	exportAlert bool
	copyAlert   bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		notifier:    r.notifier,
		config:      r.config,
		exportAlert: r.exportAlert,
		copyAlert:   r.copyAlert,
		themeName:   r.themeName,
		activeTheme: r.activeTheme,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("ltpaint", flag.ExitOnError),
		program:  "ltpaint",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.exportAlert, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting a drawing")
	r.fs.BoolVar(&r.copyAlert, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, high_contrast)")
	r.fs.Usage = usageFunc(r)
	return r
}

// resolveTheme picks the named theme from the config, then the theme
// loader, falling back to the default theme.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("LTPAINT_THEME")
	}
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	if r.config != nil {
		if t, ok := r.config.Themes[name]; ok {
			return t
		}
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventExport, r.exportAlert)
		r.notifier.Enable(notify.EventCopy, r.copyAlert)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "paint":
		cmd, err = parsePaintCmd(subArgs, r.subcommand("paint"))
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r.subcommand("replay"))
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r.subcommand("interactive"))
	case "stickers":
		cmd, err = parseStickersCmd(subArgs, r.subcommand("stickers"))
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r.subcommand("colors"))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand("config"))
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func (r *root) notifyExport(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Export(path)
}

func (r *root) notifyCopy(detail string, data []byte) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail, data)
}

// theme returns the resolved theme, or the default when Run has not
// resolved one.
func (r *root) theme() *theme.Theme {
	if r == nil || r.activeTheme == nil {
		return theme.Default()
	}
	return r.activeTheme
}

// cfg returns the loaded configuration, or the defaults.
func (r *root) cfg() *config.Config {
	if r == nil || r.config == nil {
		return config.New()
	}
	return r.config
}
