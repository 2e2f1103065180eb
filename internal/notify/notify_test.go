package notify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/ltpaint/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func capture(n *Notifier) *[]sent {
	var out []sent
	n.send = func(title, body string, opts platform.Options) error {
		if opts.IconPath != "" {
			if _, err := os.Stat(opts.IconPath); err != nil {
				opts.IconPath = "missing:" + opts.IconPath
			}
		}
		out = append(out, sent{title, body, opts})
		return nil
	}
	return &out
}

func TestDisabledEventsAreSilent(t *testing.T) {
	n := New(DefaultPreferences())
	got := capture(n)
	n.Export("a.png")
	n.Copy("", nil)
	if len(*got) != 0 {
		t.Fatalf("sent %d notifications while disabled", len(*got))
	}
}

func TestExportUsesFileAsIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventExport, true)
	got := capture(n)
	n.Export(path)
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	s := (*got)[0]
	if s.title != "LT Paint" || !strings.Contains(s.body, "cat.png") {
		t.Fatalf("unexpected notification %+v", s)
	}
	if s.opts.IconPath != path {
		t.Fatalf("icon = %q, want %q", s.opts.IconPath, path)
	}
}

func TestCopyWritesTemporaryIcon(t *testing.T) {
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	got := capture(n)
	n.Copy("", []byte("png"))
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	s := (*got)[0]
	if s.body != "Copied drawing to clipboard" {
		t.Fatalf("body = %q", s.body)
	}
	if s.opts.IconPath == "" || strings.HasPrefix(s.opts.IconPath, "missing:") {
		t.Fatalf("icon should exist while sending, got %q", s.opts.IconPath)
	}
	if _, err := os.Stat(s.opts.IconPath); !os.IsNotExist(err) {
		t.Fatalf("temporary icon should be removed afterwards, stat err = %v", err)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("LTPAINT_NOTIFY_TITLE", "Doodles")
	t.Setenv("LTPAINT_NOTIFY_EXPORT_TEXT", "Wrote %s")
	prefs := LoadPreferences()
	if prefs.Title != "Doodles" {
		t.Fatalf("title = %q", prefs.Title)
	}
	if prefs.Events[EventExport].Template != "Wrote %s" {
		t.Fatalf("template = %q", prefs.Events[EventExport].Template)
	}
	if prefs.Events[EventCopy].Template == "" {
		t.Fatal("copy template should keep its default")
	}
}
