package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	input := `
Name: test
// comment
Paper: #102030
PreviewInk: red
Unknown: #000000
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "test" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Paper != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("Paper = %v", th.Paper)
	}
	if th.PreviewInk != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("PreviewInk = %v", th.PreviewInk)
	}
	if th.Background != Default().Background {
		t.Errorf("unset field should keep its default, got %v", th.Background)
	}
}

func TestParseBadColorReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("Name: x\nPaper: #12\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error %q should mention line 2", err)
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	names := Names()
	if len(names) < 3 {
		t.Fatalf("expected bundled themes, got %v", names)
	}
	l := &Loader{}
	for _, n := range names {
		th, err := l.Load(n)
		if err != nil {
			t.Fatalf("Load(%q): %v", n, err)
		}
		if th.Name != n {
			t.Errorf("Load(%q) returned theme named %q", n, th.Name)
		}
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: mine\nPaper: #000000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir}
	th, err := l.Load("mine")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Paper != (color.RGBA{A: 0xff}) {
		t.Errorf("Paper = %v", th.Paper)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatal("expected error for a missing theme")
	}
}

func TestFieldsCoverEveryColor(t *testing.T) {
	fields := Fields(Default())
	if len(fields) != 11 {
		t.Fatalf("got %d fields", len(fields))
	}
	if fields[0].Name != "Background" {
		t.Fatalf("first field = %q", fields[0].Name)
	}
}

func TestParseColorPremultipliesAlpha(t *testing.T) {
	c, err := ParseColor("#FF000080")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 0x80, A: 0x80}) {
		t.Fatalf("ParseColor = %v, want premultiplied half red", c)
	}
	if got := Hex(c); got != "#FF000080" {
		t.Fatalf("Hex = %q, want #FF000080", got)
	}
}
