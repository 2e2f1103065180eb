package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
export_dir = /tmp/drawings
export_name = "sketch"

[canvas]
width = 320
height = 200
export_scale = 2

[tools]
thin = 3
thick = 12
sticker_scale = 1.5

[stickers]
glyphs = 🎉 🐱  ⭐

[notify]
export = true
copy = false

[theme.my_custom_theme]
Paper = #111111
ButtonText: #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.ExportDir != "/tmp/drawings" {
		t.Errorf("Expected export_dir '/tmp/drawings', got '%s'", cfg.ExportDir)
	}
	if cfg.ExportName != "sketch" {
		t.Errorf("Expected quotes stripped from export_name, got '%s'", cfg.ExportName)
	}
	if cfg.Canvas.Width != 320 || cfg.Canvas.Height != 200 || cfg.Canvas.ExportScale != 2 {
		t.Errorf("Unexpected canvas %+v", cfg.Canvas)
	}
	if cfg.Tools.Thin != 3 || cfg.Tools.Thick != 12 || cfg.Tools.StickerScale != 1.5 {
		t.Errorf("Unexpected tools %+v", cfg.Tools)
	}
	if strings.Join(cfg.Stickers, ",") != "🎉,🐱,⭐" {
		t.Errorf("Unexpected stickers %q", cfg.Stickers)
	}
	if !cfg.Notify.Export {
		t.Error("Expected notify.export to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Paper.R != 0x11 || th.Paper.G != 0x11 || th.Paper.B != 0x11 {
		t.Errorf("Unexpected Paper color: %+v", th.Paper)
	}
	if th.ButtonText.R != 0xff {
		t.Errorf("Unexpected ButtonText color: %+v", th.ButtonText)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Canvas.Width != 256 || cfg.Canvas.Height != 256 || cfg.Canvas.ExportScale != 4 {
		t.Errorf("Unexpected canvas defaults %+v", cfg.Canvas)
	}
	if cfg.Tools.Thin != 2 || cfg.Tools.Thick != 10 {
		t.Errorf("Unexpected tool defaults %+v", cfg.Tools)
	}
	if len(cfg.Stickers) != 3 {
		t.Errorf("Unexpected sticker defaults %q", cfg.Stickers)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad bool":  "[notify]\nexport = maybe\n",
		"bad width": "[canvas]\nwidth = -1\n",
		"bad scale": "[canvas]\nexport_scale = x\n",
		"bad thick": "[tools]\nthick = 0\n",
		"bad theme": "[theme.x]\nPaper = #12\n",
	}
	for name, input := range cases {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		} else if !strings.Contains(err.Error(), "line 2") {
			t.Errorf("%s: error %q should carry the line number", name, err)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
export_dir = /home/user/drawings

[canvas]
width = 512
height = 384
export_scale = 3

[tools]
thin = 1
thick = 8
glyph_font = /usr/share/fonts/emoji.ttf

[stickers]
glyphs = a b c

[notify]
export = true
copy = true

[theme.custom]
Name = custom
Background = #000000
Paper = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.ExportDir != cfg2.ExportDir {
		t.Errorf("ExportDir mismatch: %q vs %q", cfg.ExportDir, cfg2.ExportDir)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}
	if cfg.Tools != cfg2.Tools {
		t.Errorf("Tools mismatch: %+v vs %+v", cfg.Tools, cfg2.Tools)
	}
	if strings.Join(cfg.Stickers, " ") != strings.Join(cfg2.Stickers, " ") {
		t.Errorf("Stickers mismatch: %q vs %q", cfg.Stickers, cfg2.Stickers)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverridePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(path, []byte("theme = dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader("v1.0.0", path)
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("GetConfigPath = %q, want %q", got, path)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
}

func TestLoaderDevModeLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	if err := os.WriteFile(filepath.Join(dir, ".ltpaintrc"), []byte("export_name = local\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewLoader("dev", "").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ExportName != "local" {
		t.Errorf("ExportName = %q", cfg.ExportName)
	}
	cfg, err = NewLoader("v1.0.0", "").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ExportName != "" {
		t.Errorf("release builds must ignore the local rc file, got %q", cfg.ExportName)
	}
}
