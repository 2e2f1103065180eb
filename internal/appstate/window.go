package appstate

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"math"
	"strings"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/ltpaint/internal/render"
)

var runDriver = driver.Main

const (
	buttonHeight = 24
	glyphHeight  = 32
	swatchSize   = 22
	bottomHeight = 22
	margin       = 8
	minToolbar   = 4*swatchSize + 8
)

type layout struct {
	width, height int
	toolbar       int
	canvas        image.Rectangle
	zoom          float64
}

// computeLayout centres a canvas of cw by ch in the space right of the
// toolbar. Zooms above 1 are floored to whole numbers to keep pixels square.
func computeLayout(winW, winH, toolbarW, cw, ch int) layout {
	l := layout{width: winW, height: winH, toolbar: toolbarW}
	availW := winW - toolbarW - 2*margin
	availH := winH - bottomHeight - 2*margin
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}
	zoom := math.Min(float64(availW)/float64(cw), float64(availH)/float64(ch))
	if zoom >= 1 {
		zoom = math.Floor(zoom)
	}
	w := int(float64(cw) * zoom)
	h := int(float64(ch) * zoom)
	x0 := toolbarW + margin + (availW-w)/2
	y0 := margin + (availH-h)/2
	l.canvas = image.Rect(x0, y0, x0+w, y0+h)
	l.zoom = zoom
	return l
}

func (a *AppState) toolbarWidth() int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	max := minToolbar
	for _, lbl := range []string{"LT Paint", "1:Thin", "2:Thick", "+Sticker", "Undo", "Redo", "Clear", "Export", "Copy"} {
		if w := d.MeasureString(lbl).Ceil() + 8; w > max {
			max = w
		}
	}
	return max
}

func (a *AppState) resize(winW, winH int) {
	a.layout = computeLayout(winW, winH, a.toolbarWidth(), a.CanvasWidth, a.CanvasHeight)
	a.setLiveScale(math.Max(1, math.Ceil(a.layout.zoom)))
	a.placeToolbar()
	a.placeShortcuts()
}

// buildToolbar recreates the toolbar buttons, for example after a sticker
// is added.
func (a *AppState) buildToolbar() {
	m := a.Machine
	th := a.Theme
	widthButton := func(label string, w float64) *CacheButton {
		return &CacheButton{Button: &ActionButton{label: label, theme: th,
			onActivate: func() { m.SelectWidth(w) },
			selected:   func() bool { return m.Glyph() == "" && m.Width() == w },
		}}
	}
	buttons := []*CacheButton{
		widthButton("1:Thin", a.ThinWidth),
		widthButton("2:Thick", a.ThickWidth),
	}
	for _, g := range m.Glyphs() {
		glyph := g
		buttons = append(buttons, &CacheButton{Button: &GlyphButton{glyph: glyph, theme: th, faces: a.Faces,
			onActivate: func() { m.SelectGlyph(glyph) },
			selected:   func() bool { return m.Glyph() == glyph },
		}})
	}
	buttons = append(buttons, &CacheButton{Button: &ActionButton{label: "+Sticker", theme: th, onActivate: a.trigger("sticker")}})
	for _, p := range render.Presets {
		col := p.Color
		buttons = append(buttons, &CacheButton{Button: &SwatchButton{color: col, theme: th,
			onActivate: func() { a.SelectColor(col) },
			selected:   func() bool { return m.Color() == col },
		}})
	}
	for _, name := range []string{"Undo", "Redo", "Clear", "Export", "Copy"} {
		buttons = append(buttons, &CacheButton{Button: &ActionButton{label: name, theme: th, onActivate: a.trigger(strings.ToLower(name))}})
	}
	a.toolbar = buttons
	a.hover = nil
	a.placeToolbar()
}

// placeToolbar stacks the toolbar buttons. Swatches share rows.
func (a *AppState) placeToolbar() {
	tw := a.layout.toolbar
	if tw == 0 {
		tw = a.toolbarWidth()
	}
	y := margin + 16
	x := 4
	inSwatches := false
	for _, cb := range a.toolbar {
		if _, ok := cb.Button.(*SwatchButton); ok {
			if !inSwatches {
				inSwatches = true
				x = 4
				y += 4
			}
			if x+swatchSize > tw {
				x = 4
				y += swatchSize
			}
			cb.SetRect(image.Rect(x, y, x+swatchSize, y+swatchSize))
			x += swatchSize
			continue
		}
		if inSwatches {
			inSwatches = false
			y += swatchSize + 4
		}
		h := buttonHeight
		if _, ok := cb.Button.(*GlyphButton); ok {
			h = glyphHeight
		}
		cb.SetRect(image.Rect(0, y, tw, y+h))
		y += h
	}
}

func (a *AppState) placeShortcuts() {
	if a.shortcuts == nil {
		for _, sc := range []struct{ label, action string }{
			{"^Z:undo", "undo"},
			{"^Y:redo", "redo"},
			{"^L:clear", "clear"},
			{"^S:export", "export"},
			{"^C:copy", "copy"},
			{"^V:sticker", "sticker"},
			{"Q:quit", "quit"},
		} {
			a.shortcuts = append(a.shortcuts, &CacheButton{Button: &ActionButton{label: sc.label, theme: a.Theme, onActivate: a.trigger(sc.action)}})
		}
	}
	meas := &font.Drawer{Face: basicfont.Face7x13}
	x := a.layout.toolbar + 4
	y := a.layout.height - bottomHeight + 1
	for _, cb := range a.shortcuts {
		lbl := cb.Button.(*ActionButton).label
		w := meas.MeasureString(lbl).Ceil() + 8
		cb.SetRect(image.Rect(x, y, x+w, y+bottomHeight-2))
		x += w + 4
	}
}

// trigger returns a func that runs the named action.
func (a *AppState) trigger(name string) func() {
	return func() {
		if fn, ok := a.actions[name]; ok {
			fn()
		}
		a.requestPaint()
	}
}

func (a *AppState) register(name string, keys KeyboardShortcuts, fn func()) {
	a.actions[name] = fn
	if keys != nil {
		for _, sc := range keys.KeyboardShortcuts() {
			a.keys[sc] = name
		}
	}
}

func (a *AppState) configureActions() {
	a.actions = map[string]func(){}
	a.keys = map[KeyShortcut]string{}
	m := a.Machine
	ctrl := key.ModControl
	a.register("undo", shortcutList{{Rune: 'z', Modifiers: ctrl}, {Code: key.CodeZ, Modifiers: ctrl}}, m.Undo)
	a.register("redo", shortcutList{
		{Rune: 'y', Modifiers: ctrl}, {Code: key.CodeY, Modifiers: ctrl},
		{Rune: 'z', Modifiers: ctrl | key.ModShift}, {Code: key.CodeZ, Modifiers: ctrl | key.ModShift},
	}, m.Redo)
	a.register("clear", shortcutList{{Rune: 'l', Modifiers: ctrl}, {Code: key.CodeL, Modifiers: ctrl}}, m.Clear)
	a.register("export", shortcutList{{Rune: 's', Modifiers: ctrl}, {Code: key.CodeS, Modifiers: ctrl}}, func() {
		if _, err := a.ExportDrawing(); err != nil {
			a.status(err.Error())
		}
	})
	a.register("copy", shortcutList{{Rune: 'c', Modifiers: ctrl}, {Code: key.CodeC, Modifiers: ctrl}}, func() {
		if err := a.CopyDrawing(); err != nil {
			a.status(err.Error())
		}
	})
	a.register("sticker", shortcutList{{Rune: 'v', Modifiers: ctrl}, {Code: key.CodeV, Modifiers: ctrl}}, func() {
		if _, err := a.AddStickerFromClipboard(); err != nil {
			a.status(err.Error())
		}
	})
	a.register("thin", shortcutList{{Rune: '1'}}, func() { m.SelectWidth(a.ThinWidth) })
	a.register("thick", shortcutList{{Rune: '2'}}, func() { m.SelectWidth(a.ThickWidth) })
	a.register("quit", shortcutList{{Rune: 'q'}, {Code: key.CodeEscape}}, func() { a.quit = true })
}

// handleKey runs the action bound to e. Digits from 3 pick stickers in
// palette order.
func (a *AppState) handleKey(e key.Event) {
	if e.Direction != key.DirPress {
		return
	}
	mods := e.Modifiers &^ key.ModShift
	if e.Modifiers&key.ModShift != 0 && e.Modifiers&key.ModControl != 0 {
		mods = e.Modifiers
	}
	for _, ks := range []KeyShortcut{
		{Rune: unicode.ToLower(e.Rune), Modifiers: mods},
		{Code: e.Code, Modifiers: mods},
	} {
		if ks.Rune <= 0 && ks.Code == key.CodeUnknown {
			continue
		}
		if action, ok := a.keys[ks]; ok {
			a.trigger(action)()
			return
		}
	}
	if mods == 0 && e.Rune >= '3' && e.Rune <= '9' {
		glyphs := a.Machine.Glyphs()
		if idx := int(e.Rune - '3'); idx < len(glyphs) {
			a.Machine.SelectGlyph(glyphs[idx])
		}
	}
}

// handleMouse sends toolbar clicks to buttons and canvas events to the
// machine. Moving off the canvas counts as the pointer leaving it.
func (a *AppState) handleMouse(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	if p.In(a.layout.canvas) {
		a.setHover(nil)
		a.inside = true
		pt := a.toCanvas(e.X, e.Y)
		switch {
		case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
			a.Machine.PointerDown(pt)
		case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
			a.Machine.PointerUp()
		case e.Direction == mouse.DirNone:
			a.Machine.PointerMove(pt)
		}
		return
	}
	if a.inside {
		a.inside = false
		a.Machine.PointerLeave()
	}
	var hit *CacheButton
	for _, group := range [][]*CacheButton{a.toolbar, a.shortcuts} {
		for _, cb := range group {
			if p.In(cb.Rect()) {
				hit = cb
			}
		}
	}
	a.setHover(hit)
	if hit != nil && e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
		hit.Activate()
		a.requestPaint()
	}
}

func (a *AppState) setHover(cb *CacheButton) {
	if a.hover != cb {
		a.hover = cb
		a.requestPaint()
	}
}

// leave is used when the window loses focus mid-gesture.
func (a *AppState) leave() {
	if a.inside {
		a.inside = false
		a.Machine.PointerLeave()
	}
}

// Main runs the window event loop on s.
func (a *AppState) Main(s screen.Screen) {
	a.configureActions()
	tw := a.toolbarWidth()
	width := tw + int(float64(a.CanvasWidth)*a.Zoom) + 2*margin
	height := int(float64(a.CanvasHeight)*a.Zoom) + bottomHeight + 2*margin
	a.layout = computeLayout(width, height, tw, a.CanvasWidth, a.CanvasHeight)
	a.buildToolbar()
	a.resize(width, height)

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "LT Paint"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				a.leave()
			}
		case size.Event:
			a.resize(e.WidthPx, e.HeightPx)
			w.Send(paint.Event{})
		case paint.Event:
			a.drawFrame(s, w)
		case mouse.Event:
			a.handleMouse(e)
		case key.Event:
			a.handleKey(e)
			if a.quit {
				return
			}
		case error:
			log.Print(e)
		}
	}
}

func (a *AppState) drawFrame(s screen.Screen, w screen.Window) {
	l := a.layout
	b, err := s.NewBuffer(image.Point{l.width, l.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()
	th := a.Theme

	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(0, 0, l.toolbar, l.height), &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)

	title := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13, Dot: fixed.P(4, margin+12)}
	title.DrawString("LT Paint")

	for _, cb := range a.toolbar {
		cb.Draw(dst, cb.state(cb == a.hover))
	}

	live := a.live.Image()
	xdraw.ApproxBiLinear.Scale(dst, l.canvas, live, live.Bounds(), draw.Src, nil)
	strokeRect(dst, l.canvas.Inset(-1), th.PaperBorder)

	for _, cb := range a.shortcuts {
		cb.Draw(dst, cb.state(cb == a.hover))
	}

	status := a.statusLine()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13}
	sw := d.MeasureString(status).Ceil()
	d.Dot = fixed.P(l.width-sw-6, l.height-6)
	d.DrawString(status)

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// statusLine shows a recent message, or the current tool and mark count.
func (a *AppState) statusLine() string {
	if a.message != "" && time.Now().Before(a.messageUntil) {
		return a.message
	}
	m := a.Machine
	tool := fmt.Sprintf("%gpx %s", m.Width(), render.ColorName(m.Color()))
	if g := m.Glyph(); g != "" {
		tool = "sticker " + g
	}
	return fmt.Sprintf("%s  %d marks  %s", tool, m.Document().Len(), m.State())
}
