package input

import (
	"image/color"
	"testing"

	"github.com/example/ltpaint/internal/sketch"
)

func newRecorded(opts ...Option) (*Machine, *[]Change) {
	var changes []Change
	opts = append(opts, WithListener(func(c Change) { changes = append(changes, c) }))
	return New(opts...), &changes
}

func TestStrokeLifecycle(t *testing.T) {
	m, changes := newRecorded()
	m.PointerDown(sketch.Pt(1, 1))
	if m.State() != Drawing {
		t.Fatalf("state = %v, want drawing", m.State())
	}
	if m.Open() == nil {
		t.Fatal("expected open path")
	}
	m.PointerMove(sketch.Pt(2, 2))
	m.PointerMove(sketch.Pt(3, 3))
	if m.Document().Len() != 0 {
		t.Fatal("open path must not be committed before pointer-up")
	}
	m.PointerUp()
	if m.State() != Idle || m.Open() != nil {
		t.Fatalf("state = %v open = %v after pointer-up", m.State(), m.Open())
	}
	marks := m.Marks()
	if len(marks) != 1 {
		t.Fatalf("got %d marks, want 1", len(marks))
	}
	p, ok := marks[0].(*sketch.Path)
	if !ok {
		t.Fatalf("committed %T, want *sketch.Path", marks[0])
	}
	if p.Len() != 3 || p.Width() != ThinWidth {
		t.Fatalf("path len=%d width=%v", p.Len(), p.Width())
	}
	for i, c := range *changes {
		if c != ContentChanged {
			t.Fatalf("change %d = %v, want content", i, c)
		}
	}
	if len(*changes) != 4 {
		t.Fatalf("got %d changes, want 4", len(*changes))
	}
}

func TestPathUsesColorAtPointerDown(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	m := New()
	m.SetColor(red)
	m.PointerDown(sketch.Pt(0, 0))
	m.SetColor(DefaultColor)
	m.PointerUp()
	if got := m.Marks()[0].(*sketch.Path).Color(); got != red {
		t.Fatalf("color = %v, want %v", got, red)
	}
}

func TestStickerCommittedOnPointerDown(t *testing.T) {
	m := New()
	m.SelectGlyph("😁")
	m.PointerDown(sketch.Pt(10, 10))
	if m.Document().Len() != 1 {
		t.Fatalf("len = %d, want 1 immediately after pointer-down", m.Document().Len())
	}
	if m.State() != PlacingSticker {
		t.Fatalf("state = %v", m.State())
	}
	if m.Glyph() != "" {
		t.Fatal("glyph selection should be cleared after placement")
	}
	m.PointerMove(sketch.Pt(40, 50))
	st := m.Marks()[0].(*sketch.Sticker)
	if st.Anchor() != sketch.Pt(40, 50) {
		t.Fatalf("anchor = %v", st.Anchor())
	}
	m.PointerUp()
	if st.Dragging() || m.State() != Idle {
		t.Fatal("drag should end on pointer-up")
	}
	m.PointerMove(sketch.Pt(0, 0))
	if st.Anchor() != sketch.Pt(40, 50) {
		t.Fatal("sticker moved after drag ended")
	}
	if _, ok := m.Preview().(*sketch.ToolPreview); !ok {
		t.Fatalf("preview = %T, want tool preview after placement", m.Preview())
	}
}

func TestStickerPlacementDiscardsRedo(t *testing.T) {
	m := New()
	m.PointerDown(sketch.Pt(0, 0))
	m.PointerUp()
	m.Undo()
	m.SelectGlyph("😎")
	m.PointerDown(sketch.Pt(1, 1))
	if m.Document().RedoLen() != 0 {
		t.Fatal("placing a sticker should discard redo history")
	}
}

func TestUndoMidStrokeAbandonsOpenPath(t *testing.T) {
	m := New()
	m.PointerDown(sketch.Pt(0, 0))
	m.PointerUp()
	m.PointerDown(sketch.Pt(1, 1))
	m.PointerMove(sketch.Pt(2, 2))
	m.Undo()
	if m.State() != Idle || m.Open() != nil {
		t.Fatal("undo should abandon the open path")
	}
	if m.Document().Len() != 1 || m.Document().RedoLen() != 0 {
		t.Fatalf("len=%d redo=%d, want committed stroke untouched", m.Document().Len(), m.Document().RedoLen())
	}
	m.PointerMove(sketch.Pt(3, 3))
	m.PointerUp()
	if m.Document().Len() != 1 {
		t.Fatal("abandoned path must not be committed later")
	}
}

func TestRedoMidStrokeAbandonsOpenPath(t *testing.T) {
	m := New()
	m.PointerDown(sketch.Pt(0, 0))
	m.PointerUp()
	m.Undo()
	m.PointerDown(sketch.Pt(1, 1))
	m.Redo()
	if m.Document().Len() != 0 || m.Document().RedoLen() != 1 {
		t.Fatalf("len=%d redo=%d", m.Document().Len(), m.Document().RedoLen())
	}
	m.Redo()
	if m.Document().Len() != 1 {
		t.Fatal("redo from idle should restore the mark")
	}
}

func TestUndoWhilePlacingStickerEndsDrag(t *testing.T) {
	m := New()
	m.SelectGlyph("😂")
	m.PointerDown(sketch.Pt(5, 5))
	st := m.Dragged()
	m.Undo()
	if m.State() != Idle || m.Dragged() != nil || st.Dragging() {
		t.Fatal("undo should end the drag")
	}
	if m.Document().Len() != 0 || m.Document().RedoLen() != 1 {
		t.Fatal("undo should remove the placed sticker")
	}
}

func TestNewStrokeDiscardsRedo(t *testing.T) {
	m := New()
	for i := 0; i < 3; i++ {
		m.PointerDown(sketch.Pt(float64(i), 0))
		m.PointerUp()
	}
	m.Undo()
	m.Undo()
	m.PointerDown(sketch.Pt(9, 9))
	if m.Document().RedoLen() != 2 {
		t.Fatal("redo history should survive until the stroke is committed")
	}
	m.PointerUp()
	if m.Document().RedoLen() != 0 {
		t.Fatal("committing a stroke should discard redo history")
	}
	m.Redo()
	if m.Document().Len() != 2 {
		t.Fatalf("len = %d, want 2", m.Document().Len())
	}
}

func TestPointerLeaveCommitsOpenPath(t *testing.T) {
	m, changes := newRecorded()
	m.PointerDown(sketch.Pt(0, 0))
	m.PointerMove(sketch.Pt(4, 4))
	m.PointerLeave()
	if m.Document().Len() != 1 || m.State() != Idle {
		t.Fatal("pointer-leave should commit the open path")
	}
	if last := (*changes)[len(*changes)-1]; last != ContentChanged {
		t.Fatalf("last change = %v, want content", last)
	}
}

func TestPointerLeaveClearsPreviews(t *testing.T) {
	m, changes := newRecorded()
	m.PointerMove(sketch.Pt(4, 4))
	if m.Preview() == nil {
		t.Fatal("expected tool preview after idle move")
	}
	m.PointerLeave()
	if m.Preview() != nil {
		t.Fatal("pointer-leave should clear previews")
	}
	if last := (*changes)[len(*changes)-1]; last != PreviewChanged {
		t.Fatalf("last change = %v, want preview", last)
	}
	m.SelectGlyph("😁")
	m.PointerMove(sketch.Pt(1, 1))
	m.PointerDown(sketch.Pt(1, 1))
	st := m.Dragged()
	m.PointerLeave()
	if st.Dragging() || m.State() != Idle {
		t.Fatal("pointer-leave should end the sticker drag")
	}
}

func TestSelectionIsMutuallyExclusive(t *testing.T) {
	m := New()
	m.PointerMove(sketch.Pt(1, 1))
	if _, ok := m.Preview().(*sketch.ToolPreview); !ok {
		t.Fatalf("preview = %T, want tool preview", m.Preview())
	}
	m.SelectGlyph("😎")
	if m.Preview() != nil {
		t.Fatal("selecting a glyph should reset the preview")
	}
	m.PointerMove(sketch.Pt(2, 2))
	sp, ok := m.Preview().(*sketch.StickerPreview)
	if !ok || sp.Glyph() != "😎" {
		t.Fatalf("preview = %T, want sticker preview", m.Preview())
	}
	m.SelectWidth(ThickWidth)
	if m.Glyph() != "" {
		t.Fatal("selecting a width should clear the glyph")
	}
	m.PointerMove(sketch.Pt(3, 3))
	tp, ok := m.Preview().(*sketch.ToolPreview)
	if !ok || tp.Width() != ThickWidth {
		t.Fatalf("preview = %T, want thick tool preview", m.Preview())
	}
}

func TestSelectWidthMidStrokeAbandons(t *testing.T) {
	m := New()
	m.PointerDown(sketch.Pt(0, 0))
	m.PointerMove(sketch.Pt(1, 1))
	m.SelectWidth(ThickWidth)
	if m.State() != Idle || m.Document().Len() != 0 {
		t.Fatal("changing tool mid-stroke should drop the stroke")
	}
	if m.Width() != ThickWidth {
		t.Fatalf("width = %v", m.Width())
	}
}

func TestPreviewHiddenWhileMarkOpen(t *testing.T) {
	m := New()
	m.PointerMove(sketch.Pt(1, 1))
	m.PointerDown(sketch.Pt(1, 1))
	if m.Preview() != nil {
		t.Fatal("no preview may be active while drawing")
	}
	m.PointerUp()
	m.SelectGlyph("😁")
	m.PointerMove(sketch.Pt(2, 2))
	m.PointerDown(sketch.Pt(2, 2))
	if m.Preview() != nil {
		t.Fatal("no preview may be active while dragging a sticker")
	}
}

func TestPointerDownIgnoredWhenBusy(t *testing.T) {
	m := New()
	m.PointerDown(sketch.Pt(0, 0))
	open := m.Open()
	m.PointerDown(sketch.Pt(5, 5))
	if m.Open() != open {
		t.Fatal("second pointer-down should not replace the open path")
	}
}

func TestPointerUpWhenIdleIsSilent(t *testing.T) {
	m, changes := newRecorded()
	m.PointerUp()
	if len(*changes) != 0 {
		t.Fatalf("got %d changes for an idle pointer-up", len(*changes))
	}
}

func TestClearResetsEverything(t *testing.T) {
	m := New()
	m.PointerDown(sketch.Pt(0, 0))
	m.PointerUp()
	m.PointerDown(sketch.Pt(1, 1))
	m.PointerUp()
	m.Undo()
	m.PointerDown(sketch.Pt(2, 2))
	m.Clear()
	if m.State() != Idle || m.Open() != nil {
		t.Fatal("clear should discard the open mark")
	}
	if m.Document().Len() != 0 || m.Document().RedoLen() != 0 {
		t.Fatal("clear should empty both stacks")
	}
	m.Redo()
	if m.Document().Len() != 0 {
		t.Fatal("redo after clear must be a no-op")
	}
}

func TestAddGlyph(t *testing.T) {
	m := New(WithGlyphs([]string{"a", "b", "a", " "}))
	if got := m.Glyphs(); len(got) != 2 {
		t.Fatalf("glyphs = %v", got)
	}
	if !m.AddGlyph(" 🎉 ") {
		t.Fatal("expected new glyph to be added")
	}
	if m.AddGlyph("🎉") || m.AddGlyph("") {
		t.Fatal("duplicates and empty glyphs must be rejected")
	}
	if got := m.Glyphs(); got[len(got)-1] != "🎉" {
		t.Fatalf("glyphs = %v", got)
	}
}

func TestDefaults(t *testing.T) {
	m := New()
	if m.Width() != ThinWidth || m.Color() != DefaultColor {
		t.Fatalf("width=%v color=%v", m.Width(), m.Color())
	}
	if len(m.Glyphs()) != len(DefaultGlyphs) {
		t.Fatalf("glyphs = %v", m.Glyphs())
	}
	if m.State().String() != "idle" {
		t.Fatalf("state = %q", m.State().String())
	}
}
