package sketch

import (
	"image/color"
	"testing"
)

type call struct {
	op    string
	pts   []Point
	width float64
	glyph string
	size  float64
}

type recorder struct {
	calls []call
	scale float64
}

func (r *recorder) Size() (float64, float64) { return 256, 256 }

func (r *recorder) Scale(f float64) { r.scale = f }

func (r *recorder) FillRect(x, y, w, h float64, col color.Color) {
	r.calls = append(r.calls, call{op: "rect"})
}

func (r *recorder) StrokePolyline(pts []Point, width float64, col color.Color) {
	r.calls = append(r.calls, call{op: "stroke", pts: append([]Point(nil), pts...), width: width})
}

func (r *recorder) DrawGlyph(glyph string, at Point, size float64, col color.Color) {
	r.calls = append(r.calls, call{op: "glyph", pts: []Point{at}, glyph: glyph, size: size})
}

var black = color.RGBA{A: 0xff}

func TestPathExtendIsAppendOnly(t *testing.T) {
	p := NewPath(Pt(1, 1), 2, black)
	p.Extend(Pt(2, 2))
	p.Extend(Pt(3, 3))
	got := p.Points()
	want := []Point{{1, 1}, {2, 2}, {3, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	got[0] = Pt(99, 99)
	if p.Points()[0] != Pt(1, 1) {
		t.Fatal("Points must return a copy")
	}
}

func TestCommittedPathIgnoresExtend(t *testing.T) {
	d := NewDocument()
	p := NewPath(Pt(0, 0), 2, black)
	d.Commit(p)
	p.Extend(Pt(5, 5))
	if p.Len() != 1 {
		t.Fatalf("closed path grew to %d points", p.Len())
	}
	if !p.Closed() {
		t.Fatal("expected committed path to be closed")
	}
}

func TestNewPathClampsWidth(t *testing.T) {
	if w := NewPath(Pt(0, 0), 0, black).Width(); w != 1 {
		t.Fatalf("width = %v, want 1", w)
	}
}

func TestStickerDragThenFreeze(t *testing.T) {
	s := NewSticker("😎", Pt(10, 10))
	if !s.Dragging() {
		t.Fatal("new sticker should be dragging")
	}
	s.Reposition(Pt(20, 30))
	if s.Anchor() != Pt(20, 30) {
		t.Fatalf("anchor = %v", s.Anchor())
	}
	s.EndDrag()
	s.Reposition(Pt(0, 0))
	if s.Anchor() != Pt(20, 30) {
		t.Fatalf("frozen sticker moved to %v", s.Anchor())
	}
}

func TestMarkIDsAreUnique(t *testing.T) {
	a := NewPath(Pt(0, 0), 1, black)
	b := NewSticker("x", Pt(0, 0))
	if a.ID() == "" || b.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("bad ids %q %q", a.ID(), b.ID())
	}
}

func TestDocumentUndoRedoScenario(t *testing.T) {
	d := NewDocument()
	p1 := NewPath(Pt(0, 0), 2, black)
	p2 := NewPath(Pt(1, 1), 2, black)
	p3 := NewPath(Pt(2, 2), 2, black)
	d.Commit(p1)
	d.Commit(p2)
	d.Commit(p3)

	if !d.Undo() || !d.Undo() {
		t.Fatal("undo failed")
	}
	if d.Len() != 1 || d.RedoLen() != 2 {
		t.Fatalf("after two undos len=%d redo=%d", d.Len(), d.RedoLen())
	}
	if redo := d.RedoMarks(); redo[0] != Mark(p3) || redo[1] != Mark(p2) {
		t.Fatal("redo stack order wrong")
	}
	if !d.Redo() {
		t.Fatal("redo failed")
	}
	marks := d.Marks()
	if len(marks) != 2 || marks[0] != Mark(p1) || marks[1] != Mark(p2) {
		t.Fatalf("unexpected marks after redo: %v", marks)
	}
	if redo := d.RedoMarks(); len(redo) != 1 || redo[0] != Mark(p3) {
		t.Fatal("expected p3 left on redo stack")
	}

	p4 := NewPath(Pt(3, 3), 2, black)
	d.Commit(p4)
	d.DiscardRedo()
	if d.RedoLen() != 0 {
		t.Fatal("redo stack should be empty after a new commit")
	}
	if d.Len() != 3 {
		t.Fatalf("len = %d, want 3", d.Len())
	}
}

func TestDocumentPathThenStickerScenario(t *testing.T) {
	d := NewDocument()
	a := NewPath(Pt(0, 0), 2, black)
	a.Extend(Pt(5, 5))
	b := NewSticker("😁", Pt(10, 10))
	b.EndDrag()
	d.Commit(a)
	d.Commit(b)

	same := func(got []Mark, want ...Mark) bool {
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	}

	d.Undo()
	if !same(d.Marks(), a) || !same(d.RedoMarks(), b) {
		t.Fatalf("after first undo strokes=%v redo=%v", d.Marks(), d.RedoMarks())
	}
	d.Undo()
	if !same(d.Marks()) || !same(d.RedoMarks(), b, a) {
		t.Fatalf("after second undo strokes=%v redo=%v", d.Marks(), d.RedoMarks())
	}
	d.Redo()
	if !same(d.Marks(), a) || !same(d.RedoMarks(), b) {
		t.Fatalf("after redo strokes=%v redo=%v", d.Marks(), d.RedoMarks())
	}
	if got := a.Points(); len(got) != 2 || got[1] != Pt(5, 5) {
		t.Fatalf("path points changed: %v", got)
	}
}

func TestDocumentUndoRedoInverseOverMixedMarks(t *testing.T) {
	d := NewDocument()
	marks := []Mark{
		NewPath(Pt(0, 0), 2, black),
		NewSticker("😎", Pt(4, 4)),
		NewPath(Pt(8, 8), 10, black),
		NewSticker("😂", Pt(12, 12)),
	}
	for i, m := range marks {
		d.Commit(m)
		before := d.Marks()
		for depth := 1; depth <= i+1; depth++ {
			for n := 0; n < depth; n++ {
				d.Undo()
			}
			for n := 0; n < depth; n++ {
				d.Redo()
			}
			after := d.Marks()
			if len(after) != len(before) {
				t.Fatalf("commit %d depth %d: len %d, want %d", i, depth, len(after), len(before))
			}
			for j := range before {
				if after[j] != before[j] {
					t.Fatalf("commit %d depth %d: mark %d differs", i, depth, j)
				}
			}
			if d.RedoLen() != 0 {
				t.Fatalf("commit %d depth %d: redo left %d marks", i, depth, d.RedoLen())
			}
		}
	}
}

func TestDocumentUndoRedoEmpty(t *testing.T) {
	d := NewDocument()
	if d.Undo() {
		t.Fatal("undo on empty document reported success")
	}
	if d.Redo() {
		t.Fatal("redo on empty redo stack reported success")
	}
}

func TestDocumentClear(t *testing.T) {
	d := NewDocument()
	d.Commit(NewPath(Pt(0, 0), 2, black))
	d.Commit(NewSticker("😁", Pt(4, 4)))
	d.Undo()
	d.Clear()
	if d.Len() != 0 || d.RedoLen() != 0 {
		t.Fatalf("clear left len=%d redo=%d", d.Len(), d.RedoLen())
	}
	if d.Undo() || d.Redo() {
		t.Fatal("clear must not be undoable")
	}
}

func TestDocumentRenderOrder(t *testing.T) {
	d := NewDocument()
	d.Commit(NewPath(Pt(0, 0), 4, black))
	d.Commit(NewSticker("😂", Pt(8, 8)))
	var r recorder
	d.Render(&r)
	if len(r.calls) != 2 || r.calls[0].op != "stroke" || r.calls[1].op != "glyph" {
		t.Fatalf("unexpected calls %+v", r.calls)
	}
	if r.calls[0].width != 4 {
		t.Fatalf("stroke width = %v", r.calls[0].width)
	}
	if r.calls[1].size != StickerSize {
		t.Fatalf("glyph size = %v", r.calls[1].size)
	}
}

func TestToolPreviewDrawsCircle(t *testing.T) {
	p := NewToolPreview(Pt(50, 50), 10, black)
	var r recorder
	p.Render(&r)
	if len(r.calls) != 1 || r.calls[0].op != "stroke" || r.calls[0].width != 1 {
		t.Fatalf("unexpected calls %+v", r.calls)
	}
	for _, pt := range r.calls[0].pts {
		if d := pt.Dist(Pt(50, 50)); d < 4.99 || d > 5.01 {
			t.Fatalf("point %v is %v from centre, want 5", pt, d)
		}
	}
}

func TestStickerPreviewScalesGlyph(t *testing.T) {
	p := NewStickerPreview(Pt(0, 0), "😁", 2, black)
	var r recorder
	p.Render(&r)
	if len(r.calls) != 1 || r.calls[0].size != 2*StickerSize {
		t.Fatalf("unexpected calls %+v", r.calls)
	}
}
