package sketch

// Document holds the committed marks of a drawing and the marks that have
// been undone and may be restored. Both sequences are ordered oldest first;
// the last element of the redo stack is the next mark Redo restores.
type Document struct {
	strokes []Mark
	redo    []Mark
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Commit appends m to the drawing. A committed Path stops accepting points.
// Commit leaves the redo stack alone; callers discard it with DiscardRedo
// when the commit starts a new branch of history.
func (d *Document) Commit(m Mark) {
	if m == nil {
		return
	}
	if p, ok := m.(*Path); ok {
		p.close()
	}
	d.strokes = append(d.strokes, m)
}

// DiscardRedo empties the redo stack.
func (d *Document) DiscardRedo() {
	d.redo = nil
}

// Undo moves the newest mark onto the redo stack. It reports false when
// there is nothing to undo.
func (d *Document) Undo() bool {
	n := len(d.strokes)
	if n == 0 {
		return false
	}
	m := d.strokes[n-1]
	d.strokes[n-1] = nil
	d.strokes = d.strokes[:n-1]
	d.redo = append(d.redo, m)
	return true
}

// Redo restores the most recently undone mark. It reports false when the
// redo stack is empty.
func (d *Document) Redo() bool {
	n := len(d.redo)
	if n == 0 {
		return false
	}
	m := d.redo[n-1]
	d.redo[n-1] = nil
	d.redo = d.redo[:n-1]
	d.strokes = append(d.strokes, m)
	return true
}

// Clear empties both the drawing and the redo stack. It cannot be undone.
func (d *Document) Clear() {
	d.strokes = nil
	d.redo = nil
}

// Marks returns a copy of the committed marks, oldest first.
func (d *Document) Marks() []Mark {
	out := make([]Mark, len(d.strokes))
	copy(out, d.strokes)
	return out
}

// RedoMarks returns a copy of the redo stack, oldest first.
func (d *Document) RedoMarks() []Mark {
	out := make([]Mark, len(d.redo))
	copy(out, d.redo)
	return out
}

func (d *Document) Len() int { return len(d.strokes) }

func (d *Document) RedoLen() int { return len(d.redo) }

// Render draws every committed mark in order.
func (d *Document) Render(s Surface) {
	for _, m := range d.strokes {
		m.Render(s)
	}
}
