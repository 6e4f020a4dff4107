package editor

// MoveLeft moves the caret one logical step left, wrapping to the right
// margin of the previous row when the step crosses a row boundary. No-op
// at offset 0.
func (e *Editor) MoveLeft() {
	if e.pos == 0 {
		return
	}
	l := e.layout()
	start := e.startRow()
	e.pos--
	p := l.Position(e.pos, start)
	e.sfc.MoveTo(p.Col, p.Row)
}

// MoveRight moves the caret one logical step right, wrapping onto the
// next row when the step crosses a row boundary. No-op at the buffer end.
func (e *Editor) MoveRight() {
	if e.pos == len(e.buf) {
		return
	}
	l := e.layout()
	start := e.startRow()
	e.pos++
	p := l.Position(e.pos, start)
	e.sfc.MoveTo(p.Col, p.Row)
}

// MoveToStart snaps the caret to offset 0 via the position formula, no
// per-cell walking.
func (e *Editor) MoveToStart() {
	l := e.layout()
	start := e.startRow()
	e.pos = 0
	o := l.Origin(start)
	e.sfc.MoveTo(o.Col, o.Row)
}

// MoveToEnd snaps the caret to the end of the buffer.
func (e *Editor) MoveToEnd() {
	l := e.layout()
	start := e.startRow()
	e.pos = len(e.buf)
	p := l.Position(e.pos, start)
	e.sfc.MoveTo(p.Col, p.Row)
}
