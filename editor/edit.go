package editor

// Insert splices text into the buffer at the caret. text must be
// printable single-byte characters only; the input loop guarantees this
// for key events.
//
// Appending at the end writes straight through and lets the cursor
// advance naturally. A mid-buffer insert shifts trailing characters right
// on screen, which requires a full-line redraw: the caret target is
// computed first from the line arithmetic, the old extent is erased, the
// new buffer is redrawn from the origin, and the caret is restored.
func (e *Editor) Insert(text string) {
	if text == "" {
		return
	}
	if e.pos == len(e.buf) {
		e.buf = append(e.buf, text...)
		e.pos += len(text)
		e.sfc.WriteString(text)
		return
	}

	l := e.layout()
	start := e.startRow()
	oldExtent := len(e.buf)

	e.buf = append(e.buf[:e.pos:e.pos], append([]byte(text), e.buf[e.pos:]...)...)
	e.pos += len(text)
	target := l.Position(e.pos, start)

	e.eraseFrom(start, oldExtent)
	e.sfc.WriteString(string(e.buf))
	e.sfc.MoveTo(target.Col, target.Row)
}

// Backspace deletes the character left of the caret. At offset 0 it does
// nothing. Deleting the last character is a pure screen-cell delete;
// deleting mid-buffer redraws the line and restores the caret to the
// position one logical step left of where it was.
func (e *Editor) Backspace() {
	switch {
	case e.pos == 0:
		return

	case e.pos == len(e.buf):
		e.MoveLeft()
		e.sfc.DeleteChar()
		e.buf = e.buf[:len(e.buf)-1]

	default:
		l := e.layout()
		start := e.startRow()
		oldExtent := len(e.buf)

		e.pos--
		e.buf = append(e.buf[:e.pos], e.buf[e.pos+1:]...)
		target := l.Position(e.pos, start)

		e.eraseFrom(start, oldExtent)
		e.sfc.WriteString(string(e.buf))
		e.sfc.MoveTo(target.Col, target.Row)
	}
}

// ClearToStart drops everything before the caret and redraws what
// remains, leaving the caret at the line origin.
func (e *Editor) ClearToStart() {
	if e.pos == 0 {
		return
	}
	l := e.layout()
	start := e.startRow()

	tail := append([]byte(nil), e.buf[e.pos:]...)
	e.eraseFrom(start, len(e.buf))
	e.buf = tail
	e.pos = 0
	e.sfc.WriteString(string(e.buf))

	o := l.Origin(start)
	e.sfc.MoveTo(o.Col, o.Row)
}

// ClearLine deletes every terminal row the line spans, bottom-up, resets
// the buffer, and reprints the prompt. The cursor ends at the line
// origin.
func (e *Editor) ClearLine() {
	start := e.startRow()
	e.eraseFrom(start, len(e.buf))
	e.buf = e.buf[:0]
	e.pos = 0
}
