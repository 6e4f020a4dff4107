package editor

// HistoryPrev browses one entry back. From the at-rest state the current
// buffer is first snapshotted into the history, and the single Prev that
// follows surfaces that snapshot: the first Up press shows the same text
// it started with. That ordering is what lets Down restore the
// in-progress draft later. Further presses surface progressively older
// entries; past the oldest, the line is simply cleared.
func (e *Editor) HistoryPrev() {
	if e.hist.AtTop() {
		e.hist.Add(string(e.buf))
	}
	entry, ok := e.hist.Prev()
	e.ClearLine()
	if ok {
		e.loadEntry(entry)
	}
}

// HistoryNext browses one entry forward. Stepping back onto the at-rest
// state leaves the line empty.
func (e *Editor) HistoryNext() {
	entry, ok := e.hist.Next()
	e.ClearLine()
	if ok {
		e.loadEntry(entry)
	}
}

// loadEntry replaces the (empty, just-cleared) line with a history entry,
// caret at its end.
func (e *Editor) loadEntry(entry string) {
	e.buf = append(e.buf[:0], entry...)
	e.pos = len(e.buf)
	e.sfc.WriteString(entry)
}
