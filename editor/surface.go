package editor

// Surface is the terminal the editor draws on. Implementations present a
// raw, echo-free screen with an addressable cursor; see the screen package
// for the tcell-backed one and the vscreen package for the in-memory one.
//
// Columns range over [0, cols]: a cursor that has just filled a row rests
// at the right margin (column == cols) until the next write. A margin
// cursor addresses the first cell of the following row for writes and
// character deletion.
type Surface interface {
	// Size returns the terminal dimensions in columns and rows.
	Size() (cols, rows int)

	// Cursor returns the current cursor position.
	Cursor() (col, row int)

	// MoveTo places the cursor. Column cols (the right margin) is valid.
	MoveTo(col, row int)

	// WriteString writes s at the cursor, advancing it and wrapping at
	// the right margin. '\n' moves to column 0 of the next row. Writing
	// past the bottom of the scroll region scrolls it.
	WriteString(s string)

	// DeleteChar removes the character under the cursor and shifts the
	// remainder of the row left.
	DeleteChar()

	// DeleteLine removes the cursor's row entirely; rows below shift up
	// and a blank row appears at the bottom of the scroll region.
	DeleteLine()

	// SetScrollRegion restricts scrolling to rows [top, bottom).
	SetScrollRegion(top, bottom int)

	// NextEvent blocks until the next decoded input event.
	NextEvent() Event
}
