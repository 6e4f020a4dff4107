package vscreen

import (
	"strings"

	"github.com/mlvd/readlet/editor"
)

// Screen is a fixed-size cell grid implementing editor.Surface.
//
// The cursor column ranges over [0, cols]: column cols is the right
// margin, reached by filling a row. A margin cursor addresses the first
// cell of the next row for writes and character deletion, so the
// pending-wrap positions the line arithmetic produces stay valid here.
type Screen struct {
	cols, rows int
	cells      [][]rune

	col, row int

	// scroll region [top, bottom)
	top, bottom int

	events []editor.Event
}

func New(cols, rows int) *Screen {
	s := &Screen{
		cols:   cols,
		rows:   rows,
		bottom: rows,
	}
	s.cells = make([][]rune, rows)
	for y := range s.cells {
		s.cells[y] = blankRow(cols)
	}
	return s
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for x := range row {
		row[x] = ' '
	}
	return row
}

func (s *Screen) Size() (cols, rows int) { return s.cols, s.rows }

func (s *Screen) Cursor() (col, row int) { return s.col, s.row }

func (s *Screen) MoveTo(col, row int) {
	s.col = clamp(col, 0, s.cols)
	s.row = clamp(row, 0, s.rows-1)
}

func (s *Screen) WriteString(str string) {
	for _, r := range str {
		if r == '\n' {
			s.col = 0
			s.lineFeed()
			continue
		}
		if s.col == s.cols {
			s.col = 0
			s.lineFeed()
		}
		s.cells[s.row][s.col] = r
		s.col++
	}
}

func (s *Screen) DeleteChar() {
	col, row := s.normalized()
	if row >= s.rows {
		return
	}
	copy(s.cells[row][col:], s.cells[row][col+1:])
	s.cells[row][s.cols-1] = ' '
}

func (s *Screen) DeleteLine() {
	row := s.row
	end := s.bottom
	if row >= end {
		end = s.rows
	}
	for y := row; y < end-1; y++ {
		copy(s.cells[y], s.cells[y+1])
	}
	s.cells[end-1] = blankRow(s.cols)
}

func (s *Screen) SetScrollRegion(top, bottom int) {
	s.top = clamp(top, 0, s.rows)
	s.bottom = clamp(bottom, s.top, s.rows)
}

// Resize reallocates the grid, keeping whatever content fits from the
// top-left and clamping the cursor and scroll region.
func (s *Screen) Resize(cols, rows int) {
	if cols < 1 || rows < 1 {
		return
	}
	next := make([][]rune, rows)
	for y := range next {
		next[y] = blankRow(cols)
		if y < s.rows {
			copy(next[y], s.cells[y])
		}
	}
	s.cells = next
	s.cols, s.rows = cols, rows
	s.col = clamp(s.col, 0, cols)
	s.row = clamp(s.row, 0, rows-1)
	s.top = clamp(s.top, 0, rows)
	s.bottom = clamp(s.bottom, s.top, rows)
}

// NextEvent pops the next queued event; an empty queue reports the
// surface closed.
func (s *Screen) NextEvent() editor.Event {
	if len(s.events) == 0 {
		return editor.Event{Kind: editor.KindClosed}
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

// Push queues events for NextEvent to deliver in order.
func (s *Screen) Push(events ...editor.Event) {
	s.events = append(s.events, events...)
}

// Type queues one rune event per character of text.
func (s *Screen) Type(text string) {
	for _, r := range text {
		s.Push(editor.RuneEvent(r))
	}
}

// Row returns row y with trailing blanks trimmed.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return ""
	}
	return strings.TrimRight(string(s.cells[y]), " ")
}

// Rows returns every row, trailing blanks trimmed.
func (s *Screen) Rows() []string {
	out := make([]string, s.rows)
	for y := range out {
		out[y] = s.Row(y)
	}
	return out
}

// lineFeed advances one row, scrolling the region when the cursor is on
// its last row.
func (s *Screen) lineFeed() {
	if s.row+1 >= s.bottom {
		s.scrollUp()
		return
	}
	s.row++
}

func (s *Screen) scrollUp() {
	for y := s.top; y < s.bottom-1; y++ {
		copy(s.cells[y], s.cells[y+1])
	}
	if s.bottom > s.top {
		s.cells[s.bottom-1] = blankRow(s.cols)
	}
}

// normalized resolves a margin cursor to the cell it addresses.
func (s *Screen) normalized() (col, row int) {
	if s.col == s.cols {
		return 0, s.row + 1
	}
	return s.col, s.row
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
