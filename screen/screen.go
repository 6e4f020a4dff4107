package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen adapts a tcell.Screen to editor.Surface. tcell owns raw mode and
// echo suppression; Screen tracks the cursor itself, since every cell it
// paints goes through it.
//
// The cursor column ranges over [0, cols]: column cols is the right
// margin, resolved to the first cell of the next row on the next write or
// character delete.
type Screen struct {
	tc    tcell.Screen
	style tcell.Style

	col, row int

	// scroll region [top, bottom)
	top, bottom int
}

// New opens the process terminal in raw, echo-free mode. Call Fini before
// the process exits.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return NewWith(tc), nil
}

// NewWith wraps an already-initialized tcell screen; tests hand it a
// tcell.SimulationScreen.
func NewWith(tc tcell.Screen) *Screen {
	_, rows := tc.Size()
	s := &Screen{
		tc:     tc,
		style:  tcell.StyleDefault,
		bottom: rows,
	}
	tc.ShowCursor(0, 0)
	tc.Show()
	return s
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.tc.Fini()
}

func (s *Screen) Size() (cols, rows int) {
	return s.tc.Size()
}

func (s *Screen) Cursor() (col, row int) {
	return s.col, s.row
}

func (s *Screen) MoveTo(col, row int) {
	cols, rows := s.tc.Size()
	s.col = clamp(col, 0, cols)
	s.row = clamp(row, 0, rows-1)
	s.showCursor()
}

func (s *Screen) WriteString(str string) {
	cols, _ := s.tc.Size()
	for _, r := range str {
		if r == '\n' {
			s.col = 0
			s.lineFeed()
			continue
		}
		if s.col == cols {
			s.col = 0
			s.lineFeed()
		}
		s.tc.SetContent(s.col, s.row, r, nil, s.style)
		s.col++
	}
	s.showCursor()
}

func (s *Screen) DeleteChar() {
	cols, rows := s.tc.Size()
	col, row := s.normalized()
	if row >= rows {
		return
	}
	for x := col; x < cols-1; x++ {
		r, _, st, _ := s.tc.GetContent(x+1, row)
		s.tc.SetContent(x, row, r, nil, st)
	}
	s.tc.SetContent(cols-1, row, ' ', nil, s.style)
	s.tc.Show()
}

func (s *Screen) DeleteLine() {
	end := s.bottom
	if s.row >= end {
		_, end = s.tc.Size()
	}
	s.copyRowsUp(s.row, end)
	s.tc.Show()
}

func (s *Screen) SetScrollRegion(top, bottom int) {
	_, rows := s.tc.Size()
	s.top = clamp(top, 0, rows)
	s.bottom = clamp(bottom, s.top, rows)
}

// lineFeed advances one row, scrolling the region when the cursor is on
// its last row.
func (s *Screen) lineFeed() {
	if s.row+1 >= s.bottom {
		s.copyRowsUp(s.top, s.bottom)
		return
	}
	s.row++
}

// copyRowsUp shifts rows (from, end) up by one onto from, blanking the
// last row of the range.
func (s *Screen) copyRowsUp(from, end int) {
	cols, _ := s.tc.Size()
	for y := from; y < end-1; y++ {
		for x := 0; x < cols; x++ {
			r, _, st, _ := s.tc.GetContent(x, y+1)
			s.tc.SetContent(x, y, r, nil, st)
		}
	}
	if end > from {
		for x := 0; x < cols; x++ {
			s.tc.SetContent(x, end-1, ' ', nil, s.style)
		}
	}
}

// normalized resolves a margin cursor to the cell it addresses.
func (s *Screen) normalized() (col, row int) {
	cols, _ := s.tc.Size()
	if s.col == cols {
		return 0, s.row + 1
	}
	return s.col, s.row
}

// showCursor paints the cursor, pinning a margin cursor to the last
// visible column.
func (s *Screen) showCursor() {
	cols, _ := s.tc.Size()
	col := s.col
	if col >= cols {
		col = cols - 1
	}
	s.tc.ShowCursor(col, s.row)
	s.tc.Show()
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
