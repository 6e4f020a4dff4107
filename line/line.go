package line

// Layout describes the geometry a logical line is wrapped into: the
// terminal width in columns and the width of the prompt occupying the
// start of the first row. Cols must exceed Prompt.
type Layout struct {
	Cols   int
	Prompt int
}

// Position is a terminal coordinate. Col ranges over [0, Cols]: a caret
// that has just filled a row rests at the right margin (Col == Cols) until
// the next write, rather than hopping to the next row early. Keeping that
// pending-wrap column makes the offset->position mapping invertible at
// exact row boundaries.
type Position struct {
	Col int
	Row int
}

// firstCap is the number of buffer bytes that fit on the first row, after
// the prompt.
func (l Layout) firstCap() int {
	return l.Cols - l.Prompt
}

// Rows returns the row index, relative to the origin row, that offset p
// occupies. Offsets within the first-row capacity are on row 0.
func (l Layout) Rows(p int) int {
	k := p - l.firstCap()
	if k <= 0 {
		return 0
	}
	return (k + l.Cols - 1) / l.Cols
}

// Position maps offset p to its terminal position, given the row where
// offset 0 currently sits.
func (l Layout) Position(p, originRow int) Position {
	first := l.firstCap()
	if p <= first {
		return Position{Col: l.Prompt + p, Row: originRow}
	}
	col := (p - first) % l.Cols
	if col == 0 {
		col = l.Cols
	}
	return Position{Col: col, Row: originRow + l.Rows(p)}
}

// Origin is the position of offset 0: first column after the prompt.
func (l Layout) Origin(originRow int) Position {
	return Position{Col: l.Prompt, Row: originRow}
}

// StartRow recovers the origin row from the terminal's current cursor row
// and the caret's logical offset. Rows scroll, so the origin is never
// cached; it is re-derived from the pair that is always in hand.
func (l Layout) StartRow(curRow, p int) int {
	return curRow - l.Rows(p)
}
