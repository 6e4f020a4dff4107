package history

// History is an append-only log of submitted lines with one browse cursor.
//
// The cursor lives in [0, len(entries)]; len(entries) is the at-top state.
// Prev and Next only move the cursor, never the entries.
type History struct {
	entries []string
	cur     int
}

func New() *History {
	return &History{}
}

// Add appends line and resets the browse cursor to at-top.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
	h.cur = len(h.entries)
}

// AtTop reports whether the browse cursor is at the at-rest position.
func (h *History) AtTop() bool {
	return h.cur == len(h.entries)
}

// Prev steps the cursor toward older entries and returns the entry it
// lands on. At the oldest entry it reports false and stays put: the floor
// is clamped at 0, so over-stepping never makes the log unbrowsable.
func (h *History) Prev() (string, bool) {
	if h.cur <= 0 {
		return "", false
	}
	h.cur--
	return h.entries[h.cur], true
}

// Next steps the cursor toward newer entries. Stepping onto at-top keeps
// the movement but reports false, since there is no entry there; calling
// Next while already at-top is a no-op.
func (h *History) Next() (string, bool) {
	if h.cur == len(h.entries) {
		return "", false
	}
	h.cur++
	if h.cur == len(h.entries) {
		return "", false
	}
	return h.entries[h.cur], true
}

func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
