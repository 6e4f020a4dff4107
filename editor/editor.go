package editor

import (
	"strings"

	"github.com/mlvd/readlet/history"
	"github.com/mlvd/readlet/internal/ascii"
	"github.com/mlvd/readlet/line"
)

// Editor owns the current input line: the edit buffer, the caret offset
// into it, and the history it browses. All screen output goes through the
// Surface; all screen positions are re-derived from the buffer and the
// surface's cursor, never cached.
type Editor struct {
	prompt string
	sfc    Surface
	hist   *history.History

	buf []byte
	pos int // caret offset, always in [0, len(buf)]
}

func New(sfc Surface, cfg Config) *Editor {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	hist := cfg.History
	if hist == nil {
		hist = history.New()
	}
	return &Editor{
		prompt: ascii.Clean(prompt),
		sfc:    sfc,
		hist:   hist,
	}
}

// Line returns the buffer contents being edited.
func (e *Editor) Line() string { return string(e.buf) }

// Offset returns the caret's logical byte offset.
func (e *Editor) Offset() int { return e.pos }

func (e *Editor) History() *history.History { return e.hist }

func (e *Editor) Prompt() string { return e.prompt }

// ShowPrompt prints the prompt at the cursor, starting a fresh input
// line. The buffer must be empty.
func (e *Editor) ShowPrompt() {
	e.sfc.WriteString(e.prompt)
}

// Commit submits the buffer: the line is cleared and echoed with a line
// break, non-blank lines are added to the history, and the text is
// returned to the input loop.
func (e *Editor) Commit() string {
	text := string(e.buf)
	if !ascii.PrintableString(text) {
		// Cannot happen under the insert contract; a non-printable byte
		// means internal state is corrupt.
		panic("editor: buffer holds non-printable bytes")
	}
	e.ClearLine()
	e.sfc.WriteString(text + "\n")
	if strings.TrimSpace(text) != "" {
		e.hist.Add(text)
	}
	return text
}

// OnResize reconfigures the scroll region for the surface's new height.
// Buffer and caret are untouched; visual reflow is best-effort.
func (e *Editor) OnResize() {
	_, rows := e.sfc.Size()
	e.sfc.SetScrollRegion(0, rows)
}

// layout captures the current geometry. Re-read on every use so a resize
// is picked up as soon as the surface reports the new width.
func (e *Editor) layout() line.Layout {
	cols, _ := e.sfc.Size()
	return line.Layout{Cols: cols, Prompt: len(e.prompt)}
}

// startRow derives the row holding offset 0 from the current cursor row
// and the caret offset. Valid whenever the physical cursor agrees with
// e.pos, which every public operation maintains.
func (e *Editor) startRow() int {
	_, row := e.sfc.Cursor()
	return e.layout().StartRow(row, e.pos)
}

// eraseFrom deletes every row spanned by a line of extent buffer bytes
// starting at row start, bottom-up, then reprints the prompt. The cursor
// ends at the line origin.
func (e *Editor) eraseFrom(start, extent int) {
	end := start + e.layout().Rows(extent)
	for y := end; y >= start; y-- {
		e.sfc.MoveTo(0, y)
		e.sfc.DeleteLine()
	}
	e.sfc.WriteString(e.prompt)
}
