package editor

import "github.com/mlvd/readlet/internal/ascii"

// Evaluator turns a committed line into the response to echo. It runs
// synchronously on the input-loop thread; a slow evaluator stalls all
// editing. Hosts that need responsiveness must dispatch asynchronously
// themselves.
type Evaluator func(line string) string

// Handle dispatches one decoded event. It returns the committed line and
// true when the event was an Enter; unrecognized events are dropped
// without state change. Closed is a no-op here: ending the session is the
// loop's concern.
func (e *Editor) Handle(ev Event) (string, bool) {
	switch ev.Kind {
	case KindRune:
		if ascii.Printable(ev.Rune) {
			e.Insert(string(ev.Rune))
		}
	case KindEnter:
		return e.Commit(), true
	case KindBackspace:
		e.Backspace()
	case KindKillToStart:
		e.ClearToStart()
	case KindClearLine:
		e.ClearLine()
	case KindMoveStart:
		e.MoveToStart()
	case KindMoveEnd:
		e.MoveToEnd()
	case KindLeft:
		e.MoveLeft()
	case KindRight:
		e.MoveRight()
	case KindUp:
		e.HistoryPrev()
	case KindDown:
		e.HistoryNext()
	case KindResize:
		e.OnResize()
	}
	return "", false
}

// Run is the input loop: it blocks on the surface's next event, processes
// it to completion, and on each commit invokes eval and echoes its
// response. Strictly single-threaded and turn-based; returns when the
// surface reports Closed.
func (e *Editor) Run(eval Evaluator) {
	e.OnResize()
	e.ShowPrompt()
	for {
		ev := e.sfc.NextEvent()
		if ev.Kind == KindClosed {
			return
		}
		if line, ok := e.Handle(ev); ok {
			e.sfc.WriteString(eval(line) + "\n")
			e.ShowPrompt()
		}
	}
}
