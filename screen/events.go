package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mlvd/readlet/editor"
	"github.com/mlvd/readlet/internal/ascii"
)

// NextEvent blocks for the next terminal event and decodes it. A
// finalized screen (PollEvent returning nil) and the session-ending keys
// ctrl+C / ctrl+D both decode to Closed.
func (s *Screen) NextEvent() editor.Event {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			return editor.Event{Kind: editor.KindClosed}
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return decodeKey(ev)
		case *tcell.EventResize:
			s.tc.Sync()
			return editor.Event{Kind: editor.KindResize}
		}
		// Mouse, paste, and other event classes are not part of the
		// editor's vocabulary; keep polling.
	}
}

func decodeKey(ev *tcell.EventKey) editor.Event {
	switch ev.Key() {
	case tcell.KeyRune:
		if r := ev.Rune(); ascii.Printable(r) {
			return editor.RuneEvent(r)
		}
		return editor.Event{Kind: editor.KindUnknown}
	case tcell.KeyEnter:
		return editor.Event{Kind: editor.KindEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Event{Kind: editor.KindBackspace}
	case tcell.KeyCtrlU:
		return editor.Event{Kind: editor.KindKillToStart}
	case tcell.KeyCtrlL:
		return editor.Event{Kind: editor.KindClearLine}
	case tcell.KeyCtrlA:
		return editor.Event{Kind: editor.KindMoveStart}
	case tcell.KeyCtrlE:
		return editor.Event{Kind: editor.KindMoveEnd}
	case tcell.KeyLeft:
		return editor.Event{Kind: editor.KindLeft}
	case tcell.KeyRight:
		return editor.Event{Kind: editor.KindRight}
	case tcell.KeyUp:
		return editor.Event{Kind: editor.KindUp}
	case tcell.KeyDown:
		return editor.Event{Kind: editor.KindDown}
	case tcell.KeyCtrlC, tcell.KeyCtrlD:
		return editor.Event{Kind: editor.KindClosed}
	default:
		return editor.Event{Kind: editor.KindUnknown}
	}
}
