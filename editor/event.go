package editor

// Kind identifies a decoded input event.
type Kind int

const (
	// KindUnknown is anything the surface could not decode; dropped.
	KindUnknown Kind = iota

	// KindRune carries one printable character in Event.Rune.
	KindRune

	KindEnter
	KindBackspace

	// KindKillToStart deletes everything before the caret (ctrl+U).
	KindKillToStart
	// KindClearLine wipes the whole input line (ctrl+L).
	KindClearLine

	// KindMoveStart / KindMoveEnd snap the caret to the line ends
	// (ctrl+A / ctrl+E).
	KindMoveStart
	KindMoveEnd

	KindLeft
	KindRight
	KindUp
	KindDown

	// KindResize reports a terminal geometry change.
	KindResize

	// KindClosed means the surface is gone; the input loop returns.
	KindClosed
)

// Event is one decoded input event from the terminal surface.
type Event struct {
	Kind Kind
	Rune rune
}

// RuneEvent wraps a printable character as an event.
func RuneEvent(r rune) Event {
	return Event{Kind: KindRune, Rune: r}
}

func (k Kind) String() string {
	switch k {
	case KindRune:
		return "rune"
	case KindEnter:
		return "enter"
	case KindBackspace:
		return "backspace"
	case KindKillToStart:
		return "kill-to-start"
	case KindClearLine:
		return "clear-line"
	case KindMoveStart:
		return "move-start"
	case KindMoveEnd:
		return "move-end"
	case KindLeft:
		return "left"
	case KindRight:
		return "right"
	case KindUp:
		return "up"
	case KindDown:
		return "down"
	case KindResize:
		return "resize"
	case KindClosed:
		return "closed"
	default:
		return "unknown"
	}
}
