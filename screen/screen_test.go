package screen

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/mlvd/readlet/editor"
)

func newSim(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)
	return NewWith(sim), sim
}

func rowString(sim tcell.SimulationScreen, y int) string {
	cols, _ := sim.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestScreen_WriteStringWrapsAtMargin(t *testing.T) {
	s, sim := newSim(t, 10, 6)

	s.WriteString("$> abcdefg") // fills row 0 exactly
	if col, row := s.Cursor(); col != 10 || row != 0 {
		t.Fatalf("cursor: got (%d,%d), want the margin (10,0)", col, row)
	}

	s.WriteString("hi")
	if col, row := s.Cursor(); col != 2 || row != 1 {
		t.Fatalf("cursor: got (%d,%d), want (2,1)", col, row)
	}
	if got := rowString(sim, 0); got != "$> abcdefg" {
		t.Fatalf("row 0: got %q", got)
	}
	if got := rowString(sim, 1); got != "hi" {
		t.Fatalf("row 1: got %q", got)
	}
}

func TestScreen_WriteStringNewline(t *testing.T) {
	s, sim := newSim(t, 10, 6)

	s.WriteString("ab\ncd")
	if got := rowString(sim, 0); got != "ab" {
		t.Fatalf("row 0: got %q", got)
	}
	if got := rowString(sim, 1); got != "cd" {
		t.Fatalf("row 1: got %q", got)
	}
	if col, row := s.Cursor(); col != 2 || row != 1 {
		t.Fatalf("cursor: got (%d,%d), want (2,1)", col, row)
	}
}

func TestScreen_DeleteCharShiftsRowLeft(t *testing.T) {
	s, sim := newSim(t, 10, 6)
	s.WriteString("abcdef")

	s.MoveTo(2, 0)
	s.DeleteChar()

	if got := rowString(sim, 0); got != "abdef" {
		t.Fatalf("row 0: got %q, want \"abdef\"", got)
	}
}

func TestScreen_DeleteCharAtMarginAddressesNextRow(t *testing.T) {
	s, sim := newSim(t, 10, 6)
	s.WriteString("0123456789AB") // wraps: row 1 holds "AB"

	s.MoveTo(10, 0) // margin of row 0
	s.DeleteChar()

	if got := rowString(sim, 1); got != "B" {
		t.Fatalf("row 1: got %q, want \"B\"", got)
	}
	if got := rowString(sim, 0); got != "0123456789" {
		t.Fatalf("row 0: got %q", got)
	}
}

func TestScreen_DeleteLineShiftsRowsUp(t *testing.T) {
	s, sim := newSim(t, 10, 4)
	s.WriteString("one\ntwo\nthree")

	s.MoveTo(0, 0)
	s.DeleteLine()

	if got := rowString(sim, 0); got != "two" {
		t.Fatalf("row 0: got %q, want \"two\"", got)
	}
	if got := rowString(sim, 1); got != "three" {
		t.Fatalf("row 1: got %q, want \"three\"", got)
	}
	if got := rowString(sim, 2); got != "" {
		t.Fatalf("row 2: got %q, want blank", got)
	}
}

func TestScreen_ScrollsInsideRegion(t *testing.T) {
	s, sim := newSim(t, 10, 3)
	s.SetScrollRegion(0, 3)

	s.WriteString("one\ntwo\nthree\nfour")

	if got := rowString(sim, 0); got != "two" {
		t.Fatalf("row 0: got %q, want \"two\"", got)
	}
	if got := rowString(sim, 1); got != "three" {
		t.Fatalf("row 1: got %q, want \"three\"", got)
	}
	if got := rowString(sim, 2); got != "four" {
		t.Fatalf("row 2: got %q, want \"four\"", got)
	}
	if _, row := s.Cursor(); row != 2 {
		t.Fatalf("cursor row: got %d, want the region bottom 2", row)
	}
}

func TestDecodeKey(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want editor.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), editor.RuneEvent('a')},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), editor.RuneEvent(' ')},
		{"non-ascii rune", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), editor.Event{Kind: editor.KindUnknown}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone), editor.Event{Kind: editor.KindEnter}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), editor.Event{Kind: editor.KindBackspace}},
		{"ctrl+u", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModNone), editor.Event{Kind: editor.KindKillToStart}},
		{"ctrl+l", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModNone), editor.Event{Kind: editor.KindClearLine}},
		{"ctrl+a", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModNone), editor.Event{Kind: editor.KindMoveStart}},
		{"ctrl+e", tcell.NewEventKey(tcell.KeyCtrlE, 0, tcell.ModNone), editor.Event{Kind: editor.KindMoveEnd}},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), editor.Event{Kind: editor.KindUp}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), editor.Event{Kind: editor.KindDown}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), editor.Event{Kind: editor.KindLeft}},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), editor.Event{Kind: editor.KindRight}},
		{"ctrl+d", tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModNone), editor.Event{Kind: editor.KindClosed}},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), editor.Event{Kind: editor.KindUnknown}},
	}
	for _, tc := range cases {
		if got := decodeKey(tc.ev); got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestNextEvent_DecodesInjectedKeys(t *testing.T) {
	s, sim := newSim(t, 20, 5)

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)

	// The simulation posts a resize for the initial SetSize; skip those.
	ev := s.NextEvent()
	for ev.Kind == editor.KindResize {
		ev = s.NextEvent()
	}
	if ev != editor.RuneEvent('x') {
		t.Fatalf("first event: got %+v, want rune 'x'", ev)
	}
	if ev := s.NextEvent(); ev.Kind != editor.KindEnter {
		t.Fatalf("second event: got %+v, want enter", ev)
	}
}

func TestScreen_DrivesEditor(t *testing.T) {
	s, sim := newSim(t, 80, 24)
	e := editor.New(s, editor.Config{})

	e.ShowPrompt()
	e.Insert("ls -la")
	e.MoveToStart()
	e.MoveRight()
	e.Insert("x")

	if e.Line() != "lxs -la" {
		t.Fatalf("buffer: got %q", e.Line())
	}
	if got := rowString(sim, 0); got != "debug> lxs -la" {
		t.Fatalf("row 0: got %q", got)
	}
}
