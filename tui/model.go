package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlvd/readlet/editor"
	"github.com/mlvd/readlet/internal/ascii"
	"github.com/mlvd/readlet/vscreen"
)

// Config configures the host Model.
type Config struct {
	// Prompt printed at the start of every input line.
	Prompt string

	// Evaluator runs on every committed line; its response is echoed.
	// Left nil, lines echo back unchanged.
	Evaluator editor.Evaluator

	// Zero values fall back to DefaultKeyMap and an 80x24 grid. Style is
	// used as given; see DefaultStyle for a visible caret.
	KeyMap        KeyMap
	Style         Style
	Width, Height int
}

// Model is a Bubble Tea component wrapping the line editor over an
// in-memory screen grid.
type Model struct {
	cfg Config
	scr *vscreen.Screen
	ed  *editor.Editor
}

func New(cfg Config) Model {
	if cfg.Prompt == "" {
		cfg.Prompt = editor.DefaultPrompt
	}
	if cfg.Evaluator == nil {
		cfg.Evaluator = func(line string) string { return line }
	}
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.Height <= 0 {
		cfg.Height = 24
	}

	scr := vscreen.New(cfg.Width, cfg.Height)
	ed := editor.New(scr, editor.Config{Prompt: cfg.Prompt})
	ed.OnResize()
	ed.ShowPrompt()
	return Model{cfg: cfg, scr: scr, ed: ed}
}

// Editor exposes the wrapped editor for host integration.
func (m Model) Editor() *editor.Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.scr.Resize(msg.Width, msg.Height)
		m.ed.Handle(editor.Event{Kind: editor.KindResize})
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Enter):
		line, _ := m.ed.Handle(editor.Event{Kind: editor.KindEnter})
		m.scr.WriteString(m.cfg.Evaluator(line) + "\n")
		m.ed.ShowPrompt()

	case key.Matches(msg, km.Backspace):
		m.ed.Backspace()
	case key.Matches(msg, km.KillToStart):
		m.ed.ClearToStart()
	case key.Matches(msg, km.ClearLine):
		m.ed.ClearLine()
	case key.Matches(msg, km.Home):
		m.ed.MoveToStart()
	case key.Matches(msg, km.End):
		m.ed.MoveToEnd()
	case key.Matches(msg, km.Left):
		m.ed.MoveLeft()
	case key.Matches(msg, km.Right):
		m.ed.MoveRight()
	case key.Matches(msg, km.Up):
		m.ed.HistoryPrev()
	case key.Matches(msg, km.Down):
		m.ed.HistoryNext()

	case msg.Type == tea.KeySpace:
		m.ed.Insert(" ")
	case msg.Type == tea.KeyRunes:
		// Paste arrives as one multi-rune message; anything outside the
		// printable range is stripped.
		m.ed.Insert(ascii.Clean(string(msg.Runes)))
	}
	return m, nil
}

func (m Model) View() string {
	rows := m.scr.Rows()
	cols, height := m.scr.Size()
	col, row := m.scr.Cursor()
	if col == cols {
		col, row = 0, row+1
	}
	if row > height-1 {
		row = height - 1
	}

	var b strings.Builder
	for y, text := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		if y != row {
			b.WriteString(m.cfg.Style.Text.Render(text))
			continue
		}
		if pad := col + 1 - len(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		b.WriteString(m.cfg.Style.Text.Render(text[:col]))
		b.WriteString(m.cfg.Style.Caret.Render(string(text[col])))
		b.WriteString(m.cfg.Style.Text.Render(text[col+1:]))
	}
	return b.String()
}
