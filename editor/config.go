package editor

import "github.com/mlvd/readlet/history"

// DefaultPrompt is used when Config.Prompt is empty.
const DefaultPrompt = "debug> "

// Config configures an Editor.
type Config struct {
	// Prompt is printed at the start of every input line. It is fixed for
	// the editor's lifetime; non-printable bytes are dropped.
	Prompt string

	// History is the command log to browse. Left nil, the editor creates
	// its own empty one.
	History *history.History
}
