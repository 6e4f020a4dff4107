// Package editor implements a readline-style line editor over a raw
// terminal surface: cursor motion, insert/delete, kill-to-start,
// multi-row line wrapping, and Up/Down browsing of submitted lines.
//
// The package is responsible for the edit buffer, the caret, and the
// arithmetic keeping both consistent with on-screen coordinates across
// full-line redraws. Raw-mode setup, glyph rendering, and key decoding
// belong to the Surface implementation; evaluating a committed line
// belongs to the host's Evaluator.
//
// Only printable single-byte characters (space through tilde) are
// supported in the buffer.
package editor
