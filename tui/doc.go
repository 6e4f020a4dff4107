// Package tui hosts the line editor inside a Bubble Tea program: key
// messages decode through a bubbles KeyMap into editor events, commits
// run the evaluator, and the backing vscreen grid renders as the view.
package tui
