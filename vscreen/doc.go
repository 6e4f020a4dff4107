// Package vscreen is an in-memory editor.Surface: a rune cell grid with
// an addressable cursor, a scroll region, and a queued event feed.
//
// It backs the editor's tests, where every screen assertion runs against
// the grid, and the tui package, which renders the grid as a string.
package vscreen
