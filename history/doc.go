// Package history implements the append-only command log behind the
// editor's Up/Down browsing.
//
// A single browse cursor walks the entries; the cursor equal to the entry
// count is the at-rest "at-top" state, meaning no entry is being browsed.
package history
