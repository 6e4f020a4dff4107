// Package screen implements editor.Surface on a real terminal via
// gdamore/tcell: raw keypad mode, echo-free cell writes, cursor
// addressing, region scrolling, and key decoding into editor events.
package screen
