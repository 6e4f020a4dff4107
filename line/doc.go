// Package line implements the position arithmetic for a prompt-prefixed
// logical line wrapped over multiple terminal rows.
//
// Offsets are byte indexes into the edit buffer; positions are terminal
// (column, row) pairs. The mapping is pure: nothing here touches a screen.
package line
