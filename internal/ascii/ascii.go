package ascii

// Printable reports whether r is in the printable single-byte range the
// editor accepts (space through tilde).
func Printable(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

// PrintableString reports whether every byte of s is printable.
func PrintableString(s string) bool {
	for i := 0; i < len(s); i++ {
		if !Printable(rune(s[i])) {
			return false
		}
	}
	return true
}

// Clean returns s with every non-printable byte dropped.
func Clean(s string) string {
	if PrintableString(s) {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if Printable(rune(s[i])) {
			out = append(out, s[i])
		}
	}
	return string(out)
}
