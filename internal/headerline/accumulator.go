package headerline

import "strings"

// Accumulator records raw response header lines, one per delivery
// callback, in the order the transfer engine hands them over. Lines are
// stored byte-for-byte except that a trailing CRLF is stripped. It is not
// safe for concurrent use; each worker owns its own accumulator.
type Accumulator struct {
	lines []string
}

// Append records one raw header line. If the line ends with exactly
// "\r\n", those two characters are removed; no other normalization is
// applied, so a lone "\n" or interior whitespace survives untouched.
func (a *Accumulator) Append(line string) {
	a.lines = append(a.lines, strings.TrimSuffix(line, "\r\n"))
}

// Len returns the number of recorded lines.
func (a *Accumulator) Len() int {
	return len(a.lines)
}

// Take transfers ownership of the recorded lines and leaves the
// accumulator empty.
func (a *Accumulator) Take() []string {
	out := a.lines
	a.lines = nil
	return out
}

// Reset discards all recorded lines. Must run before each request so a
// prior response's lines never leak into the next one.
func (a *Accumulator) Reset() {
	a.lines = nil
}
