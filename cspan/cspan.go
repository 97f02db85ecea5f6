// Package cspan provides byte-range scanning helpers for C source text.
//
// All functions operate on offsets into a shared byte slice rather than on
// substrings, so callers can narrow a region without copying. Forward skips
// take a position and an exclusive upper bound; backward trims take an
// exclusive end and an inclusive lower bound and return a new exclusive end.
package cspan

// Range is a half-open offset range [Start, End) into some backing slice.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsSpace reports whether c is ASCII whitespace (space, tab, or a line or
// page control character), matching C's isspace in the "C" locale.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// IsPunct reports whether c is a printable ASCII character that is neither
// alphanumeric nor whitespace, matching C's ispunct in the "C" locale.
func IsPunct(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}

	return !IsIdent(c)
}

// IsIdent reports whether c can appear in a C identifier.
func IsIdent(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// SkipSpace advances i past a run of whitespace, never past end.
func SkipSpace(data []byte, i, end int) int {
	for i < end && IsSpace(data[i]) {
		i++
	}

	return i
}

// TrimSpace moves the exclusive end backward past a run of whitespace.
// The byte at start itself is never examined, so the result is always
// greater than start.
func TrimSpace(data []byte, end, start int) int {
	p := end - 1
	for p > start && IsSpace(data[p]) {
		p--
	}

	return p + 1
}

// SkipComment advances i past a run of '*', '/' and whitespace, never past
// end. Used to strip comment framing from the front of a comment's text.
func SkipComment(data []byte, i, end int) int {
	for i < end && (IsSpace(data[i]) || data[i] == '/' || data[i] == '*') {
		i++
	}

	return i
}

// TrimComment moves the exclusive end backward past a run of '*', '/' and
// whitespace. Like [TrimSpace], the byte at start is never examined.
func TrimComment(data []byte, end, start int) int {
	p := end - 1
	for p > start && (IsSpace(data[p]) || data[p] == '/' || data[p] == '*') {
		p--
	}

	return p + 1
}

// SkipPunct advances i past a run of whitespace and punctuation, never past
// end.
func SkipPunct(data []byte, i, end int) int {
	for i < end && (IsSpace(data[i]) || IsPunct(data[i])) {
		i++
	}

	return i
}
