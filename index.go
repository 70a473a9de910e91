package tinytext

import "github.com/arloliu/tinytext/internal/utf8x"

// offsetAt returns the byte offset of the n-th codepoint, scanning forward.
// Returns len(t.s) when n is at or beyond the codepoint count.
func (t Text) offsetAt(n Count) int {
	off := 0
	for ; n > 0 && off < len(t.s); n-- {
		_, size := utf8x.DecodeRune(t.s, off)
		off += size
	}

	return off
}

// offsetAtEnd returns the byte offset n codepoints before the end, scanning
// backward. Returns 0 when n is at or beyond the codepoint count.
func (t Text) offsetAtEnd(n Count) int {
	off := len(t.s)
	for ; n > 0 && off > 0; n-- {
		_, size := utf8x.DecodeLastRune(t.s, off)
		off -= size
	}

	return off
}

// At returns the codepoint at index i, counting from the front. An index
// outside [0, Len) yields ok=false, never a panic.
func (t Text) At(i Count) (rune, bool) {
	if i < 0 {
		return 0, false
	}

	off := t.offsetAt(i)
	if off == len(t.s) {
		return 0, false
	}

	r, _ := utf8x.DecodeRune(t.s, off)

	return r, true
}

// AtEnd returns the codepoint at index i counting from the back; AtEnd(0) is
// the last codepoint. Out-of-range indices yield ok=false.
func (t Text) AtEnd(i Count) (rune, bool) {
	if i < 0 {
		return 0, false
	}

	off := len(t.s)
	for ; i > 0; i-- {
		if off == 0 {
			return 0, false
		}
		_, size := utf8x.DecodeLastRune(t.s, off)
		off -= size
	}
	if off == 0 {
		return 0, false
	}

	r, _ := utf8x.DecodeLastRune(t.s, off)

	return r, true
}

// SplitAt splits the value at the n-th codepoint boundary, returning both
// halves as independently owned values.
//
// Edge policy: n <= 0 yields (Empty, t); n at or beyond Len yields
// (t, Empty). In both clamp cases the original value itself is returned,
// which allocates nothing.
func (t Text) SplitAt(n Count) (Text, Text) {
	if n <= 0 {
		return Empty, t
	}

	off := t.offsetAt(n)
	if off == len(t.s) {
		return t, Empty
	}

	return t.copyRange(0, off), t.copyRange(off, len(t.s))
}

// SplitAtEnd splits n codepoints before the end: the second half holds the
// last n codepoints. n <= 0 yields (t, Empty); n at or beyond Len yields
// (Empty, t).
func (t Text) SplitAtEnd(n Count) (Text, Text) {
	if n <= 0 {
		return t, Empty
	}

	off := t.offsetAtEnd(n)
	if off == 0 {
		return Empty, t
	}

	return t.copyRange(0, off), t.copyRange(off, len(t.s))
}

// Uncons splits off the first codepoint. Empty values yield ok=false; the
// remainder is copied into its own buffer.
func (t Text) Uncons() (rune, Text, bool) {
	if len(t.s) == 0 {
		return 0, Empty, false
	}

	r, size := utf8x.DecodeRune(t.s, 0)

	return r, t.copyRange(size, len(t.s)), true
}

// Unsnoc splits off the last codepoint, returning the initial remainder and
// the codepoint. Empty values yield ok=false.
func (t Text) Unsnoc() (Text, rune, bool) {
	if len(t.s) == 0 {
		return Empty, 0, false
	}

	r, size := utf8x.DecodeLastRune(t.s, len(t.s))

	return t.copyRange(0, len(t.s)-size), r, true
}
