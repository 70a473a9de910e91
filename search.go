package tinytext

import "github.com/arloliu/tinytext/internal/utf8x"

// Find returns the leftmost codepoint satisfying pred, or ok=false when no
// codepoint matches. The scan stops at the first match.
func (t Text) Find(pred func(rune) bool) (rune, bool) {
	for off := 0; off < len(t.s); {
		r, size := utf8x.DecodeRune(t.s, off)
		if pred(r) {
			return r, true
		}
		off += size
	}

	return 0, false
}

// FindIndex returns the codepoint index of the leftmost codepoint satisfying
// pred, or ok=false when no codepoint matches.
func (t Text) FindIndex(pred func(rune) bool) (Count, bool) {
	var i Count
	for off := 0; off < len(t.s); {
		r, size := utf8x.DecodeRune(t.s, off)
		if pred(r) {
			return i, true
		}
		off += size
		i++
	}

	return 0, false
}

// Every reports whether pred holds for every codepoint. It is vacuously true
// for the empty value and short-circuits on the first failure.
func (t Text) Every(pred func(rune) bool) bool {
	for off := 0; off < len(t.s); {
		r, size := utf8x.DecodeRune(t.s, off)
		if !pred(r) {
			return false
		}
		off += size
	}

	return true
}

// Span splits the value into its longest prefix whose codepoints all satisfy
// pred, and the remainder. The two halves concatenate back to the original.
func (t Text) Span(pred func(rune) bool) (Text, Text) {
	off := 0
	for off < len(t.s) {
		r, size := utf8x.DecodeRune(t.s, off)
		if !pred(r) {
			break
		}
		off += size
	}

	switch off {
	case 0:
		return Empty, t
	case len(t.s):
		return t, Empty
	}

	return t.copyRange(0, off), t.copyRange(off, len(t.s))
}

// SpanEnd is the backward analogue of Span: it returns the remainder and the
// longest suffix whose codepoints all satisfy pred, in that order, so the
// two halves concatenate back to the original.
func (t Text) SpanEnd(pred func(rune) bool) (Text, Text) {
	off := len(t.s)
	for off > 0 {
		r, size := utf8x.DecodeLastRune(t.s, off)
		if !pred(r) {
			break
		}
		off -= size
	}

	switch off {
	case 0:
		return Empty, t
	case len(t.s):
		return t, Empty
	}

	return t.copyRange(0, off), t.copyRange(off, len(t.s))
}

// HasPrefix reports whether p is a prefix of t. It compares raw bytes after
// a cheap length reject and never decodes. Empty is a prefix of everything;
// every value is its own prefix.
func (t Text) HasPrefix(p Text) bool {
	return len(t.s) >= len(p.s) && t.s[:len(p.s)] == p.s
}

// HasSuffix reports whether p is a suffix of t, by raw byte comparison.
func (t Text) HasSuffix(p Text) bool {
	return len(t.s) >= len(p.s) && t.s[len(t.s)-len(p.s):] == p.s
}
