package tinytext

import (
	"iter"

	"github.com/arloliu/tinytext/internal/utf8x"
)

// All returns a forward iterator over the value's codepoints, yielding each
// codepoint's starting byte offset and decoded value in increasing offset
// order.
//
// The sequence is finite and restartable; ranging over it again restarts
// from the beginning.
//
// Example:
//
//	for off, r := range v.All() {
//	    fmt.Printf("%d: %c\n", off, r)
//	}
func (t Text) All() iter.Seq2[Offset, rune] {
	return func(yield func(Offset, rune) bool) {
		for off := 0; off < len(t.s); {
			r, size := utf8x.DecodeRune(t.s, off)
			if !yield(Offset(off), r) {
				return
			}
			off += size
		}
	}
}

// Backward returns the right-to-left analogue of All: codepoints in
// decreasing offset order, each yielded with the byte offset of its first
// byte. The last codepoint comes first; the sequence terminates at offset 0.
func (t Text) Backward() iter.Seq2[Offset, rune] {
	return func(yield func(Offset, rune) bool) {
		for off := len(t.s); off > 0; {
			r, size := utf8x.DecodeLastRune(t.s, off)
			off -= size
			if !yield(Offset(off), r) {
				return
			}
		}
	}
}
