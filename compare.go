package tinytext

import "github.com/arloliu/tinytext/internal/hash"

// Equal reports whether two values hold identical byte content. Defined by
// raw buffer comparison, never by decoding.
func (t Text) Equal(o Text) bool {
	return t.s == o.s
}

// Compare orders two values by lexicographic byte comparison with length as
// the final tie-break: a value sorts before any longer value that has it as
// a prefix. Because UTF-8 preserves codepoint order in byte order, this
// coincides exactly with codepoint-wise lexicographic ordering.
//
// Returns -1, 0, or +1.
func (t Text) Compare(o Text) int {
	switch {
	case t.s < o.s:
		return -1
	case t.s > o.s:
		return 1
	default:
		return 0
	}
}

// Hash returns the xxHash64 of the value's raw bytes. Equal values always
// hash equal, so the result is usable directly as a hash-table key
// contribution.
func (t Text) Hash() uint64 {
	return hash.SumString(t.s)
}
