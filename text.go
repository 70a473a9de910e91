// Package tinytext provides a compact, immutable Unicode text value: a byte
// sequence guaranteed to be well-formed UTF-8, exposing codepoint-level
// operations without the pointer-heavy overhead of general-purpose string
// containers.
//
// It targets programs holding very large numbers of short strings (symbol
// tables, interned identifiers, parsed tokens) where per-value memory
// overhead dominates. Every value owns exactly one exact-fit buffer; derived
// values never share storage with their source, so holding a small derived
// value never keeps a larger backing buffer alive.
//
// # Core Features
//
//   - Strict UTF-8 validation on checked construction (overlong forms,
//     surrogates and out-of-range values rejected)
//   - Codepoint-level indexing, splitting, searching and transformation
//   - Single exact-size allocation per derived value, no growth or slack
//   - Byte-wise equality and ordering that coincide with codepoint order
//   - xxHash64 content hashing for hash-based tables
//   - Self-delimiting binary serialization with re-validation on decode
//
// # Basic Usage
//
//	v, err := tinytext.FromString("M*A*S*H")
//	if err != nil {
//	    return err
//	}
//
//	first, rest, _ := v.Uncons()          // 'M', "*A*S*H"
//	left, right := v.SplitAt(2)           // "M*", "A*S*H"
//	n := v.Len()                           // 7 codepoints
//	_ = first
//	_, _, _ = rest, left, right
//
//	for off, r := range v.All() {
//	    fmt.Printf("%d: %c\n", off, r)
//	}
//
// # Immutability and Concurrency
//
// Values are immutable after construction and safe to share across
// goroutines without synchronization. The only mutable state in the package
// is the transient build buffer local to one construction call, never
// exposed past that call's completion.
//
// # Byte Offsets vs Codepoint Counts
//
// Positions measured in encoded bytes ([Offset]) and positions measured in
// decoded codepoints ([Count]) are distinct types, so mixing them is a
// compile error. There is no O(1) random access by codepoint index; every
// count-based operation translates to a byte offset with a linear scan.
//
// # Related Packages
//
// The dict package serializes sets of values into a self-describing,
// optionally compressed blob; the intern package deduplicates equal values
// behind canonical instances.
package tinytext

import (
	"fmt"

	"github.com/arloliu/tinytext/errs"
	"github.com/arloliu/tinytext/internal/buffer"
	"github.com/arloliu/tinytext/internal/utf8x"
)

// Offset is a position measured in encoded UTF-8 bytes.
type Offset int

// Count is a quantity measured in Unicode scalar values (codepoints).
type Count int

// Text is an immutable, well-formed UTF-8 text value. The zero value is the
// empty text. Values constructed through checked paths always hold valid
// UTF-8; values adopted through FromBytesUnsafe carry the caller's validity
// obligation instead.
type Text struct {
	s string
}

// Empty is the canonical zero-length value. It is the identity for Concat
// and Intercalate with an empty separator.
var Empty = Text{}

// FromBytes copies data into a freshly owned value after validating that it
// is well-formed UTF-8.
//
// Returns:
//   - Text: The constructed value (Empty on error).
//   - error: errs.ErrInvalidUTF8 if data is malformed, overlong,
//     surrogate-containing, or encodes a value above U+10FFFF.
func FromBytes(data []byte) (Text, error) {
	if !utf8x.Valid(data) {
		return Empty, errs.ErrInvalidUTF8
	}
	if len(data) == 0 {
		return Empty, nil
	}

	bld := buffer.New(len(data))
	copy(bld.B, data)

	return Text{s: bld.Freeze()}, nil
}

// FromString validates s and adopts it directly; Go strings are already
// immutable, so no copy is made.
func FromString(s string) (Text, error) {
	if !utf8x.ValidString(s) {
		return Empty, errs.ErrInvalidUTF8
	}

	return Text{s: s}, nil
}

// MustFromString is FromString for string literals and other inputs known to
// be valid; it panics on invalid UTF-8.
func MustFromString(s string) Text {
	v, err := FromString(s)
	if err != nil {
		panic(fmt.Sprintf("tinytext: MustFromString(%q): %v", s, err))
	}

	return v
}

// FromBytesUnsafe adopts data without validation and without copying.
//
// The caller must guarantee that data is well-formed UTF-8 and is never
// mutated after this call. Violating either obligation makes the behavior of
// every subsequent operation on the value undefined, including equality and
// search, not merely this call. Use FromBytes unless profiling shows the
// validation or the copy matters.
func FromBytesUnsafe(data []byte) Text {
	return Text{s: (&buffer.Builder{B: data}).Freeze()}
}

// FromRunes builds a value from an arbitrary rune sequence. It is total:
// surrogates, negative values and values above U+10FFFF are replaced by
// U+FFFD before encoding, so invalid input degrades gracefully rather than
// failing. Do not rely on it to reject anything.
func FromRunes(rs []rune) Text {
	if len(rs) == 0 {
		return Empty
	}

	size := 0
	for _, r := range rs {
		size += utf8x.RuneLen(utf8x.Sanitize(r))
	}

	bld := buffer.New(size)
	off := 0
	for _, r := range rs {
		off += utf8x.EncodeRune(bld.B, off, utf8x.Sanitize(r))
	}

	return Text{s: bld.Freeze()}
}

// Singleton builds a one-codepoint value, sanitizing r like FromRunes.
func Singleton(r rune) Text {
	r = utf8x.Sanitize(r)
	bld := buffer.New(utf8x.RuneLen(r))
	utf8x.EncodeRune(bld.B, 0, r)

	return Text{s: bld.Freeze()}
}

// String returns the value's UTF-8 bytes as a string without copying.
// It also makes Text satisfy fmt.Stringer.
func (t Text) String() string {
	return t.s
}

// Bytes returns a copy of the value's raw UTF-8 bytes. The copy keeps the
// value immutable; mutate the returned slice freely.
func (t Text) Bytes() []byte {
	if len(t.s) == 0 {
		return nil
	}

	out := make([]byte, len(t.s))
	copy(out, t.s)

	return out
}

// Size returns the value's length in encoded bytes, O(1).
func (t Text) Size() Offset {
	return Offset(len(t.s))
}

// IsEmpty reports whether the value holds zero codepoints.
func (t Text) IsEmpty() bool {
	return len(t.s) == 0
}

// Len returns the number of codepoints in the value. Cost is a full forward
// scan, O(n) in bytes; prefer Size when byte length suffices.
func (t Text) Len() Count {
	var n Count
	for off := 0; off < len(t.s); {
		_, size := utf8x.DecodeRune(t.s, off)
		off += size
		n++
	}

	return n
}

// IsASCII reports whether every byte is below 0x80. Decided by a raw byte
// scan with no decoding, short-circuiting on the first non-ASCII byte.
func (t Text) IsASCII() bool {
	for i := 0; i < len(t.s); i++ {
		if t.s[i] >= 0x80 {
			return false
		}
	}

	return true
}

// Runes decodes the value into a fresh rune slice, the inverse of FromRunes.
func (t Text) Runes() []rune {
	if len(t.s) == 0 {
		return nil
	}

	rs := make([]rune, 0, len(t.s))
	for off := 0; off < len(t.s); {
		r, size := utf8x.DecodeRune(t.s, off)
		rs = append(rs, r)
		off += size
	}

	return rs
}

// copyRange copies t's bytes in [lo, hi) into a freshly owned value.
// Derived values never share storage, so even full-range copies allocate
// unless they can return t itself; callers special-case those.
func (t Text) copyRange(lo, hi int) Text {
	if lo == hi {
		return Empty
	}

	bld := buffer.New(hi - lo)
	bld.Copy(0, t.s, lo, hi)

	return Text{s: bld.Freeze()}
}
