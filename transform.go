package tinytext

import (
	"github.com/arloliu/tinytext/internal/buffer"
	"github.com/arloliu/tinytext/internal/utf8x"
)

// Cons prepends one codepoint, sanitized like FromRunes. The new value is
// built with one exact-size allocation: RuneLen(r) + Size(t).
func (t Text) Cons(r rune) Text {
	r = utf8x.Sanitize(r)
	size := utf8x.RuneLen(r)

	bld := buffer.New(size + len(t.s))
	utf8x.EncodeRune(bld.B, 0, r)
	bld.Copy(size, t.s, 0, len(t.s))

	return Text{s: bld.Freeze()}
}

// Snoc appends one codepoint, sanitized like FromRunes.
func (t Text) Snoc(r rune) Text {
	r = utf8x.Sanitize(r)

	bld := buffer.New(len(t.s) + utf8x.RuneLen(r))
	bld.Copy(0, t.s, 0, len(t.s))
	utf8x.EncodeRune(bld.B, len(t.s), r)

	return Text{s: bld.Freeze()}
}

// Filter keeps the codepoints satisfying pred, preserving their order.
//
// When nothing is rejected the receiver is returned as-is with no
// allocation. Otherwise the accepted prefix up to the first rejected
// codepoint is copied verbatim, the remainder is scanned and conditionally
// copied into an upper-bound buffer, and the result is shrunk to the bytes
// actually written.
func (t Text) Filter(pred func(rune) bool) Text {
	// Locate the first rejected codepoint.
	off := 0
	var rejected int
	for off < len(t.s) {
		r, size := utf8x.DecodeRune(t.s, off)
		if !pred(r) {
			rejected = size
			break
		}
		off += size
	}
	if off == len(t.s) {
		return t
	}

	// Upper bound: everything except the rejected codepoint just found.
	bld := buffer.New(len(t.s) - rejected)
	w := bld.Copy(0, t.s, 0, off)
	for i := off + rejected; i < len(t.s); {
		r, size := utf8x.DecodeRune(t.s, i)
		if pred(r) {
			w += bld.Copy(w, t.s, i, i+size)
		}
		i += size
	}

	if w == 0 {
		return Empty
	}

	return Text{s: bld.FreezeTo(w)}
}

// Intersperse inserts sep (sanitized) between successive codepoints:
// "MASH" interspersed with '*' is "M*A*S*H". Values of zero or one
// codepoint are returned unchanged.
func (t Text) Intersperse(sep rune) Text {
	n := t.Len()
	if n <= 1 {
		return t
	}

	sep = utf8x.Sanitize(sep)
	sepLen := utf8x.RuneLen(sep)

	// Exact size, computed before the single allocation.
	bld := buffer.New(len(t.s) + int(n-1)*sepLen)
	w := 0
	first := true
	for off := 0; off < len(t.s); {
		_, size := utf8x.DecodeRune(t.s, off)
		if !first {
			w += utf8x.EncodeRune(bld.B, w, sep)
		}
		first = false
		w += bld.Copy(w, t.s, off, off+size)
		off += size
	}

	return Text{s: bld.Freeze()}
}

// Reverse re-emits the codepoints in reverse order. Each codepoint's own
// byte sequence is copied intact, not byte-reversed, so the result is the
// same byte size and remains valid UTF-8. Values of zero or one codepoint
// are returned unchanged.
func (t Text) Reverse() Text {
	if len(t.s) == 0 {
		return t
	}
	if _, size := utf8x.DecodeRune(t.s, 0); size == len(t.s) {
		return t
	}

	bld := buffer.New(len(t.s))
	w := len(t.s)
	for off := 0; off < len(t.s); {
		_, size := utf8x.DecodeRune(t.s, off)
		w -= size
		bld.Copy(w, t.s, off, off+size)
		off += size
	}

	return Text{s: bld.Freeze()}
}

// Repeat concatenates n copies of the value. n <= 0 or an empty value
// yields Empty; n == 1 returns the receiver unchanged. Panics if the result
// size would overflow int, treating it as resource exhaustion rather than a
// recoverable condition.
func (t Text) Repeat(n int) Text {
	if n <= 0 || len(t.s) == 0 {
		return Empty
	}
	if n == 1 {
		return t
	}
	if n > maxInt/len(t.s) {
		panic("tinytext: Repeat result size overflows")
	}

	bld := buffer.New(n * len(t.s))
	w := 0
	for range n {
		w += bld.Copy(w, t.s, 0, len(t.s))
	}

	return Text{s: bld.Freeze()}
}

const maxInt = int(^uint(0) >> 1)

// Concat concatenates the given values into one exact-size allocation.
// Empty operands are identities; an empty result is Empty, and a single
// non-empty operand is returned as-is.
func Concat(parts ...Text) Text {
	size := 0
	last := -1
	for i, p := range parts {
		if len(p.s) == 0 {
			continue
		}
		size += len(p.s)
		last = i
	}
	if size == 0 {
		return Empty
	}
	if size == len(parts[last].s) {
		return parts[last]
	}

	bld := buffer.New(size)
	w := 0
	for _, p := range parts {
		w += bld.Copy(w, p.s, 0, len(p.s))
	}

	return Text{s: bld.Freeze()}
}

// Intercalate inserts sep between successive elements of parts and
// concatenates the result. An empty list yields Empty; a singleton list
// yields its element unchanged; an empty separator degenerates to Concat.
func Intercalate(sep Text, parts []Text) Text {
	switch len(parts) {
	case 0:
		return Empty
	case 1:
		return parts[0]
	}
	if len(sep.s) == 0 {
		return Concat(parts...)
	}

	size := (len(parts) - 1) * len(sep.s)
	for _, p := range parts {
		size += len(p.s)
	}

	bld := buffer.New(size)
	w := 0
	for i, p := range parts {
		if i > 0 {
			w += bld.Copy(w, sep.s, 0, len(sep.s))
		}
		w += bld.Copy(w, p.s, 0, len(p.s))
	}

	return Text{s: bld.Freeze()}
}
