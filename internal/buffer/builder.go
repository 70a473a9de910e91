// Package buffer implements the construction protocol for text values:
// allocate a build buffer of known or upper-bound size, fill it with codec
// writes and raw copies, optionally shrink to the bytes actually written,
// then freeze it into an immutable string.
//
// Every operation computes its exact or upper-bound output size before
// allocating, so a construction performs a single allocation and never grows.
// Freeze transfers ownership of the backing array into a string without
// copying; the builder is invalid afterward and must not be reused.
package buffer

import "unsafe"

// Builder is a transient, exclusively-owned build buffer. B is the backing
// byte slice, fully allocated at construction; callers write into it directly
// or through Copy.
type Builder struct {
	B []byte
}

// New allocates a build buffer of exactly size bytes.
func New(size int) *Builder {
	if size < 0 {
		panic("buffer: negative size")
	}

	return &Builder{B: make([]byte, size)}
}

// Copy copies s[lo:hi] into the build buffer at byte offset dst and returns
// the number of bytes copied. Panics on out-of-range offsets, matching the
// slice bounds discipline of the callers.
func (b *Builder) Copy(dst int, s string, lo, hi int) int {
	return copy(b.B[dst:], s[lo:hi])
}

// Freeze seals the entire buffer into an immutable string, transferring
// ownership of the backing array without a copy. The builder must not be
// used after Freeze returns.
func (b *Builder) Freeze() string {
	s := unsafe.String(unsafe.SliceData(b.B), len(b.B))
	b.B = nil

	return s
}

// FreezeTo truncates the buffer to n bytes and seals it, for constructions
// that allocated an upper bound and wrote fewer bytes. The returned string's
// length is exactly n; no slack capacity is observable past it. Panics if n
// is negative or beyond the buffer length.
func (b *Builder) FreezeTo(n int) string {
	if n < 0 || n > len(b.B) {
		panic("buffer: FreezeTo length out of range")
	}

	s := unsafe.String(unsafe.SliceData(b.B), n)
	b.B = nil

	return s
}
