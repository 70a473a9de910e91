// Package utf8x implements the UTF-8 codec that backs every tinytext
// operation: scalar-value encode/decode in 1-4 byte forms, backward decode
// for right-to-left scans, and strict whole-buffer validation.
//
// The decode functions trust their input: they are only ever invoked on
// buffers that passed Valid or that this library produced itself. Validation
// of untrusted bytes is the job of Valid/ValidString, which reject overlong
// encodings, surrogates, values above MaxRune, and truncated sequences.
package utf8x

const (
	// RuneError is the Unicode replacement character U+FFFD, substituted for
	// surrogates and out-of-range values during sanitization.
	RuneError = '�'

	// MaxRune is the maximum valid Unicode scalar value.
	MaxRune = '\U0010FFFF'

	// UTFMax is the maximum number of bytes in an encoded scalar value.
	UTFMax = 4
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	rune1Max = 1<<7 - 1  // U+007F, highest 1-byte value
	rune2Max = 1<<11 - 1 // U+07FF, highest 2-byte value
	rune3Max = 1<<16 - 1 // U+FFFF, highest 3-byte value

	tx    = 0b10000000 // continuation byte tag
	t2    = 0b11000000 // 2-byte lead tag
	t3    = 0b11100000 // 3-byte lead tag
	t4    = 0b11110000 // 4-byte lead tag
	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111
)

// IsSurrogate reports whether r falls in the UTF-16 surrogate range
// [0xD800, 0xDFFF], which is never a valid standalone scalar value.
func IsSurrogate(r rune) bool {
	return surrogateMin <= r && r <= surrogateMax
}

// Sanitize maps any value that is not a valid Unicode scalar value
// (surrogates, negatives, values above MaxRune) to RuneError.
//
// Construction from unconstrained rune sequences routes every input value
// through Sanitize before calling RuneLen or EncodeRune, keeping those
// primitives free of range checks.
func Sanitize(r rune) rune {
	if r < 0 || r > MaxRune || IsSurrogate(r) {
		return RuneError
	}

	return r
}

// RuneLen returns the number of bytes (1-4) in the UTF-8 encoding of r.
// r must be a valid scalar value; callers sanitize first.
func RuneLen(r rune) int {
	switch {
	case r <= rune1Max:
		return 1
	case r <= rune2Max:
		return 2
	case r <= rune3Max:
		return 3
	default:
		return 4
	}
}

// EncodeRune writes the UTF-8 encoding of r into p starting at off and
// returns the number of bytes written. The destination must have at least
// RuneLen(r) bytes available at off; r must be a valid scalar value.
func EncodeRune(p []byte, off int, r rune) int {
	switch i := uint32(r); {
	case i <= rune1Max:
		p[off] = byte(r)
		return 1
	case i <= rune2Max:
		_ = p[off+1] // single bounds check
		p[off] = t2 | byte(r>>6)
		p[off+1] = tx | byte(r)&maskx
		return 2
	case i <= rune3Max:
		_ = p[off+2]
		p[off] = t3 | byte(r>>12)
		p[off+1] = tx | byte(r>>6)&maskx
		p[off+2] = tx | byte(r)&maskx
		return 3
	default:
		_ = p[off+3]
		p[off] = t4 | byte(r>>18)
		p[off+1] = tx | byte(r>>12)&maskx
		p[off+2] = tx | byte(r>>6)&maskx
		p[off+3] = tx | byte(r)&maskx
		return 4
	}
}

// DecodeRune decodes the scalar value starting at byte offset off in s and
// returns it with its encoded length. The input must be valid UTF-8 with a
// sequence starting at off; behavior on malformed input is undefined.
func DecodeRune(s string, off int) (rune, int) {
	c := s[off]
	switch {
	case c < tx:
		return rune(c), 1
	case c < t3:
		return rune(c&mask2)<<6 |
			rune(s[off+1]&maskx), 2
	case c < t4:
		return rune(c&mask3)<<12 |
			rune(s[off+1]&maskx)<<6 |
			rune(s[off+2]&maskx), 3
	default:
		return rune(c&mask4)<<18 |
			rune(s[off+1]&maskx)<<12 |
			rune(s[off+2]&maskx)<<6 |
			rune(s[off+3]&maskx), 4
	}
}

// DecodeLastRune decodes the scalar value whose final byte sits immediately
// before byte offset off in s, returning the value and its encoded length.
// It agrees with DecodeRune applied at off-length. Same validity contract as
// DecodeRune; off must be a codepoint boundary greater than zero.
func DecodeLastRune(s string, off int) (rune, int) {
	start := off - 1
	// A valid sequence has at most 3 continuation bytes.
	for !RuneStart(s[start]) {
		start--
	}

	return DecodeRune(s, start)
}

// RuneStart reports whether b can be the first byte of an encoded scalar
// value (i.e. is not a continuation byte).
func RuneStart(b byte) bool {
	return b&0xC0 != tx
}

// Valid reports whether p consists entirely of well-formed UTF-8.
//
// It scans forward once with no backtracking and fails fast on the first
// violation: a truncated sequence, a stray continuation byte, an overlong
// encoding, an encoded surrogate, or a value above MaxRune.
func Valid(p []byte) bool {
	return valid(p)
}

// ValidString is Valid for string inputs.
func ValidString(s string) bool {
	return valid(s)
}

func valid[T ~[]byte | ~string](p T) bool {
	n := len(p)
	for i := 0; i < n; {
		c := p[i]
		if c < tx {
			i++
			continue
		}

		// Bounds on the second byte tighten for the lead bytes whose nominal
		// range would admit overlong forms (0xE0, 0xF0), surrogates (0xED),
		// or values above U+10FFFF (0xF4).
		var size int
		lo, hi := byte(0x80), byte(0xBF)
		switch {
		case c < 0xC2:
			// 0x80-0xBF: continuation byte with no lead.
			// 0xC0-0xC1: overlong 2-byte form.
			return false
		case c < 0xE0:
			size = 2
		case c < 0xF0:
			size = 3
			if c == 0xE0 {
				lo = 0xA0
			} else if c == 0xED {
				hi = 0x9F
			}
		case c < 0xF5:
			size = 4
			if c == 0xF0 {
				lo = 0x90
			} else if c == 0xF4 {
				hi = 0x8F
			}
		default:
			// 0xF5-0xFF can only encode values above U+10FFFF.
			return false
		}

		if n-i < size {
			return false
		}
		if d := p[i+1]; d < lo || d > hi {
			return false
		}
		for j := 2; j < size; j++ {
			if d := p[i+j]; d < 0x80 || d > 0xBF {
				return false
			}
		}

		i += size
	}

	return true
}
