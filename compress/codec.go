// Package compress provides the payload compression codecs for dictionary
// blobs.
//
// Dictionary payloads are runs of uvarint length-prefixed short strings;
// they compress well because identifiers within one program share prefixes
// and character classes. The codec is selected per blob through a flag byte
// in the dictionary header.
//
// Codec selection guidance:
//   - TypeNone: payloads already tiny, or CPU-bound encode paths
//   - TypeZstd: best ratio, the default for stored dictionaries
//   - TypeS2: fastest, moderate ratio
//   - TypeLZ4: fast with slightly better ratio than S2 on text
package compress

import "fmt"

// Type identifies a compression codec in the dictionary header flag byte.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores the payload uncompressed.
	TypeZstd Type = 0x2 // TypeZstd selects Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 selects S2 (Snappy-compatible) compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 selects LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether t names a known codec.
func (t Type) Valid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}

// Compressor compresses a complete payload in one call.
type Compressor interface {
	// Compress compresses data and returns the result. The returned slice is
	// newly allocated and owned by the caller (except for the no-op codec,
	// which passes data through); the input is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload. It
	// validates the compressed format and returns an error for corrupted or
	// mismatched input rather than producing garbage.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; every built-in implementation is stateless
// (or pools its state) and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the given type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
