package dict

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/tinytext/compress"
	"github.com/arloliu/tinytext/endian"
	"github.com/arloliu/tinytext/errs"
)

const (
	// MagicNumber identifies a dictionary blob, stored little-endian in the
	// first two bytes regardless of the endianness option.
	MagicNumber uint16 = 0xEB7E

	// Version is the current format version.
	Version uint8 = 1

	// HeaderSize is the fixed size of the blob header in bytes.
	HeaderSize = 16

	// ChecksumSize is the size of the trailing xxHash64 checksum.
	ChecksumSize = 8
)

// optBigEndian marks the numeric header and checksum fields as big-endian.
const optBigEndian uint8 = 0x01

// Header is the fixed-size dictionary blob header.
type Header struct {
	Version     uint8
	Compression compress.Type
	Options     uint8
	EntryCount  uint32
	PayloadSize uint32
}

// NewHeader creates a header with the current version and the given
// compression and endianness.
func NewHeader(compression compress.Type, bigEndian bool) Header {
	var opts uint8
	if bigEndian {
		opts |= optBigEndian
	}

	return Header{
		Version:     Version,
		Compression: compression,
		Options:     opts,
	}
}

// Engine returns the endian engine for the header's numeric fields.
func (h Header) Engine() endian.EndianEngine {
	if h.Options&optBigEndian != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// AppendTo appends the 16-byte serialized header to b.
func (h Header) AppendTo(b []byte) []byte {
	b = binary.LittleEndian.AppendUint16(b, MagicNumber)
	b = append(b, h.Version, uint8(h.Compression), h.Options, 0, 0, 0)

	engine := h.Engine()
	b = engine.AppendUint32(b, h.EntryCount)
	b = engine.AppendUint32(b, h.PayloadSize)

	return b
}

// Parse parses and validates a serialized header. data must be exactly
// HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if binary.LittleEndian.Uint16(data[0:2]) != MagicNumber {
		return errs.ErrInvalidMagic
	}

	h.Version = data[2]
	if h.Version != Version {
		return fmt.Errorf("version %d: %w", h.Version, errs.ErrInvalidVersion)
	}

	h.Compression = compress.Type(data[3])
	if !h.Compression.Valid() {
		return fmt.Errorf("flag 0x%02X: %w", data[3], errs.ErrInvalidCompression)
	}

	h.Options = data[4]

	engine := h.Engine()
	h.EntryCount = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])

	return nil
}
