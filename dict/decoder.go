package dict

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/tinytext"
	"github.com/arloliu/tinytext/compress"
	"github.com/arloliu/tinytext/errs"
	"github.com/arloliu/tinytext/internal/hash"
)

// Decoder holds a fully parsed dictionary blob. All validation happens in
// NewDecoder: header fields, checksum, entry framing and each entry's UTF-8.
// A constructed Decoder therefore only hands out valid values.
type Decoder struct {
	header Header
	texts  []tinytext.Text
}

// NewDecoder parses and validates blob.
//
// Every entry is materialized through the checked construction path, so each
// decoded value owns its bytes and the blob may be discarded or reused after
// this call returns.
//
// Returns:
//   - *Decoder: The parsed dictionary.
//   - error: A wrapped sentinel from the errs package naming the first
//     violation: short blob, bad magic/version/compression, size or checksum
//     mismatch, truncated or oversized entry framing, or invalid UTF-8.
func NewDecoder(blob []byte) (*Decoder, error) {
	if len(blob) < HeaderSize+ChecksumSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	d := &Decoder{}
	if err := d.header.Parse(blob[:HeaderSize]); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(d.header.Compression)
	if err != nil {
		return nil, err
	}

	body := blob[HeaderSize : len(blob)-ChecksumSize]
	payload, err := codec.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if uint64(len(payload)) != uint64(d.header.PayloadSize) {
		return nil, fmt.Errorf("payload size %d, header declares %d: %w",
			len(payload), d.header.PayloadSize, errs.ErrTruncatedData)
	}

	stored := d.header.Engine().Uint64(blob[len(blob)-ChecksumSize:])
	if hash.Sum(payload) != stored {
		return nil, errs.ErrChecksumMismatch
	}

	texts, err := parsePayload(payload, int(d.header.EntryCount))
	if err != nil {
		return nil, err
	}
	d.texts = texts

	return d, nil
}

// parsePayload walks count uvarint length-prefixed entries, re-validating
// each entry's UTF-8 through the checked constructor.
func parsePayload(payload []byte, count int) ([]tinytext.Text, error) {
	texts := make([]tinytext.Text, 0, count)
	off := 0
	for i := 0; i < count; i++ {
		size, n := binary.Uvarint(payload[off:])
		if n <= 0 {
			return nil, fmt.Errorf("entry %d: malformed length prefix: %w",
				i, errs.ErrTruncatedData)
		}
		off += n

		if size > uint64(len(payload)-off) {
			return nil, fmt.Errorf("entry %d: need %d bytes, have %d: %w",
				i, size, len(payload)-off, errs.ErrTruncatedData)
		}

		v, err := tinytext.FromBytes(payload[off : off+int(size)])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		texts = append(texts, v)
		off += int(size)
	}

	if off != len(payload) {
		return nil, fmt.Errorf("%d bytes after last entry: %w",
			len(payload)-off, errs.ErrTrailingBytes)
	}

	return texts, nil
}

// Count returns the number of entries in the dictionary.
func (d *Decoder) Count() int {
	return len(d.texts)
}

// Compression returns the codec the blob was written with.
func (d *Decoder) Compression() compress.Type {
	return d.header.Compression
}

// All returns an iterator over the entries in insertion order.
func (d *Decoder) All() iter.Seq2[int, tinytext.Text] {
	return func(yield func(int, tinytext.Text) bool) {
		for i, v := range d.texts {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Texts returns the entries in insertion order as a fresh slice.
func (d *Decoder) Texts() []tinytext.Text {
	return slices.Clone(d.texts)
}
