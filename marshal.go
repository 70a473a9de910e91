package tinytext

import (
	"encoding"
	"encoding/binary"
	"fmt"

	"github.com/arloliu/tinytext/errs"
)

var (
	_ encoding.BinaryMarshaler   = Text{}
	_ encoding.BinaryAppender    = Text{}
	_ encoding.BinaryUnmarshaler = (*Text)(nil)
)

// AppendBinary appends the value's self-delimiting serialized form to b: a
// uvarint byte-length prefix followed by the raw UTF-8 payload. The frame is
// safe to embed in larger streams; the error result is always nil and exists
// to satisfy encoding.BinaryAppender.
func (t Text) AppendBinary(b []byte) ([]byte, error) {
	b = binary.AppendUvarint(b, uint64(len(t.s)))

	return append(b, t.s...), nil
}

// MarshalBinary returns the value's serialized form, see AppendBinary.
func (t Text) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, binary.MaxVarintLen64+len(t.s)))
}

// UnmarshalBinary decodes a frame produced by MarshalBinary. It re-runs full
// UTF-8 validation rather than adopting the bytes unchecked, and rejects
// truncated frames and trailing bytes with descriptive errors.
func (t *Text) UnmarshalBinary(data []byte) error {
	size, n := binary.Uvarint(data)
	if n <= 0 {
		return fmt.Errorf("tinytext: malformed length prefix: %w", errs.ErrTruncatedData)
	}

	payload := data[n:]
	if uint64(len(payload)) < size {
		return fmt.Errorf("tinytext: need %d payload bytes, have %d: %w",
			size, len(payload), errs.ErrTruncatedData)
	}
	if uint64(len(payload)) > size {
		return fmt.Errorf("tinytext: %d bytes after payload: %w",
			uint64(len(payload))-size, errs.ErrTrailingBytes)
	}

	v, err := FromBytes(payload)
	if err != nil {
		return fmt.Errorf("tinytext: unmarshal payload: %w", err)
	}
	*t = v

	return nil
}
