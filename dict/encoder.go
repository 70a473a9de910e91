package dict

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/tinytext"
	"github.com/arloliu/tinytext/compress"
	"github.com/arloliu/tinytext/errs"
	"github.com/arloliu/tinytext/internal/hash"
	"github.com/arloliu/tinytext/internal/options"
	"github.com/arloliu/tinytext/internal/pool"
)

// Encoder builds a dictionary blob incrementally. Entries are appended with
// Add or AddString and the blob is produced by a single Finish call, after
// which the encoder must not be reused.
//
// Encoders are not safe for concurrent use.
type Encoder struct {
	buf         *pool.ByteBuffer
	codec       compress.Codec
	compression compress.Type
	bigEndian   bool
	count       int
	finished    bool
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the payload compression codec.
// Default is compress.TypeNone.
func WithCompression(t compress.Type) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !t.Valid() {
			return fmt.Errorf("compression %s: %w", t, errs.ErrInvalidCompression)
		}
		e.compression = t

		return nil
	})
}

// WithBigEndian stores the numeric header and checksum fields big-endian,
// for readers on big-endian hosts. Default is little-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = true
	})
}

// WithLittleEndian stores the numeric header and checksum fields
// little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = false
	})
}

// WithSizeHint pre-reserves payload capacity for the expected total entry
// bytes, avoiding intermediate growth for dictionaries of known size.
func WithSizeHint(payloadBytes int) EncoderOption {
	return options.NoError(func(e *Encoder) {
		if payloadBytes > 0 {
			e.buf.Grow(payloadBytes)
		}
	})
}

// NewEncoder creates an encoder with the given options.
//
// Returns:
//   - *Encoder: The configured encoder.
//   - error: An error if an option is invalid (e.g. unknown compression).
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		buf:         pool.GetDictBuffer(),
		compression: compress.TypeNone,
	}

	if err := options.Apply(enc, opts...); err != nil {
		pool.PutDictBuffer(enc.buf)
		return nil, err
	}

	codec, err := compress.GetCodec(enc.compression)
	if err != nil {
		pool.PutDictBuffer(enc.buf)
		return nil, err
	}
	enc.codec = codec

	return enc, nil
}

// Add appends one value to the dictionary payload. Values arrive already
// validated by construction, so no re-validation happens here.
func (e *Encoder) Add(v tinytext.Text) {
	s := v.String()
	e.buf.Grow(binary.MaxVarintLen64 + len(s))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(s)))
	e.buf.MustWrite([]byte(s))
	e.count++
}

// AddString validates s and appends it, the checked shortcut for callers
// holding raw strings rather than Text values.
func (e *Encoder) AddString(s string) error {
	v, err := tinytext.FromString(s)
	if err != nil {
		return fmt.Errorf("entry %d: %w", e.count, err)
	}
	e.Add(v)

	return nil
}

// Len returns the number of entries added so far.
func (e *Encoder) Len() int {
	return e.count
}

// Finish compresses the payload, assembles the blob and releases the
// encoder's internal buffer. The encoder must not be used afterward.
//
// Returns:
//   - []byte: The complete dictionary blob, owned by the caller.
//   - error: errs.ErrEncoderFinished on reuse, errs.ErrPayloadTooLarge if
//     the entry count or payload exceeds the header's 32-bit fields, or a
//     compression error.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer func() {
		pool.PutDictBuffer(e.buf)
		e.buf = nil
	}()

	payload := e.buf.Bytes()
	if uint64(e.count) > math.MaxUint32 || uint64(len(payload)) > math.MaxUint32 {
		return nil, errs.ErrPayloadTooLarge
	}

	header := NewHeader(e.compression, e.bigEndian)
	header.EntryCount = uint32(e.count)
	header.PayloadSize = uint32(len(payload))

	checksum := hash.Sum(payload)

	body, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	blob := make([]byte, 0, HeaderSize+len(body)+ChecksumSize)
	blob = header.AppendTo(blob)
	blob = append(blob, body...)
	blob = header.Engine().AppendUint64(blob, checksum)

	return blob, nil
}
