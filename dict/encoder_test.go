package dict

import (
	"testing"

	"github.com/arloliu/tinytext"
	"github.com/arloliu/tinytext/compress"
	"github.com/arloliu/tinytext/errs"
	"github.com/stretchr/testify/require"
)

func TestNewEncoderDefaults(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	require.Equal(t, 0, enc.Len())

	blob, err := enc.Finish()
	require.NoError(t, err)
	require.Len(t, blob, HeaderSize+ChecksumSize) // empty payload, no body

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	require.Equal(t, 0, dec.Count())
	require.Equal(t, compress.TypeNone, dec.Compression())
}

func TestNewEncoderRejectsBadCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(compress.Type(0x99)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestEncoderAdd(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	enc.Add(tinytext.MustFromString("alpha"))
	enc.Add(tinytext.MustFromString("beta"))
	require.Equal(t, 2, enc.Len())

	blob, err := enc.Finish()
	require.NoError(t, err)

	// None-compressed payload sits verbatim between header and checksum.
	payload := blob[HeaderSize : len(blob)-ChecksumSize]
	require.Equal(t, []byte("\x05alpha\x04beta"), payload)
}

func TestEncoderAddString(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	require.NoError(t, enc.AddString("ok"))
	require.ErrorIs(t, enc.AddString("\xC0\x80"), errs.ErrInvalidUTF8)
	require.Equal(t, 1, enc.Len()) // rejected entry not counted
}

func TestEncoderFinishTwice(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	_, err = enc.Finish()
	require.NoError(t, err)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestEncoderWithSizeHint(t *testing.T) {
	enc, err := NewEncoder(WithSizeHint(1 << 16))
	require.NoError(t, err)

	enc.Add(tinytext.MustFromString("hinted"))
	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	require.Equal(t, 1, dec.Count())
}
