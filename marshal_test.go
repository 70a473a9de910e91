package tinytext

import (
	"testing"

	"github.com/arloliu/tinytext/errs"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "abcd€", "\U0001031A"} {
		v := MustFromString(s)

		data, err := v.MarshalBinary()
		require.NoError(t, err)

		var back Text
		require.NoError(t, back.UnmarshalBinary(data))
		require.True(t, back.Equal(v), "input %q", s)
	}
}

func TestMarshalFrameLayout(t *testing.T) {
	v := MustFromString("abc")

	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 'a', 'b', 'c'}, data)
}

func TestAppendBinarySelfDelimiting(t *testing.T) {
	a := MustFromString("ab")
	b := MustFromString("€")

	buf, err := a.AppendBinary(nil)
	require.NoError(t, err)
	buf, err = b.AppendBinary(buf)
	require.NoError(t, err)

	// First frame decodes cleanly from a prefix of the stream.
	require.Equal(t, byte(2), buf[0])
	var first Text
	require.NoError(t, first.UnmarshalBinary(buf[:3]))
	require.True(t, first.Equal(a))
}

func TestUnmarshalTruncated(t *testing.T) {
	var v Text
	require.ErrorIs(t, v.UnmarshalBinary(nil), errs.ErrTruncatedData)
	require.ErrorIs(t, v.UnmarshalBinary([]byte{0x05, 'a', 'b'}), errs.ErrTruncatedData)
}

func TestUnmarshalTrailingBytes(t *testing.T) {
	var v Text
	err := v.UnmarshalBinary([]byte{0x01, 'a', 'b'})
	require.ErrorIs(t, err, errs.ErrTrailingBytes)
}

func TestUnmarshalRevalidates(t *testing.T) {
	var v Text
	err := v.UnmarshalBinary([]byte{0x03, 0xED, 0xA0, 0x80}) // framed surrogate
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}
