package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// Shaped like a dictionary payload: length-prefixed short identifiers
	// with shared prefixes.
	var buf bytes.Buffer
	for _, s := range []string{
		"http.request.count", "http.request.duration", "http.response.size",
		"db.query.count", "db.query.duration", "cache.hit", "cache.miss",
	} {
		buf.WriteByte(byte(len(s)))
		buf.WriteString(s)
	}

	return bytes.Repeat(buf.Bytes(), 16)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "None", TypeNone.String())
	require.Equal(t, "Zstd", TypeZstd.String())
	require.Equal(t, "S2", TypeS2.String())
	require.Equal(t, "LZ4", TypeLZ4.String())
	require.Equal(t, "Unknown", Type(0xFF).String())
}

func TestTypeValid(t *testing.T) {
	for _, ct := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		require.True(t, ct.Valid())
	}
	require.False(t, Type(0).Valid())
	require.False(t, Type(0x99).Valid())
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(Type(0x99))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestRoundTripAllCodecs(t *testing.T) {
	payload := testPayload()

	for _, ct := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "codec %s", ct)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "codec %s", ct)
		require.Equal(t, payload, restored, "codec %s", ct)
	}
}

func TestCompressReducesRepetitiveText(t *testing.T) {
	payload := []byte(strings.Repeat("interned.identifier.", 256))

	for _, ct := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "codec %s", ct)
	}
}

func TestNoOpSharesMemory(t *testing.T) {
	codec := NewNoOpCodec()
	data := []byte("unchanged")

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, &data[0], &out[0])

	out, err = codec.Decompress(data)
	require.NoError(t, err)
	require.Equal(t, &data[0], &out[0])
}

func TestDecompressEmpty(t *testing.T) {
	for _, ct := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		out, err := codec.Decompress(nil)
		require.NoError(t, err, "codec %s", ct)
		require.Empty(t, out, "codec %s", ct)
	}
}

func TestDecompressCorruptInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02}

	for _, ct := range []Type{TypeZstd, TypeS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, "codec %s", ct)
	}
}
