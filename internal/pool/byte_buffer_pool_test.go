package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap()) // allocation retained
}

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("abcd"))

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte("abcd"), bb.Bytes()) // content preserved

	// Growing within capacity is a no-op.
	c := bb.Cap()
	bb.Grow(1)
	require.Equal(t, c, bb.Cap())
}

func TestPoolReuse(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	got := p.Get()
	require.Equal(t, 0, got.Len()) // always handed out empty
}

func TestPoolDropsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.Grow(1024)
	require.Greater(t, bb.Cap(), 16)
	p.Put(bb) // must not be retained; nothing to assert beyond no panic

	got := p.Get()
	got.MustWrite([]byte("x"))
	require.Equal(t, 1, got.Len())
}

func TestDictBufferHelpers(t *testing.T) {
	bb := GetDictBuffer()
	require.Equal(t, 0, bb.Len())
	bb.MustWrite([]byte("payload"))
	PutDictBuffer(bb)
}
