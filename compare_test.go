package tinytext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.True(t, MustFromString("abc").Equal(MustFromString("abc")))
	require.False(t, MustFromString("abc").Equal(MustFromString("abd")))
	require.False(t, MustFromString("abc").Equal(MustFromString("ab")))
	require.True(t, Empty.Equal(Empty))
}

func TestCompare(t *testing.T) {
	a := MustFromString("abc")
	b := MustFromString("abd")

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(MustFromString("abc")))

	// Shorter sorts before a longer value sharing it as prefix.
	require.Equal(t, -1, MustFromString("ab").Compare(a))
	require.Equal(t, -1, Empty.Compare(a))
}

func TestCompareMatchesCodepointOrder(t *testing.T) {
	// U+00E9 (2 bytes) < U+20AC (3 bytes) < U+1031A (4 bytes): byte order
	// and codepoint order agree across encoded lengths.
	low := Singleton(0xE9)
	mid := Singleton(0x20AC)
	high := Singleton(0x1031A)

	require.Equal(t, -1, low.Compare(mid))
	require.Equal(t, -1, mid.Compare(high))
	require.Equal(t, -1, Singleton(0x7F).Compare(low))
}

func TestHashEqualityProperty(t *testing.T) {
	a := MustFromString("interned")
	b := MustFromString("interned")
	require.Equal(t, a.Hash(), b.Hash())

	require.NotEqual(t, a.Hash(), MustFromString("Interned").Hash())
	require.Equal(t, Empty.Hash(), Empty.Hash())
}
