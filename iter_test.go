package tinytext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllYieldsOffsetsAndRunes(t *testing.T) {
	v := MustFromString("a€z")

	var offs []Offset
	var runes []rune
	for off, r := range v.All() {
		offs = append(offs, off)
		runes = append(runes, r)
	}

	require.Equal(t, []Offset{0, 1, 4}, offs) // euro sign occupies bytes 1-3
	require.Equal(t, []rune{'a', 0x20AC, 'z'}, runes)
}

func TestAllEarlyBreak(t *testing.T) {
	v := MustFromString("abcdef")

	n := 0
	for _, r := range v.All() {
		n++
		if r == 'c' {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestAllRestartable(t *testing.T) {
	v := MustFromString("ab")
	seq := v.All()

	for range 2 {
		var got []rune
		for _, r := range seq {
			got = append(got, r)
		}
		require.Equal(t, []rune{'a', 'b'}, got)
	}
}

func TestBackward(t *testing.T) {
	v := MustFromString("a€z")

	var offs []Offset
	var runes []rune
	for off, r := range v.Backward() {
		offs = append(offs, off)
		runes = append(runes, r)
	}

	require.Equal(t, []Offset{4, 1, 0}, offs)
	require.Equal(t, []rune{'z', 0x20AC, 'a'}, runes)
}

func TestBackwardAgreesWithAll(t *testing.T) {
	v := MustFromString("abé\U0001031Acd")

	var forward []rune
	for _, r := range v.All() {
		forward = append(forward, r)
	}

	var backward []rune
	for _, r := range v.Backward() {
		backward = append(backward, r)
	}

	for i, r := range forward {
		require.Equal(t, r, backward[len(backward)-1-i])
	}
}

func TestIterateEmpty(t *testing.T) {
	for range Empty.All() {
		t.Fatal("empty value must not yield")
	}
	for range Empty.Backward() {
		t.Fatal("empty value must not yield")
	}
}
