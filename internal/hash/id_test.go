package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestSumMatchesSumString(t *testing.T) {
	inputs := []string{"", "a", "interned-identifier", "abcd€"}
	for _, s := range inputs {
		require.Equal(t, Sum([]byte(s)), SumString(s), "input %q", s)
	}
}

func TestSumIsXXHash64(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("tinytext"), SumString("tinytext"))
}

func TestSumDistinguishesContent(t *testing.T) {
	require.NotEqual(t, SumString("abc"), SumString("abd"))
}
