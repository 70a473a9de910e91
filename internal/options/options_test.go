package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	compression byte
	bigEndian   bool
}

func TestApplyInOrder(t *testing.T) {
	cfg := &config{}
	err := Apply(cfg,
		NoError(func(c *config) { c.compression = 2 }),
		NoError(func(c *config) { c.bigEndian = true }),
	)
	require.NoError(t, err)
	require.Equal(t, byte(2), cfg.compression)
	require.True(t, cfg.bigEndian)
}

func TestApplyStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	cfg := &config{}
	err := Apply(cfg,
		New(func(c *config) error { return boom }),
		NoError(func(c *config) { c.compression = 9 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, byte(0), cfg.compression)
}

func TestApplyNoOptions(t *testing.T) {
	require.NoError(t, Apply(&config{}))
}
