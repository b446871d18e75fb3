package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NotNil(t *testing.T) {
	l := New("test")

	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()

	require.NotNil(t, l)
	// Must not panic and must not write anywhere.
	assert.NotPanics(t, func() {
		l.Debug().Str("k", "v").Msg("discarded")
		l.Error().Msg("also discarded")
	})
}
