package raderr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndIs(t *testing.T) {
	err := New(InvalidWaveform, "pulse_length %d exceeds prp %d", 10, 5)
	require.True(t, Is(err, InvalidWaveform))
	require.False(t, Is(err, InvalidConfig))
	require.Contains(t, err.Error(), "InvalidWaveform")
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ShapeMismatch, cause, "velocity field")
	require.True(t, Is(err, ShapeMismatch))
	require.ErrorIs(t, err, cause)
}
