package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openthread/radarsim/raderr"
)

func simpleChirp(t *testing.T) *Waveform {
	w, err := New(Config{
		T:   []float64{0, 10e-6},
		F:   []float64{0, 1e6},
		PRP: []float64{20e-6, 20e-6, 20e-6},
	})
	require.NoError(t, err)
	return w
}

func TestNewValidatesShapes(t *testing.T) {
	_, err := New(Config{T: []float64{0, 1}, F: []float64{0}, PRP: []float64{1}})
	require.Error(t, err)
	require.True(t, raderr.Is(err, raderr.InvalidWaveform))

	_, err = New(Config{T: []float64{1, 2}, F: []float64{0, 1}, PRP: []float64{1}})
	require.Error(t, err)

	_, err = New(Config{T: []float64{0, 1, 1}, F: []float64{0, 1, 2}, PRP: []float64{1}})
	require.Error(t, err)

	_, err = New(Config{T: []float64{0, 10e-6}, F: []float64{0, 1e6}, PRP: []float64{5e-6}})
	require.Error(t, err)
}

func TestCarrierFrequencyUsesOffset(t *testing.T) {
	w, err := New(Config{
		T:       []float64{0, 1e-6},
		F:       []float64{1e9, 1.1e9},
		PRP:     []float64{2e-6, 2e-6},
		FOffset: []float64{0, 10e6},
	})
	require.NoError(t, err)
	require.InDelta(t, 1e9, w.CarrierFrequency(0), 1e-6)
	require.InDelta(t, 1e9+10e6, w.CarrierFrequency(1), 1e-6)
}

func TestInstantaneousFrequencyLinear(t *testing.T) {
	w := simpleChirp(t)
	require.InDelta(t, 0, w.InstantaneousFrequency(0, 0), 1e-6)
	require.InDelta(t, 1e6, w.InstantaneousFrequency(0, 10e-6), 1e-6)
	require.InDelta(t, 0.5e6, w.InstantaneousFrequency(0, 5e-6), 1e-6)
}

func TestInstantaneousFrequencyClampsOutsideTable(t *testing.T) {
	w := simpleChirp(t)
	require.InDelta(t, 0, w.InstantaneousFrequency(0, -5e-6), 1e-9)
	require.InDelta(t, 1e6, w.InstantaneousFrequency(0, 20e-6), 1e-9)
}

func TestPhaseAccumulationMatchesNumericIntegral(t *testing.T) {
	w := simpleChirp(t)
	// numerically integrate InstantaneousFrequency over [0, 10us] and compare
	const n = 100000
	dt := w.PulseLength() / n
	sum := 0.0
	for i := 0; i < n; i++ {
		tau := (float64(i) + 0.5) * dt
		sum += w.InstantaneousFrequency(0, tau) * dt
	}
	want := 2 * math.Pi * sum
	got := w.PhaseAccumulation(0, 0, w.PulseLength())
	require.InDelta(t, want, got, want*1e-6+1e-6)
}

func TestPhaseAccumulationAntisymmetric(t *testing.T) {
	w := simpleChirp(t)
	fwd := w.PhaseAccumulation(0, 1e-6, 8e-6)
	rev := w.PhaseAccumulation(0, 8e-6, 1e-6)
	require.InDelta(t, fwd, -rev, 1e-9)
}

func TestPhaseAccumulationHoldsConstantPastTableEdges(t *testing.T) {
	w := simpleChirp(t)
	// one extra microsecond past pulse_length, held at the final frequency (1e6 Hz)
	whole := w.PhaseAccumulation(0, 0, w.PulseLength())
	extended := w.PhaseAccumulation(0, 0, w.PulseLength()+1e-6)
	require.InDelta(t, whole+2*math.Pi*1e6*1e-6, extended, 1e-6)
}

func TestPhaseAccumulationHoldsConstantBeforeZero(t *testing.T) {
	w := simpleChirp(t)
	// a full microsecond before time zero, held at f[0] (0 Hz), contributes nothing
	got := w.PhaseAccumulation(0, -1e-6, 0)
	require.InDelta(t, 0, got, 1e-9)
}

func TestPulseStartTimeAccumulates(t *testing.T) {
	w := simpleChirp(t)
	require.InDelta(t, 0, w.PulseStartTime(0), 1e-12)
	require.InDelta(t, 20e-6, w.PulseStartTime(1), 1e-12)
	require.InDelta(t, 40e-6, w.PulseStartTime(2), 1e-12)
}
