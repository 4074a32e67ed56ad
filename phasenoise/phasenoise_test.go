package phasenoise

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"
)

func TestNewMaskPrependsAnchorAndSorts(t *testing.T) {
	m, err := NewMask([]float64{100e3, 1e3, 1e6}, []float64{-96, -84, -109})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1e3, 100e3, 1e6}, m.freq)
}

func TestNewMaskRejectsLengthMismatch(t *testing.T) {
	_, err := NewMask([]float64{1, 2}, []float64{1})
	require.Error(t, err)
}

func TestMaskBelowDropsAtOrAboveNyquist(t *testing.T) {
	m, err := NewMask([]float64{1e3, 10e3, 100e3}, []float64{-84, -100, -96})
	require.NoError(t, err)
	below := m.below(20e3)
	require.Equal(t, []float64{0, 1e3, 10e3}, below.freq)
}

func TestMaskLevelAtClampsOutsideDomain(t *testing.T) {
	m, err := NewMask([]float64{1e3, 10e3}, []float64{-84, -100})
	require.NoError(t, err)
	require.InDelta(t, 0, m.levelAt(0), 1e-9)
	require.InDelta(t, -100, m.levelAt(1e9), 1e-9)
}

func TestRowValidationModeIsDeterministic(t *testing.T) {
	mask, err := NewMask([]float64{1e3, 10e3, 100e3, 1e6}, []float64{-84, -100, -96, -109})
	require.NoError(t, err)
	g := NewGenerator(mask, 60e3, true)
	a := g.Row(rand.New(rand.NewSource(1)), 128)
	b := g.Row(rand.New(rand.NewSource(2)), 128)
	require.Equal(t, a, b)
}

func TestRowProducesUnitMagnitudeEnvelope(t *testing.T) {
	mask, err := NewMask([]float64{1e3, 10e3, 100e3, 1e6}, []float64{-84, -100, -96, -109})
	require.NoError(t, err)
	g := NewGenerator(mask, 60e3, true)
	row := g.Row(rand.New(rand.NewSource(7)), 64)
	require.Len(t, row, 64)
	for _, v := range row {
		require.InDelta(t, 1, math.Hypot(real(v), imag(v)), 1e-9)
	}
}

// TestRowMatchesLiteralSpectrumS5 pins the realized phase-noise
// envelope's FFT magnitude against the original_source ground truth
// (test_phase_noise, fs=4e6, row length 256).
func TestRowMatchesLiteralSpectrumS5(t *testing.T) {
	mask, err := NewMask([]float64{1e3, 10e3, 100e3, 1e6}, []float64{-84, -100, -96, -109})
	require.NoError(t, err)
	g := NewGenerator(mask, 4e6, true)
	row := g.Row(rand.New(rand.NewSource(1)), 256)

	fft := fourier.NewCmplxFFT(256)
	spectrum := fft.Coefficients(nil, row)
	dbAt := func(k int) float64 {
		return 20 * math.Log10(cmplx.Abs(spectrum[k]/complex(256, 0)))
	}

	require.InDelta(t, -63.4, dbAt(1), 0.01)
	require.InDelta(t, -60.21, dbAt(6), 0.01)
	require.InDelta(t, -73.09, dbAt(64), 0.01)
}

func TestRowNonValidationModeVariesWithSeed(t *testing.T) {
	mask, err := NewMask([]float64{1e3, 10e3, 100e3, 1e6}, []float64{-84, -100, -96, -109})
	require.NoError(t, err)
	g := NewGenerator(mask, 60e3, false)
	a := g.Row(rand.New(rand.NewSource(1)), 64)
	b := g.Row(rand.New(rand.NewSource(2)), 64)
	require.NotEqual(t, a, b)
}
