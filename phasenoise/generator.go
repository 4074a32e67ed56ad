package phasenoise

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Generator produces one phase-noise envelope row at a time for a
// fixed sampling rate and mask. Validation mode substitutes a constant
// for every Gaussian draw so tests can pin exact numeric output.
type Generator struct {
	mask       *Mask
	fs         float64
	validation bool
}

// NewGenerator builds a Generator for the given mask and sampling rate.
func NewGenerator(mask *Mask, fs float64, validation bool) *Generator {
	return &Generator{mask: mask.below(fs / 2), fs: fs, validation: validation}
}

// validationDraw is the fixed complex value substituted for every
// Gaussian draw in validation mode: sqrt(1/2) + j*sqrt(1/2).
var validationDraw = complex(math.Sqrt(0.5), math.Sqrt(0.5))

func (g *Generator) draw(rng *rand.Rand) complex128 {
	if g.validation {
		return validationDraw
	}
	return complex(rng.NormFloat64()*math.Sqrt(0.5), rng.NormFloat64()*math.Sqrt(0.5))
}

// Row generates one envelope of length n: exp(-j*phi) where phi is a
// zero-mean Gaussian process whose one-sided PSD matches the mask.
// Random draws are taken from rng in bin order (m = 0, 1, ..., M-1).
func (g *Generator) Row(rng *rand.Rand, n int) []complex128 {
	if n <= 0 {
		return nil
	}
	m := n/2 + 1
	deltaF := g.fs / float64(n)

	x := make([]complex128, m)
	for k := 0; k < m; k++ {
		f := float64(k) * deltaF
		level := g.mask.levelAt(f)
		p := math.Pow(10, level/10)
		z := g.draw(rng)
		x[k] = complex(float64(m), 0) * complex(math.Sqrt(deltaF*p), 0) * z
	}
	x[0] = 0

	nfft := 2 * (m - 1)
	if nfft < 1 {
		nfft = 1
	}
	spectrum := make([]complex128, nfft)
	copy(spectrum, x)
	for k := 1; k <= m-2; k++ {
		spectrum[nfft-k] = cmplxConj(x[k])
	}

	// Sequence is unnormalized; divide by nfft for the 1/N inverse FFT.
	fft := fourier.NewCmplxFFT(nfft)
	timeDomain := fft.Sequence(nil, spectrum)

	phi := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < len(timeDomain) {
			phi[i] = real(timeDomain[i]) / float64(nfft)
		} else {
			// n is odd and the Hermitian spectrum (length 2M-2) falls one
			// sample short; hold the last computed phase.
			phi[i] = phi[i-1]
		}
	}

	env := make([]complex128, n)
	for i, p := range phi {
		s, c := math.Sincos(p)
		env[i] = complex(c, -s)
	}
	return env
}

func cmplxConj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
