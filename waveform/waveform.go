// Package waveform models the transmitted signal: a piecewise-linear
// frequency-vs-time profile plus per-pulse repetition timing and
// center-frequency offsets (component A of the baseband synthesis
// engine).
package waveform

import (
	"math"

	"github.com/openthread/radarsim/raderr"
)

// Waveform describes one transmitted chirp/pulse-train shape, shared by
// every channel of a transmitter. It is immutable after construction;
// all validation happens in New and the accessor methods never fail.
type Waveform struct {
	t []float64 // breakpoint times, seconds, t[0]=0
	f []float64 // breakpoint frequencies, Hz

	pulseLength float64   // seconds
	prp         []float64 // per-pulse repetition period, seconds
	fOffset     []float64 // per-pulse center-frequency offset, Hz

	pulseStart []float64 // derived: cumulative sum of prp[:i]
	bandwidth  float64   // derived: max(f) - min(f)

	// segment slopes, cached so PhaseAccumulation never divides in the
	// hot path.
	slope []float64
}

// Config collects the constructor parameters for a Waveform.
type Config struct {
	// T and F are the frequency-vs-time breakpoints: T[0] must be 0,
	// T must be strictly increasing, and len(T) == len(F).
	T, F []float64
	// PRP is the per-pulse repetition period, seconds. len(PRP) determines
	// the pulse count N_p. Every PRP[i] must be >= PulseLength.
	PRP []float64
	// FOffset is the per-pulse center-frequency offset, Hz. Defaults to
	// all-zero if nil. Must have the same length as PRP if provided.
	FOffset []float64
}

// New validates and constructs a Waveform. The breakpoint-length,
// monotonic-time, prp >= pulse_length and bandwidth checks run here;
// the empty-channel check runs in the rfsystem constructors.
func New(cfg Config) (*Waveform, error) {
	if len(cfg.T) != len(cfg.F) {
		return nil, raderr.New(raderr.InvalidWaveform, "len(t)=%d != len(f)=%d", len(cfg.T), len(cfg.F))
	}
	if len(cfg.T) < 2 {
		return nil, raderr.New(raderr.InvalidWaveform, "waveform needs at least 2 breakpoints, got %d", len(cfg.T))
	}
	if cfg.T[0] != 0 {
		return nil, raderr.New(raderr.InvalidWaveform, "t[0] must be 0, got %v", cfg.T[0])
	}
	for i := 1; i < len(cfg.T); i++ {
		if cfg.T[i] <= cfg.T[i-1] {
			return nil, raderr.New(raderr.InvalidWaveform, "t must be strictly increasing at index %d", i)
		}
	}
	pulseLength := cfg.T[len(cfg.T)-1]

	if len(cfg.PRP) == 0 {
		return nil, raderr.New(raderr.InvalidWaveform, "waveform needs at least 1 pulse")
	}
	fOffset := cfg.FOffset
	if fOffset == nil {
		fOffset = make([]float64, len(cfg.PRP))
	}
	if len(fOffset) != len(cfg.PRP) {
		return nil, raderr.New(raderr.InvalidWaveform, "len(f_offset)=%d != len(prp)=%d", len(fOffset), len(cfg.PRP))
	}
	for i, prp := range cfg.PRP {
		if prp < pulseLength {
			return nil, raderr.New(raderr.InvalidWaveform, "prp[%d]=%v shorter than pulse_length=%v", i, prp, pulseLength)
		}
	}

	fMin, fMax := cfg.F[0], cfg.F[0]
	slope := make([]float64, len(cfg.T)-1)
	for i := 1; i < len(cfg.F); i++ {
		fMin = math.Min(fMin, cfg.F[i])
		fMax = math.Max(fMax, cfg.F[i])
	}
	for i := 0; i < len(slope); i++ {
		dt := cfg.T[i+1] - cfg.T[i]
		slope[i] = (cfg.F[i+1] - cfg.F[i]) / dt
	}
	bandwidth := fMax - fMin
	if bandwidth < 0 {
		return nil, raderr.New(raderr.InvalidWaveform, "negative bandwidth %v", bandwidth)
	}

	pulseStart := make([]float64, len(cfg.PRP))
	acc := 0.0
	for i, prp := range cfg.PRP {
		pulseStart[i] = acc
		acc += prp
	}

	w := &Waveform{
		t:           append([]float64(nil), cfg.T...),
		f:           append([]float64(nil), cfg.F...),
		pulseLength: pulseLength,
		prp:         append([]float64(nil), cfg.PRP...),
		fOffset:     fOffset,
		pulseStart:  pulseStart,
		bandwidth:   bandwidth,
		slope:       slope,
	}
	return w, nil
}

// Pulses returns N_p, the number of pulses.
func (w *Waveform) Pulses() int { return len(w.prp) }

// PulseLength returns the pulse duration in seconds.
func (w *Waveform) PulseLength() float64 { return w.pulseLength }

// Bandwidth returns max(f) - min(f), Hz.
func (w *Waveform) Bandwidth() float64 { return w.bandwidth }

// PRP returns the repetition period of pulse i, seconds.
func (w *Waveform) PRP(i int) float64 { return w.prp[i] }

// FOffset returns the center-frequency offset of pulse i, Hz.
func (w *Waveform) FOffset(i int) float64 { return w.fOffset[i] }

// PulseStartTime returns pulse_start_time[i] = sum(prp[:i]), seconds.
func (w *Waveform) PulseStartTime(i int) float64 { return w.pulseStart[i] }

// CarrierFrequency returns f_c(i) = f[0] + f_offset[i], the per-pulse
// carrier used for path-loss and wavelength computation in the radar
// equation.
func (w *Waveform) CarrierFrequency(pulseIdx int) float64 {
	return w.f[0] + w.fOffset[pulseIdx]
}

// segmentIndex finds the largest i such that w.t[i] <= tau, clamping tau
// into [0, pulseLength] first.
func (w *Waveform) segmentIndex(tau float64) int {
	if tau <= 0 {
		return 0
	}
	if tau >= w.pulseLength {
		return len(w.slope) - 1
	}
	// binary search over breakpoints
	lo, hi := 0, len(w.t)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if w.t[mid] <= tau {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo >= len(w.slope) {
		lo = len(w.slope) - 1
	}
	return lo
}

// InstantaneousFrequency returns f(tau) + f_offset[pulseIdx] at pulse-
// relative time tau (clamped to [0, pulse_length]).
func (w *Waveform) InstantaneousFrequency(pulseIdx int, tau float64) float64 {
	i := w.segmentIndex(tau)
	tc := tau
	if tc < 0 {
		tc = 0
	} else if tc > w.pulseLength {
		tc = w.pulseLength
	}
	f := w.f[i] + w.slope[i]*(tc-w.t[i])
	return f + w.fOffset[pulseIdx]
}

// PhaseAccumulation integrates 2*pi*f(tau) over [tau0, tau1] (pulse-
// relative times, which may be negative or exceed pulse_length for
// round-trip-delayed evaluation — see the segment clamp below) and
// returns the result in radians. tau0 may exceed tau1; the result then
// has the opposite sign.
//
// The integral is evaluated exactly per linear segment: for a segment
// with slope k starting at f0 at segment-local time 0, over interval
// [a,b] the contribution is 2*pi*(f0*(b-a) + k*(b^2-a^2)/2).
func (w *Waveform) PhaseAccumulation(pulseIdx int, tau0, tau1 float64) float64 {
	sign := 1.0
	if tau1 < tau0 {
		tau0, tau1 = tau1, tau0
		sign = -1.0
	}
	fOffset := w.fOffset[pulseIdx]
	total := 0.0
	a := tau0

	// portion before the table starts: held constant at f[0], matching
	// InstantaneousFrequency's clamp.
	if a < 0 {
		head := math.Min(tau1, 0)
		total += (w.f[0] + fOffset) * (head - a)
		a = head
	}
	// portion after the table ends: held constant at f[last].
	mid := tau1
	if mid > w.pulseLength {
		tailStart := math.Max(a, w.pulseLength)
		total += (w.f[len(w.f)-1] + fOffset) * (mid - tailStart)
		mid = tailStart
	}
	// the part of the interval that actually falls inside [0, pulse_length]
	// is integrated exactly per breakpoint segment.
	for a < mid {
		i := w.segmentIndex(a)
		segEnd := w.t[i+1]
		b := mid
		if segEnd < b {
			b = segEnd
		}
		// local coordinates relative to segment start t[i]
		la := a - w.t[i]
		lb := b - w.t[i]
		f0 := w.f[i] + fOffset
		k := w.slope[i]
		total += f0*(lb-la) + k*(lb*lb-la*la)/2
		a = b
	}
	return sign * 2 * math.Pi * total
}
