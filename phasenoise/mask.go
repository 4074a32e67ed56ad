// Package phasenoise shapes Gaussian noise in the frequency domain
// according to an SSB phase-noise mask, producing a complex
// multiplicative envelope the shape of one pulse row (component D).
package phasenoise

import (
	"math"
	"sort"

	"github.com/openthread/radarsim/raderr"
)

// Mask is an SSB phase-noise mask (frequency offset from carrier, Hz;
// level, dBc/Hz), always carrying an implicit (0 Hz, 0 dBc/Hz) anchor
// and sorted by frequency.
type Mask struct {
	freq  []float64
	level []float64
}

// NewMask validates and builds a Mask. Entries are sorted by
// frequency and a (0, 0) anchor is prepended if not already present.
func NewMask(freqHz, levelDBcHz []float64) (*Mask, error) {
	if len(freqHz) != len(levelDBcHz) {
		return nil, raderr.New(raderr.InvalidMask, "len(freq)=%d != len(level)=%d", len(freqHz), len(levelDBcHz))
	}
	type entry struct{ f, l float64 }
	entries := make([]entry, 0, len(freqHz)+1)
	entries = append(entries, entry{0, 0})
	for i, f := range freqHz {
		entries = append(entries, entry{f, levelDBcHz[i]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].f < entries[j].f })

	m := &Mask{freq: make([]float64, 0, len(entries)), level: make([]float64, 0, len(entries))}
	for _, e := range entries {
		if len(m.freq) > 0 && e.f == m.freq[len(m.freq)-1] {
			continue
		}
		m.freq = append(m.freq, e.f)
		m.level = append(m.level, e.l)
	}
	return m, nil
}

// below drops entries at or beyond fNyquist and returns a mask usable
// for interpolation up to (but not including) that frequency.
func (m *Mask) below(fNyquist float64) *Mask {
	out := &Mask{}
	for i, f := range m.freq {
		if f >= fNyquist {
			break
		}
		out.freq = append(out.freq, f)
		out.level = append(out.level, m.level[i])
	}
	if len(out.freq) == 0 {
		out.freq = []float64{0}
		out.level = []float64{0}
	}
	return out
}

const logInterpEps = 1e-10

// levelAt interpolates linearly in log10-frequency between bracketing
// mask entries, clamping to the first/last entry outside the mask's
// domain — the same clamp convention as the antenna pattern tables.
func (m *Mask) levelAt(f float64) float64 {
	if f <= m.freq[0] {
		return m.level[0]
	}
	n := len(m.freq)
	if f >= m.freq[n-1] {
		return m.level[n-1]
	}
	lo, hi := 0, n-1
	for lo < hi-1 {
		mid := (lo + hi) / 2
		if m.freq[mid] <= f {
			lo = mid
		} else {
			hi = mid
		}
	}
	left, right := m.freq[lo], m.freq[hi]
	lx := math.Log10(f + logInterpEps)
	llx := math.Log10(left + logInterpEps)
	rlx := math.Log10(right + 2*logInterpEps)
	frac := (lx - llx) / (rlx - llx)
	return m.level[lo] + frac*(m.level[hi]-m.level[lo])
}
