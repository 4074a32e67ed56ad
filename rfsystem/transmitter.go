// Package rfsystem assembles transmitter and receiver channel
// collections into the radar used by the synthesizer: it derives the
// virtual array, the timestamp grid, and the per-sample platform pose
// (component C).
package rfsystem

import (
	"sort"

	"github.com/openthread/radarsim/antenna"
	"github.com/openthread/radarsim/raderr"
	"github.com/openthread/radarsim/waveform"
)

// WaveformModulation is the optional piecewise-constant complex
// envelope w(tau) applied on top of the chirp, per channel. Disabled
// modulation is the identity 1+0j everywhere.
type WaveformModulation struct {
	Enabled bool
	ModT    []float64
	ModVar  []complex128
}

// NewWaveformModulation validates and builds a WaveformModulation.
// A nil or disabled modulation is valid and behaves as the identity.
func NewWaveformModulation(enabled bool, modT []float64, modVar []complex128) (*WaveformModulation, error) {
	if !enabled {
		return &WaveformModulation{}, nil
	}
	if len(modT) != len(modVar) {
		return nil, raderr.New(raderr.InvalidWaveform, "len(mod_t)=%d != len(mod_var)=%d", len(modT), len(modVar))
	}
	if len(modT) == 0 {
		return nil, raderr.New(raderr.InvalidWaveform, "waveform modulation needs at least 1 breakpoint")
	}
	if !sort.Float64sAreSorted(modT) {
		return nil, raderr.New(raderr.InvalidWaveform, "mod_t must be non-decreasing")
	}
	return &WaveformModulation{Enabled: true, ModT: append([]float64(nil), modT...), ModVar: append([]complex128(nil), modVar...)}, nil
}

// At returns w(tau): the identity when disabled, otherwise the value
// held at the largest breakpoint <= tau.
func (m *WaveformModulation) At(tau float64) complex128 {
	if m == nil || !m.Enabled {
		return 1
	}
	i := sort.Search(len(m.ModT), func(i int) bool { return m.ModT[i] > tau }) - 1
	if i < 0 {
		i = 0
	}
	return m.ModVar[i]
}

// Transmitter is a waveform shared by a collection of channels, plus
// per-channel pulse modulation and waveform modulation, and the
// reference transmit power.
type Transmitter struct {
	Waveform   *waveform.Waveform
	Channels   []*antenna.Channel
	TxPowerDBm float64

	// pulseMod[c][i] is the per-pulse complex scalar a*exp(j*phi) for
	// channel c, pulse i. Defaults to all-ones.
	pulseMod [][]complex128
	// waveformMod[c] is the optional envelope for channel c. May be nil,
	// meaning identity for every channel.
	waveformMod []*WaveformModulation
}

// TransmitterConfig collects the constructor parameters.
type TransmitterConfig struct {
	Waveform    *waveform.Waveform
	Channels    []*antenna.Channel
	TxPowerDBm  float64
	PulseMod    [][]complex128        // optional; per channel, len(Pulses()) each
	WaveformMod []*WaveformModulation // optional; one per channel, or nil entries
}

// NewTransmitter validates and builds a Transmitter.
func NewTransmitter(cfg TransmitterConfig) (*Transmitter, error) {
	if cfg.Waveform == nil {
		return nil, raderr.New(raderr.InvalidWaveform, "transmitter requires a waveform")
	}
	if len(cfg.Channels) == 0 {
		return nil, raderr.New(raderr.InvalidWaveform, "transmitter requires at least 1 channel")
	}
	np := cfg.Waveform.Pulses()
	pulseMod := cfg.PulseMod
	if pulseMod == nil {
		pulseMod = make([][]complex128, len(cfg.Channels))
	}
	if len(pulseMod) != len(cfg.Channels) {
		return nil, raderr.New(raderr.InvalidWaveform, "len(pulse_mod)=%d != len(channels)=%d", len(pulseMod), len(cfg.Channels))
	}
	out := make([][]complex128, len(cfg.Channels))
	for c, row := range pulseMod {
		if row == nil {
			row = make([]complex128, np)
			for i := range row {
				row[i] = 1
			}
		}
		if len(row) != np {
			return nil, raderr.New(raderr.InvalidWaveform, "len(pulse_mod[%d])=%d != n_pulses=%d", c, len(row), np)
		}
		out[c] = append([]complex128(nil), row...)
	}

	waveformMod := cfg.WaveformMod
	if waveformMod == nil {
		waveformMod = make([]*WaveformModulation, len(cfg.Channels))
	}
	if len(waveformMod) != len(cfg.Channels) {
		return nil, raderr.New(raderr.InvalidWaveform, "len(waveform_mod)=%d != len(channels)=%d", len(waveformMod), len(cfg.Channels))
	}

	return &Transmitter{
		Waveform:    cfg.Waveform,
		Channels:    cfg.Channels,
		TxPowerDBm:  cfg.TxPowerDBm,
		pulseMod:    out,
		waveformMod: append([]*WaveformModulation(nil), waveformMod...),
	}, nil
}

// PulseMod returns the pulse-level complex scalar for channel c, pulse i.
func (tx *Transmitter) PulseMod(c, i int) complex128 { return tx.pulseMod[c][i] }

// WaveformMod returns the waveform-modulation envelope value for
// channel c at pulse-relative time tau.
func (tx *Transmitter) WaveformMod(c int, tau float64) complex128 {
	return tx.waveformMod[c].At(tau)
}
