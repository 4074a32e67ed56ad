package rfsystem

import "math"

// Radar fuses a transmitter and receiver into the timestamp grid,
// virtual array, and per-sample platform pose that the baseband
// synthesizer iterates over.
type Radar struct {
	Tx *Transmitter
	Rx *Receiver

	FrameTimes []float64 // t_offset_frame, seconds; defaults to {0}

	NTx, NRx, NCh int
	NF, NP, NS    int

	virtualLoc [][3]float64 // len NCh: tx_loc[i_tx] + rx_loc[i_rx]
	platform   *platform
}

// Config collects the constructor parameters for a Radar.
type Config struct {
	Tx         *Transmitter
	Rx         *Receiver
	FrameTimes []float64 // defaults to {0} if nil
	Platform   PlatformConfig
}

// New validates and assembles a Radar.
func New(cfg Config) (*Radar, error) {
	frameTimes := cfg.FrameTimes
	if frameTimes == nil {
		frameTimes = []float64{0}
	}

	nTx := len(cfg.Tx.Channels)
	nRx := len(cfg.Rx.Channels)
	nCh := nTx * nRx
	nF := len(frameTimes)
	nP := cfg.Tx.Waveform.Pulses()
	nS := int(math.Floor(cfg.Tx.Waveform.PulseLength() * cfg.Rx.Fs))

	virtualLoc := make([][3]float64, nCh)
	for iTx := 0; iTx < nTx; iTx++ {
		for iRx := 0; iRx < nRx; iRx++ {
			ch := iTx*nRx + iRx
			tl := cfg.Tx.Channels[iTx].Location
			rl := cfg.Rx.Channels[iRx].Location
			virtualLoc[ch] = [3]float64{tl[0] + rl[0], tl[1] + rl[1], tl[2] + rl[2]}
		}
	}

	n := nF * nCh * nP * nS
	plat, err := newPlatform(cfg.Platform, n)
	if err != nil {
		return nil, err
	}

	return &Radar{
		Tx:         cfg.Tx,
		Rx:         cfg.Rx,
		FrameTimes: append([]float64(nil), frameTimes...),
		NTx:        nTx, NRx: nRx, NCh: nCh,
		NF: nF, NP: nP, NS: nS,
		virtualLoc: virtualLoc,
		platform:   plat,
	}, nil
}

// Row returns the flattened row index for frame f and virtual channel ch.
func (r *Radar) Row(frame, ch int) int { return frame*r.NCh + ch }

// SplitChannel decomposes a virtual channel index into its transmit
// and receive channel indices, per the ch = i_tx*N_rx + i_rx enumeration.
func (r *Radar) SplitChannel(ch int) (iTx, iRx int) {
	return ch / r.NRx, ch % r.NRx
}

// VirtualLocation returns v[ch] = tx_loc[i_tx] + rx_loc[i_rx].
func (r *Radar) VirtualLocation(ch int) [3]float64 { return r.virtualLoc[ch] }

// Timestamp returns t[ch, i_p, k] = t_offset_frame + tx_delay[i_tx] +
// pulse_start_time[i_p] + k/fs.
func (r *Radar) Timestamp(frame, ch, pulseIdx, sampleIdx int) float64 {
	iTx, _ := r.SplitChannel(ch)
	return r.FrameTimes[frame] + r.Tx.Channels[iTx].Delay + r.Tx.Waveform.PulseStartTime(pulseIdx) + float64(sampleIdx)/r.Rx.Fs
}

// Pose returns the platform pose at the given sample coordinates.
func (r *Radar) Pose(frame, ch, pulseIdx, sampleIdx int) Pose {
	row := r.Row(frame, ch)
	idx := (row*r.NP+pulseIdx)*r.NS + sampleIdx
	return r.platform.At(idx)
}
