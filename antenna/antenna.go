// Package antenna models per-channel 3-D geometry, polarization, and the
// interpolated azimuth/elevation gain patterns of component B. A pattern
// is two orthogonal 1-D tables, not a full 2-D surface — a deliberate
// simplification carried over from the reference radar model.
package antenna

import (
	"math"
	"math/cmplx"

	"github.com/openthread/radarsim/raderr"
)

// Table is a piecewise-linear gain-vs-angle table in dB, queried by
// linear interpolation and clamped at its endpoints.
type Table struct {
	angles []float64 // degrees, strictly increasing
	gainDB []float64
}

// NewTable validates and builds an interpolation table.
func NewTable(anglesDeg, gainDB []float64) (Table, error) {
	if len(anglesDeg) != len(gainDB) {
		return Table{}, raderr.New(raderr.InvalidPattern, "len(angles)=%d != len(gain)=%d", len(anglesDeg), len(gainDB))
	}
	if len(anglesDeg) == 0 {
		return Table{}, raderr.New(raderr.InvalidPattern, "pattern table must not be empty")
	}
	for i := 1; i < len(anglesDeg); i++ {
		if anglesDeg[i] <= anglesDeg[i-1] {
			return Table{}, raderr.New(raderr.InvalidPattern, "angles must be strictly increasing at index %d", i)
		}
	}
	return Table{
		angles: append([]float64(nil), anglesDeg...),
		gainDB: append([]float64(nil), gainDB...),
	}, nil
}

// peak returns the maximum gain value in the table.
func (t Table) peak() float64 {
	m := t.gainDB[0]
	for _, g := range t.gainDB[1:] {
		m = math.Max(m, g)
	}
	return m
}

// shift subtracts d (dB) from every entry, returning a new Table.
func (t Table) shift(d float64) Table {
	out := Table{angles: t.angles, gainDB: make([]float64, len(t.gainDB))}
	for i, g := range t.gainDB {
		out.gainDB[i] = g - d
	}
	return out
}

// lookupDB linearly interpolates the table at deg, clamped to the
// table's first/last entries outside its domain.
func (t Table) lookupDB(deg float64) float64 {
	if deg <= t.angles[0] {
		return t.gainDB[0]
	}
	n := len(t.angles)
	if deg >= t.angles[n-1] {
		return t.gainDB[n-1]
	}
	lo, hi := 0, n-1
	for lo < hi-1 {
		mid := (lo + hi) / 2
		if t.angles[mid] <= deg {
			lo = mid
		} else {
			hi = mid
		}
	}
	frac := (deg - t.angles[lo]) / (t.angles[hi] - t.angles[lo])
	return t.gainDB[lo] + frac*(t.gainDB[hi]-t.gainDB[lo])
}

// Channel is one physical antenna element: its location, polarization,
// timing delay, ray-tracer grid hint, and the az/el gain patterns
// normalized so antennaGain carries the peak and the stored tables are
// <= 0 dB everywhere.
type Channel struct {
	Location      [3]float64
	Polarization  [3]complex128
	Delay         float64
	Grid          float64
	azimuth       Table
	elevation     Table
	antennaGainDB float64
}

// ChannelConfig collects the constructor parameters for a Channel.
type ChannelConfig struct {
	Location [3]float64
	// Polarization defaults to (0,0,1) if left zero.
	Polarization [3]complex128
	Delay        float64
	// Grid defaults to 1 if zero; it is a ray-tracer hint only, opaque
	// to the baseband synthesizer.
	Grid              float64
	AzAnglesDeg, AzDB []float64
	ElAnglesDeg, ElDB []float64
}

// NewChannel validates the two pattern tables, extracts the azimuth
// table's peak as AntennaGain, and stores both tables renormalized to
// <= 0 dB, each by its own peak.
func NewChannel(cfg ChannelConfig) (*Channel, error) {
	az, err := NewTable(cfg.AzAnglesDeg, cfg.AzDB)
	if err != nil {
		return nil, err
	}
	el, err := NewTable(cfg.ElAnglesDeg, cfg.ElDB)
	if err != nil {
		return nil, err
	}
	if cfg.Delay < 0 {
		return nil, raderr.New(raderr.InvalidConfig, "channel delay %v must be >= 0", cfg.Delay)
	}
	grid := cfg.Grid
	if grid == 0 {
		grid = 1
	}
	if grid <= 0 {
		return nil, raderr.New(raderr.InvalidConfig, "channel grid %v must be > 0", grid)
	}
	pol := cfg.Polarization
	if pol == ([3]complex128{}) {
		pol = [3]complex128{0, 0, 1}
	}
	peak := az.peak()
	return &Channel{
		Location:      cfg.Location,
		Polarization:  pol,
		Delay:         cfg.Delay,
		Grid:          grid,
		azimuth:       az.shift(az.peak()),
		elevation:     el.shift(el.peak()),
		antennaGainDB: peak,
	}, nil
}

// AntennaGain returns the pattern's extracted peak, dB.
func (c *Channel) AntennaGain() float64 { return c.antennaGainDB }

// GainDB returns the total pattern gain (az table + el table +
// antenna_gain) at the given azimuth/elevation, degrees.
func (c *Channel) GainDB(azDeg, elDeg float64) float64 {
	return c.azimuth.lookupDB(azDeg) + c.elevation.lookupDB(elDeg) + c.antennaGainDB
}

// Polarization computes the squared magnitude of the inner product of
// two Jones vectors, the scalar polarization loss factor applied in
// the radar equation.
func Polarization(tx, rx [3]complex128) float64 {
	var dot complex128
	for i := 0; i < 3; i++ {
		dot += tx[i] * cmplx.Conj(rx[i])
	}
	return cmplx.Abs(dot) * cmplx.Abs(dot)
}
