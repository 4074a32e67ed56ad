// Package baseband is the inner loop of the engine: for each virtual
// channel, pulse, and sample it accumulates every target's reflected
// signal into the complex baseband cube (components F, G, H).
package baseband

// Cube is the dense complex output, shape [N_f*N_ch, N_p, N_s],
// row-major so the sample axis is unit-stride. Timestamps holds the
// same shape for the parallel real timestamp array.
type Cube struct {
	data       []complex128
	Timestamps []float64

	NRows, NPulses, NSamples int
}

// NewCube allocates a zeroed Cube of the given shape.
func NewCube(nRows, nPulses, nSamples int) *Cube {
	n := nRows * nPulses * nSamples
	return &Cube{
		data:       make([]complex128, n),
		Timestamps: make([]float64, n),
		NRows:      nRows, NPulses: nPulses, NSamples: nSamples,
	}
}

func (c *Cube) index(row, pulse, sample int) int {
	return (row*c.NPulses+pulse)*c.NSamples + sample
}

// At returns the sample at (row, pulse, sample).
func (c *Cube) At(row, pulse, sample int) complex128 {
	return c.data[c.index(row, pulse, sample)]
}

// Set stores the sample at (row, pulse, sample).
func (c *Cube) Set(row, pulse, sample int, v complex128) {
	c.data[c.index(row, pulse, sample)] = v
}

// Add accumulates v into the sample at (row, pulse, sample).
func (c *Cube) Add(row, pulse, sample int, v complex128) {
	c.data[c.index(row, pulse, sample)] += v
}

// AddCube accumulates every sample of other into c. Both cubes must
// share the same shape, as is the case when mixing an interference
// cube into the primary one (component H).
func (c *Cube) AddCube(other *Cube) {
	for i := range c.data {
		c.data[i] += other.data[i]
	}
}

// Row returns a slice view of one (row, pulse) line of samples,
// length NSamples.
func (c *Cube) Row(row, pulse int) []complex128 {
	start := c.index(row, pulse, 0)
	return c.data[start : start+c.NSamples]
}
