// Package simulate is the top-level entry point: it wires a radar and
// a scene through the baseband synthesizer and returns the resulting
// cube.
package simulate

import (
	"github.com/openthread/radarsim/baseband"
	"github.com/openthread/radarsim/logger"
	"github.com/openthread/radarsim/phasenoise"
	"github.com/openthread/radarsim/prng"
	"github.com/openthread/radarsim/rfsystem"
)

// DefaultTemperatureK is the ambient temperature used when a Config
// does not specify one.
const DefaultTemperatureK = 290.0

// Config collects one run's parameters: the primary radar and scene,
// an optional interference radar/scene pair (component H), the noise
// seed, and the phase/thermal-noise toggles.
type Config struct {
	Radar *rfsystem.Radar
	Scene *baseband.Scene

	// Interference, if set, is synthesized separately and mixed
	// additively into the primary cube. Its Radar must combine the
	// interferer's transmitter with the primary receiver's channels
	// and share the primary's frame/pulse/sample counts.
	Interference *baseband.Config

	Seed prng.Seed

	PhaseMask            *phasenoise.Mask
	PhaseNoiseValidation bool

	DisableThermalNoise bool
	TemperatureK        float64

	Workers int
}

// DefaultConfig returns a Config with the ambient defaults filled in;
// Radar and Scene still need to be set before calling Run.
func DefaultConfig() *Config {
	return &Config{
		TemperatureK: DefaultTemperatureK,
	}
}

// Result is the outcome of one synthesis run.
type Result struct {
	Baseband *baseband.Cube
	Seed     prng.Seed
}

// Run synthesizes the baseband cube for cfg. A single failing
// construction anywhere in Radar/Scene cancels the run before this is
// reached; Run itself only fails if component H's interference radar
// has a shape mismatched to the primary.
func Run(cfg *Config) (*Result, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = prng.NewSeed()
	}

	logger.Infof("starting synthesis: n_ch=%d n_pulses=%d n_samples=%d n_frames=%d",
		cfg.Radar.NCh, cfg.Radar.NP, cfg.Radar.NS, cfg.Radar.NF)

	cube, err := baseband.Synthesize(baseband.Config{
		Radar:                cfg.Radar,
		Scene:                cfg.Scene,
		Seed:                 seed,
		PhaseMask:            cfg.PhaseMask,
		PhaseNoiseValidation: cfg.PhaseNoiseValidation,
		DisableThermalNoise:  cfg.DisableThermalNoise,
		TemperatureK:         cfg.TemperatureK,
		Workers:              cfg.Workers,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Interference != nil {
		if err := baseband.SynthesizeInterference(cube, *cfg.Interference); err != nil {
			return nil, err
		}
	}

	return &Result{Baseband: cube, Seed: seed}, nil
}
