package baseband

import (
	"math"
	"math/cmplx"
	"math/rand"
	"runtime"
	"sync"

	"github.com/openthread/radarsim/antenna"
	"github.com/openthread/radarsim/kinematics"
	"github.com/openthread/radarsim/phasenoise"
	"github.com/openthread/radarsim/prng"
	"github.com/openthread/radarsim/rfsystem"
)

const (
	tagPhaseNoise   int64 = 1
	tagThermalNoise int64 = 2
)

// Config collects everything one Synthesize run needs: the assembled
// radar, the scene of targets, the noise seed, and the optional
// phase-noise mask and thermal-noise parameters. A nil PhaseMask
// disables phase noise (the envelope is the identity); a Workers of 0
// uses GOMAXPROCS.
type Config struct {
	Radar *rfsystem.Radar
	Scene *Scene

	Seed prng.Seed

	PhaseMask            *phasenoise.Mask
	PhaseNoiseValidation bool

	DisableThermalNoise bool
	TemperatureK        float64

	Workers int
}

// Synthesize runs components F, G over every (frame, virtual channel,
// pulse) independently and returns the resulting baseband cube. The
// only shared mutable state across goroutines is the cube itself, and
// each goroutine ever only writes the one (row, pulse) pair it owns.
func Synthesize(cfg Config) (*Cube, error) {
	r := cfg.Radar
	cube := NewCube(r.NF*r.NCh, r.NP, r.NS)

	seed := cfg.Seed
	if seed == 0 {
		seed = prng.NewSeed()
	}
	phaseStream := prng.NewStream(seed, tagPhaseNoise)
	noiseStream := prng.NewStream(seed, tagThermalNoise)

	var phaseGen *phasenoise.Generator
	if cfg.PhaseMask != nil {
		phaseGen = phasenoise.NewGenerator(cfg.PhaseMask, r.Rx.Fs, cfg.PhaseNoiseValidation)
	}

	var thermalSigma float64
	if !cfg.DisableThermalNoise {
		rxNoiseDBm := thermalNoiseDBm(r.Rx.NoiseBandwidth(), r.Rx.RFGainDB, r.Rx.NoiseFigureDB, r.Rx.BasebandGainDB, cfg.TemperatureK)
		thermalSigma = thermalNoisePeakVoltage(rxNoiseDBm, r.Rx.LoadResistor) / math.Sqrt2
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type unit struct{ frame, ch, pulse int }
	units := make(chan unit, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for u := range units {
				synthesizePulse(&cfg, cube, phaseGen, phaseStream, noiseStream, thermalSigma, u.frame, u.ch, u.pulse)
			}
		}()
	}

	for frame := 0; frame < r.NF; frame++ {
		for ch := 0; ch < r.NCh; ch++ {
			for pulse := 0; pulse < r.NP; pulse++ {
				units <- unit{frame, ch, pulse}
			}
		}
	}
	close(units)
	wg.Wait()

	return cube, nil
}

// synthesizePulse fills every sample of one (frame, channel, pulse)
// row. This is the unit of parallelism: §5's reproducibility contract
// holds because the two RNG streams it uses are derived solely from
// (seed, frame, channel, pulse), never from goroutine identity.
func synthesizePulse(cfg *Config, cube *Cube, phaseGen *phasenoise.Generator, phaseStream, noiseStream prng.Stream,
	thermalSigma float64, frame, ch, pulse int) {
	r := cfg.Radar
	row := r.Row(frame, ch)
	iTx, iRx := r.SplitChannel(ch)
	txCh := r.Tx.Channels[iTx]
	rxCh := r.Rx.Channels[iRx]

	pulseModVal := r.Tx.PulseMod(iTx, pulse)
	zeroPulse := pulseModVal == 0

	fc := r.Tx.Waveform.CarrierFrequency(pulse)
	lambda := kinematics.SpeedOfLight / fc

	var phaseEnv []complex128
	if phaseGen != nil {
		rng := phaseStream.Split(frame, ch, pulse)
		phaseEnv = phaseGen.Row(rng, r.NS)
	}
	var noiseRNG *rand.Rand
	if thermalSigma > 0 {
		noiseRNG = noiseStream.Split(frame, ch, pulse)
	}

	for k := 0; k < r.NS; k++ {
		t := r.Timestamp(frame, ch, pulse, k)
		cube.Timestamps[cube.index(row, pulse, k)] = t

		var acc complex128
		if !zeroPulse {
			pose := toKinematicsPose(r.Pose(frame, ch, pulse, k))
			for ti, target := range cfg.Scene.Targets {
				if target.IsZeroReflectivity() {
					continue
				}
				contribution := targetContribution(cfg, r, txCh, rxCh, iTx, lambda, pose, target, ti, frame, ch, pulse, k, t)
				if phaseEnv != nil {
					contribution *= phaseEnv[k]
				}
				acc += contribution
			}
		}
		if noiseRNG != nil {
			acc += complex(noiseRNG.NormFloat64()*thermalSigma, noiseRNG.NormFloat64()*thermalSigma)
		}
		if r.Rx.BBType == rfsystem.RealBaseband {
			acc = complex(real(acc), 0)
		}
		cube.Set(row, pulse, k, acc)
	}
}

func targetContribution(cfg *Config, r *rfsystem.Radar, txCh, rxCh *antenna.Channel, iTx int, lambda float64,
	pose kinematics.Pose, target *kinematics.Target, targetIdx, frame, ch, pulse, k int, t float64) complex128 {
	p := target.PositionAt(t)
	geom := kinematics.Compute(pose, txCh.Location, rxCh.Location, p)
	tauD := geom.DelaySec
	// the waveform tables are pulse-relative; t (absolute) only moves the target.
	tau := float64(k) / r.Rx.Fs

	phiTx := r.Tx.Waveform.PhaseAccumulation(pulse, 0, tau)
	phiRx := r.Tx.Waveform.PhaseAccumulation(pulse, 0, tau-tauD)
	deltaPhi := (phiTx - phiRx) + target.PhaseDeg*math.Pi/180

	var amp complex128
	if refl, ok := reflectionAt(cfg.Scene.Reflection, frame, ch, pulse, k, targetIdx); ok {
		amp = refl.Coefficient
		deltaPhi += refl.PhaseRad
	} else {
		gTx := txCh.GainDB(geom.AzTxDeg, geom.ElTxDeg)
		gRx := rxCh.GainDB(geom.AzRxDeg, geom.ElRxDeg)
		pDB := radarEquationDB(r.Tx.TxPowerDBm, gTx, gRx, target.RCSdBsm, geom.RangeTx, geom.RangeRx, lambda, r.Rx.RFGainDB)
		a := signalPeakVoltage(pDB, r.Rx.LoadResistor, r.Rx.BasebandGainDB)
		pol := antenna.Polarization(txCh.Polarization, rxCh.Polarization)
		amp = complex(a*math.Sqrt(pol), 0)
	}

	wfm := r.Tx.WaveformMod(iTx, tau-tauD)
	return amp * r.Tx.PulseMod(iTx, pulse) * wfm * cmplx.Exp(complex(0, deltaPhi))
}

func reflectionAt(src ReflectionSource, frame, ch, pulse, k, targetIdx int) (Reflection, bool) {
	if src == nil {
		return Reflection{}, false
	}
	return src(frame, ch, pulse, k, targetIdx)
}

func toKinematicsPose(p rfsystem.Pose) kinematics.Pose {
	return kinematics.Pose{Location: p.Location, Rotation: p.Rotation}
}
