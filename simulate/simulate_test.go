package simulate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openthread/radarsim/antenna"
	"github.com/openthread/radarsim/baseband"
	"github.com/openthread/radarsim/kinematics"
	"github.com/openthread/radarsim/rfsystem"
	"github.com/openthread/radarsim/waveform"
)

func isotropicChannel(t *testing.T, loc [3]float64) *antenna.Channel {
	c, err := antenna.NewChannel(antenna.ChannelConfig{
		Location:    loc,
		AzAnglesDeg: []float64{-90, 90},
		AzDB:        []float64{0, 0},
		ElAnglesDeg: []float64{-90, 90},
		ElDB:        []float64{0, 0},
	})
	require.NoError(t, err)
	return c
}

func simpleRadar(t *testing.T) *rfsystem.Radar {
	w, err := waveform.New(waveform.Config{
		T:   []float64{0, 80e-6},
		F:   []float64{24.075e9, 24.175e9},
		PRP: []float64{100e-6, 100e-6},
	})
	require.NoError(t, err)
	tx, err := rfsystem.NewTransmitter(rfsystem.TransmitterConfig{
		Waveform:   w,
		Channels:   []*antenna.Channel{isotropicChannel(t, [3]float64{})},
		TxPowerDBm: 10,
	})
	require.NoError(t, err)
	rx, err := rfsystem.NewReceiver(rfsystem.ReceiverConfig{
		Channels: []*antenna.Channel{isotropicChannel(t, [3]float64{})},
		Fs:       60e3,
	})
	require.NoError(t, err)
	r, err := rfsystem.New(rfsystem.Config{Tx: tx, Rx: rx})
	require.NoError(t, err)
	return r
}

func TestDefaultConfigSetsAmbientTemperature(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, DefaultTemperatureK, cfg.TemperatureK)
}

func TestRunProducesCubeShapedByRadar(t *testing.T) {
	r := simpleRadar(t)
	cfg := DefaultConfig()
	cfg.Radar = r
	cfg.Scene = &baseband.Scene{Targets: []*kinematics.Target{
		kinematics.NewLiteralTarget([3]float64{10, 0, 0}, [3]float64{}, 20, 0),
	}}
	cfg.DisableThermalNoise = true
	cfg.Seed = 7

	res, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, r.NF*r.NCh, res.Baseband.NRows)
	require.Equal(t, r.NP, res.Baseband.NPulses)
	require.Equal(t, r.NS, res.Baseband.NSamples)
	require.Equal(t, cfg.Seed, res.Seed)
}

func TestRunGeneratesRandomSeedWhenUnset(t *testing.T) {
	r := simpleRadar(t)
	cfg := DefaultConfig()
	cfg.Radar = r
	cfg.Scene = &baseband.Scene{}
	cfg.DisableThermalNoise = true

	res, err := Run(cfg)
	require.NoError(t, err)
	require.NotZero(t, res.Seed)
}

func TestRunMixesInterferenceAdditively(t *testing.T) {
	r := simpleRadar(t)

	primaryScene := &baseband.Scene{Targets: []*kinematics.Target{
		kinematics.NewLiteralTarget([3]float64{10, 0, 0}, [3]float64{}, 20, 0),
	}}

	cfg := DefaultConfig()
	cfg.Radar = r
	cfg.Scene = primaryScene
	cfg.DisableThermalNoise = true
	cfg.Seed = 3

	withoutInterference, err := Run(cfg)
	require.NoError(t, err)

	cfg.Interference = &baseband.Config{
		Radar:               r,
		Scene:               &baseband.Scene{Targets: []*kinematics.Target{kinematics.NewLiteralTarget([3]float64{20, 5, 0}, [3]float64{}, 10, 0)}},
		Seed:                5,
		DisableThermalNoise: true,
	}
	withInterference, err := Run(cfg)
	require.NoError(t, err)

	sumOnly, err := Run(&Config{
		Radar:               r,
		Scene:               cfg.Interference.Scene,
		Seed:                5,
		DisableThermalNoise: true,
	})
	require.NoError(t, err)

	got := withInterference.Baseband.At(0, 0, 0)
	want := withoutInterference.Baseband.At(0, 0, 0) + sumOnly.Baseband.At(0, 0, 0)
	require.InDelta(t, real(want), real(got), 1e-9)
	require.InDelta(t, imag(want), imag(got), 1e-9)
}
