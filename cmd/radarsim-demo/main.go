// Command radarsim-demo exercises the library end to end: it builds a
// small FMCW radar and a two-target scene, runs one synthesis pass, and
// prints a few samples. It is not part of the library surface.
package main

import (
	"flag"
	"fmt"

	"github.com/openthread/radarsim/antenna"
	"github.com/openthread/radarsim/baseband"
	"github.com/openthread/radarsim/kinematics"
	"github.com/openthread/radarsim/logger"
	"github.com/openthread/radarsim/prng"
	"github.com/openthread/radarsim/rfsystem"
	"github.com/openthread/radarsim/simulate"
	"github.com/openthread/radarsim/waveform"
)

type demoArgs struct {
	Seed int64
}

var args demoArgs

func parseArgs() {
	flag.Int64Var(&args.Seed, "seed", 1, "synthesis RNG seed")
	flag.Parse()
}

func isotropicChannel(loc [3]float64) *antenna.Channel {
	ch, err := antenna.NewChannel(antenna.ChannelConfig{
		Location:    loc,
		AzAnglesDeg: []float64{-90, 90},
		AzDB:        []float64{0, 0},
		ElAnglesDeg: []float64{-90, 90},
		ElDB:        []float64{0, 0},
	})
	logger.FatalIfError(err)
	return ch
}

func buildRadar() *rfsystem.Radar {
	w, err := waveform.New(waveform.Config{
		T:   []float64{0, 80e-6},
		F:   []float64{24.075e9, 24.175e9},
		PRP: []float64{100e-6, 100e-6, 100e-6},
	})
	logger.FatalIfError(err)

	tx, err := rfsystem.NewTransmitter(rfsystem.TransmitterConfig{
		Waveform:   w,
		Channels:   []*antenna.Channel{isotropicChannel([3]float64{})},
		TxPowerDBm: 10,
	})
	logger.FatalIfError(err)

	rx, err := rfsystem.NewReceiver(rfsystem.ReceiverConfig{
		Channels: []*antenna.Channel{isotropicChannel([3]float64{})},
		Fs:       60e3,
	})
	logger.FatalIfError(err)

	r, err := rfsystem.New(rfsystem.Config{Tx: tx, Rx: rx})
	logger.FatalIfError(err)
	return r
}

func buildScene() *baseband.Scene {
	return &baseband.Scene{Targets: []*kinematics.Target{
		kinematics.NewLiteralTarget([3]float64{10, 0, 0}, [3]float64{1, 0, 0}, 20, 0),
		kinematics.NewLiteralTarget([3]float64{15, 3, 0}, [3]float64{-2, 0, 0}, 10, 45),
	}}
}

func main() {
	parseArgs()

	cfg := simulate.DefaultConfig()
	cfg.Radar = buildRadar()
	cfg.Scene = buildScene()
	cfg.Seed = prng.Seed(args.Seed)

	res, err := simulate.Run(cfg)
	logger.FatalIfError(err)

	fmt.Printf("seed=%d rows=%d pulses=%d samples=%d\n",
		res.Seed, res.Baseband.NRows, res.Baseband.NPulses, res.Baseband.NSamples)
	for k := 0; k < 5 && k < res.Baseband.NSamples; k++ {
		fmt.Printf("  sample[0,0,%d] = %v\n", k, res.Baseband.At(0, 0, k))
	}
}
