package rfsystem

import (
	"github.com/openthread/radarsim/antenna"
	"github.com/openthread/radarsim/raderr"
)

// BasebandType selects whether the receiver reports the full complex
// baseband or only its real part.
type BasebandType int

const (
	ComplexBaseband BasebandType = iota
	RealBaseband
)

// Receiver is a collection of channels plus the RF-chain parameters
// shared by all of them.
type Receiver struct {
	Channels       []*antenna.Channel
	Fs             float64
	NoiseFigureDB  float64
	RFGainDB       float64
	BasebandGainDB float64
	LoadResistor   float64
	BBType         BasebandType
}

// ReceiverConfig collects the constructor parameters for a Receiver.
type ReceiverConfig struct {
	Channels       []*antenna.Channel
	Fs             float64
	NoiseFigureDB  float64
	RFGainDB       float64
	BasebandGainDB float64
	// LoadResistor defaults to 500 ohm if zero.
	LoadResistor float64
	BBType       BasebandType
}

// NewReceiver validates and builds a Receiver.
func NewReceiver(cfg ReceiverConfig) (*Receiver, error) {
	if len(cfg.Channels) == 0 {
		return nil, raderr.New(raderr.InvalidWaveform, "receiver requires at least 1 channel")
	}
	if cfg.Fs <= 0 {
		return nil, raderr.New(raderr.InvalidConfig, "fs %v must be > 0", cfg.Fs)
	}
	loadResistor := cfg.LoadResistor
	if loadResistor == 0 {
		loadResistor = 500
	}
	if loadResistor <= 0 {
		return nil, raderr.New(raderr.InvalidConfig, "load_resistor %v must be > 0", loadResistor)
	}
	if cfg.BBType != ComplexBaseband && cfg.BBType != RealBaseband {
		return nil, raderr.New(raderr.InvalidConfig, "unknown bb_type %v", cfg.BBType)
	}
	return &Receiver{
		Channels:       cfg.Channels,
		Fs:             cfg.Fs,
		NoiseFigureDB:  cfg.NoiseFigureDB,
		RFGainDB:       cfg.RFGainDB,
		BasebandGainDB: cfg.BasebandGainDB,
		LoadResistor:   loadResistor,
		BBType:         cfg.BBType,
	}, nil
}

// NoiseBandwidth returns fs for a complex baseband, fs/2 for a real one.
func (r *Receiver) NoiseBandwidth() float64 {
	if r.BBType == RealBaseband {
		return r.Fs / 2
	}
	return r.Fs
}
