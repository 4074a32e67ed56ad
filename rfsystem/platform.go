package rfsystem

import (
	"math"

	"github.com/openthread/radarsim/raderr"
)

// Pose is the platform state sampled at one instant: location and
// velocity in meters and meters/second, yaw-pitch-roll rotation and
// rotation rate in radians and radians/second.
type Pose struct {
	Location     [3]float64
	Velocity     [3]float64
	Rotation     [3]float64
	RotationRate [3]float64
}

// PlatformConfig describes platform motion as either four constant
// 3-vectors (scalar mode) or, for any subset, a per-sample field of the
// same length as the baseband cube (field mode). Rotation values are
// given in degrees at this boundary. If any one field is supplied, all
// four quantities are expanded to fields; the scalar ones become
// constant fields of the same length.
type PlatformConfig struct {
	Location      [3]float64
	LocationField [][3]float64

	Velocity      [3]float64
	VelocityField [][3]float64

	RotationDeg      [3]float64
	RotationDegField [][3]float64

	RotationRateDeg      [3]float64
	RotationRateDegField [][3]float64
}

type platform struct {
	isField bool

	loc, vel, rot, rotRate [3]float64
	locF, velF, rotF, rotRateF [][3]float64
}

func newPlatform(cfg PlatformConfig, n int) (*platform, error) {
	anyField := cfg.LocationField != nil || cfg.VelocityField != nil ||
		cfg.RotationDegField != nil || cfg.RotationRateDegField != nil
	if !anyField {
		return &platform{
			loc:     cfg.Location,
			vel:     cfg.Velocity,
			rot:     degToRad3(cfg.RotationDeg),
			rotRate: degToRad3(cfg.RotationRateDeg),
		}, nil
	}

	locF, err := expandField(cfg.LocationField, cfg.Location, n, "location")
	if err != nil {
		return nil, err
	}
	velF, err := expandField(cfg.VelocityField, cfg.Velocity, n, "velocity")
	if err != nil {
		return nil, err
	}
	rotF, err := expandFieldDeg(cfg.RotationDegField, cfg.RotationDeg, n, "rotation")
	if err != nil {
		return nil, err
	}
	rotRateF, err := expandFieldDeg(cfg.RotationRateDegField, cfg.RotationRateDeg, n, "rotation_rate")
	if err != nil {
		return nil, err
	}
	return &platform{isField: true, locF: locF, velF: velF, rotF: rotF, rotRateF: rotRateF}, nil
}

func expandField(field [][3]float64, scalar [3]float64, n int, name string) ([][3]float64, error) {
	if field == nil {
		out := make([][3]float64, n)
		for i := range out {
			out[i] = scalar
		}
		return out, nil
	}
	if len(field) != n {
		return nil, raderr.New(raderr.ShapeMismatch, "%s field has length %d, want %d", name, len(field), n)
	}
	return append([][3]float64(nil), field...), nil
}

func expandFieldDeg(field [][3]float64, scalarDeg [3]float64, n int, name string) ([][3]float64, error) {
	if field == nil {
		out := make([][3]float64, n)
		rad := degToRad3(scalarDeg)
		for i := range out {
			out[i] = rad
		}
		return out, nil
	}
	if len(field) != n {
		return nil, raderr.New(raderr.ShapeMismatch, "%s field has length %d, want %d", name, len(field), n)
	}
	out := make([][3]float64, n)
	for i, v := range field {
		out[i] = degToRad3(v)
	}
	return out, nil
}

func degToRad3(v [3]float64) [3]float64 {
	return [3]float64{v[0] * math.Pi / 180, v[1] * math.Pi / 180, v[2] * math.Pi / 180}
}

// At returns the pose at flat sample index idx (ignored in scalar mode).
func (p *platform) At(idx int) Pose {
	if !p.isField {
		return Pose{Location: p.loc, Velocity: p.vel, Rotation: p.rot, RotationRate: p.rotRate}
	}
	return Pose{Location: p.locF[idx], Velocity: p.velF[idx], Rotation: p.rotF[idx], RotationRate: p.rotRateF[idx]}
}
