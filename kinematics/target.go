package kinematics

import "math"

// Target is a moving point reflector.
type Target struct {
	Location [3]Coordinate
	Velocity [3]float64
	RCSdBsm  float64
	PhaseDeg float64
}

// NewLiteralTarget builds a Target whose location is a fixed point,
// drifting only by Velocity.
func NewLiteralTarget(location, velocity [3]float64, rcsDBsm, phaseDeg float64) *Target {
	return &Target{
		Location: [3]Coordinate{Literal(location[0]), Literal(location[1]), Literal(location[2])},
		Velocity: velocity,
		RCSdBsm:  rcsDBsm,
		PhaseDeg: phaseDeg,
	}
}

// PositionAt returns p_t0(t) + velocity*t.
func (t *Target) PositionAt(tau float64) [3]float64 {
	return [3]float64{
		t.Location[0].At(tau) + t.Velocity[0]*tau,
		t.Location[1].At(tau) + t.Velocity[1]*tau,
		t.Location[2].At(tau) + t.Velocity[2]*tau,
	}
}

// IsZeroReflectivity reports whether the target contributes nothing to
// the baseband, i.e. its rcs_dBsm is -Inf. Finite values, however
// small, are not treated as zero.
func (t *Target) IsZeroReflectivity() bool {
	return math.IsInf(t.RCSdBsm, -1)
}
