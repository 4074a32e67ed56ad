package kinematics

import "math"

// SpeedOfLight is c, meters/second.
const SpeedOfLight = 299792458.0

// Geometry is the relative geometry between a target and one virtual
// channel's transmit and receive elements, in the platform body frame.
type Geometry struct {
	RangeTx, RangeRx float64 // meters
	AzTxDeg, ElTxDeg float64 // degrees, from the tx element to the target
	AzRxDeg, ElRxDeg float64 // degrees, from the rx element to the target
	DelaySec         float64 // round-trip delay, seconds
}

// Compute derives the Geometry for a target at world position
// targetWorld, given the platform pose and the tx/rx element offsets
// (body-frame, e.g. antenna.Channel.Location).
func Compute(pose Pose, txOffset, rxOffset, targetWorld [3]float64) Geometry {
	rel := sub(targetWorld, pose.Location)
	body := worldToBody(rel, pose.Rotation)

	dTx := sub(body, txOffset)
	dRx := sub(body, rxOffset)
	rTx := norm(dTx)
	rRx := norm(dRx)
	azTx, elTx := azEl(dTx)
	azRx, elRx := azEl(dRx)

	return Geometry{
		RangeTx: rTx, RangeRx: rRx,
		AzTxDeg: azTx, ElTxDeg: elTx,
		AzRxDeg: azRx, ElRxDeg: elRx,
		DelaySec: (rTx + rRx) / SpeedOfLight,
	}
}

// Pose is the subset of the platform state the kinematics package
// needs: body origin, and yaw/pitch/roll in radians.
type Pose struct {
	Location [3]float64
	Rotation [3]float64
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// azEl returns azimuth = atan2(dy, dx) and elevation = atan2(dz,
// sqrt(dx^2+dy^2)), both in degrees.
func azEl(v [3]float64) (azDeg, elDeg float64) {
	az := math.Atan2(v[1], v[0])
	el := math.Atan2(v[2], math.Hypot(v[0], v[1]))
	return az * 180 / math.Pi, el * 180 / math.Pi
}

// worldToBody rotates a world-frame vector into the platform body
// frame. rot is (yaw, pitch, roll) in radians; the platform's own
// body-to-world transform is the intrinsic rotation Rz(yaw) * Ry(pitch)
// * Rx(roll), so the world-to-body transform applies the inverse in
// the same axis order, Z then Y then X, with negated angles.
func worldToBody(v, rot [3]float64) [3]float64 {
	v = rotateZ(v, -rot[0])
	v = rotateY(v, -rot[1])
	v = rotateX(v, -rot[2])
	return v
}

func rotateZ(v [3]float64, a float64) [3]float64 {
	s, c := math.Sincos(a)
	return [3]float64{v[0]*c - v[1]*s, v[0]*s + v[1]*c, v[2]}
}

func rotateY(v [3]float64, a float64) [3]float64 {
	s, c := math.Sincos(a)
	return [3]float64{v[0]*c + v[2]*s, v[1], -v[0]*s + v[2]*c}
}

func rotateX(v [3]float64, a float64) [3]float64 {
	s, c := math.Sincos(a)
	return [3]float64{v[0], v[1]*c - v[2]*s, v[1]*s + v[2]*c}
}
