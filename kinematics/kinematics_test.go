package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openthread/radarsim/locexpr"
)

func TestPositionAtAddsVelocity(t *testing.T) {
	tg := NewLiteralTarget([3]float64{10, 0, 0}, [3]float64{-10, 0, 0}, 20, 0)
	p := tg.PositionAt(1)
	require.InDelta(t, 0, p[0], 1e-9)
}

func TestPositionAtUsesExpressionCoordinate(t *testing.T) {
	e, err := locexpr.Parse("1.5 + 0.001*sin(2*pi*t)")
	require.NoError(t, err)
	tg := &Target{Location: [3]Coordinate{Expression(e), Literal(0), Literal(0)}}
	p := tg.PositionAt(0.25)
	require.InDelta(t, 1.5+0.001*math.Sin(2*math.Pi*0.25), p[0], 1e-9)
}

func TestIsZeroReflectivity(t *testing.T) {
	tg := NewLiteralTarget([3]float64{}, [3]float64{}, math.Inf(-1), 0)
	require.True(t, tg.IsZeroReflectivity())
	tg2 := NewLiteralTarget([3]float64{}, [3]float64{}, 20, 0)
	require.False(t, tg2.IsZeroReflectivity())
}

func TestComputeNoRotationMatchesWorldFrame(t *testing.T) {
	g := Compute(Pose{}, [3]float64{-1, 0, 0}, [3]float64{1, 0, 0}, [3]float64{10, 0, 0})
	require.InDelta(t, 11, g.RangeTx, 1e-9)
	require.InDelta(t, 9, g.RangeRx, 1e-9)
	require.InDelta(t, 0, g.AzTxDeg, 1e-9)
	require.InDelta(t, 0, g.ElTxDeg, 1e-9)
	require.InDelta(t, (11+9)/SpeedOfLight, g.DelaySec, 1e-15)
}

func TestComputeAzimuthElevationSigns(t *testing.T) {
	g := Compute(Pose{}, [3]float64{}, [3]float64{}, [3]float64{0, 1, 0})
	require.InDelta(t, 90, g.AzTxDeg, 1e-9)
	require.InDelta(t, 0, g.ElTxDeg, 1e-9)

	g2 := Compute(Pose{}, [3]float64{}, [3]float64{}, [3]float64{0, 0, 1})
	require.InDelta(t, 90, g2.ElTxDeg, 1e-9)
}

func TestComputeYawRotatesFrame(t *testing.T) {
	// a target directly ahead in world frame (+x) appears at azimuth
	// -90 deg in a body frame yawed +90 deg (since world->body applies
	// the inverse rotation).
	g := Compute(Pose{Rotation: [3]float64{math.Pi / 2, 0, 0}}, [3]float64{}, [3]float64{}, [3]float64{10, 0, 0})
	require.InDelta(t, -90, g.AzTxDeg, 1e-6)
}

func TestComputeTranslatesByPlatformLocation(t *testing.T) {
	g := Compute(Pose{Location: [3]float64{5, 0, 0}}, [3]float64{}, [3]float64{}, [3]float64{10, 0, 0})
	require.InDelta(t, 5, g.RangeTx, 1e-9)
}
