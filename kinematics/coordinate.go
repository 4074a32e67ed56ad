// Package kinematics time-evolves target position to a per-sample
// state and computes the relative geometry (range, azimuth, elevation,
// round-trip delay) to each virtual channel in the platform body frame
// (component E).
package kinematics

import "github.com/openthread/radarsim/locexpr"

// Coordinate is one target location component: a literal number or a
// scalar function of time. This replaces the eval-style string
// expressions of the source implementation with an explicit sum type;
// no string evaluation ever runs in the hot path.
type Coordinate struct {
	literal float64
	expr    *locexpr.Expr
}

// Literal builds a constant Coordinate.
func Literal(v float64) Coordinate { return Coordinate{literal: v} }

// Expression builds a Coordinate driven by a parsed scalar function of t.
func Expression(e *locexpr.Expr) Coordinate { return Coordinate{expr: e} }

// At evaluates the coordinate at time t, seconds.
func (c Coordinate) At(t float64) float64 {
	if c.expr != nil {
		return c.expr.Eval(t)
	}
	return c.literal
}
