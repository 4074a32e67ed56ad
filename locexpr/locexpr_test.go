package locexpr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	e, err := Parse("1.5")
	require.NoError(t, err)
	require.InDelta(t, 1.5, e.Eval(0), 1e-12)
}

func TestParseArithmetic(t *testing.T) {
	e, err := Parse("1.5 + 2*3 - 1")
	require.NoError(t, err)
	require.InDelta(t, 6.5, e.Eval(0), 1e-12)
}

func TestParseSinOfT(t *testing.T) {
	e, err := Parse("1.5 + 0.001*sin(2*pi*t)")
	require.NoError(t, err)
	require.InDelta(t, 1.5, e.Eval(0), 1e-9)
	require.InDelta(t, 1.5+0.001*math.Sin(2*math.Pi*0.25), e.Eval(0.25), 1e-9)
}

func TestParseNegationAndParens(t *testing.T) {
	e, err := Parse("-(2 + 3)")
	require.NoError(t, err)
	require.InDelta(t, -5, e.Eval(0), 1e-12)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("2 +* 3")
	require.Error(t, err)
}
