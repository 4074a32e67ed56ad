// Package locexpr parses the small scalar-function-of-time grammar used
// for target location coordinates that are not literal numbers.
// This replaces the `eval`-style string expressions of the source
// implementation (e.g. "1.5 + 1e-3*sin(2*pi*t)") with a tiny typed
// grammar and an explicit evaluator — no string evaluation ever runs.
package locexpr

import (
	"math"

	"github.com/alecthomas/participle"
	"github.com/pkg/errors"
)

// Expr is a parsed scalar function of one variable, t (seconds).
type Expr struct {
	ast *expression
	src string
}

// Eval evaluates the expression at time t.
func (e *Expr) Eval(t float64) float64 {
	return e.ast.eval(t)
}

// String returns the original source text the Expr was parsed from.
func (e *Expr) String() string {
	return e.src
}

// Parse compiles a scalar expression of t, such as "sin(2*pi*t) + 0.5".
// Supported operators are + - * / and unary -, parens, the constant pi,
// the variable t, and the function calls sin, cos, sqrt, abs, exp.
func Parse(src string) (*Expr, error) {
	ast := &expression{}
	if err := exprParser.ParseBytes([]byte(src), ast); err != nil {
		return nil, errors.Wrapf(err, "invalid location expression %q", src)
	}
	return &Expr{ast: ast, src: src}, nil
}

// grammar, precedence-climbed: expression -> term (("+"|"-") term)*
//                               term       -> factor (("*"|"/") factor)*
//                               factor     -> "-" factor | call | "(" expression ")" | ident | number

type expression struct {
	Left  *term    `@@`
	Ops   []string `( @("+" | "-")`
	Right []*term  `  @@ )*`
}

type term struct {
	Left  *factor   `@@`
	Ops   []string  `( @("*" | "/")`
	Right []*factor `  @@ )*`
}

type factor struct {
	Neg   *factor     `  "-" @@`
	Call  *call       `| @@`
	Sub   *expression `| "(" @@ ")"`
	Ident string      `| @Ident`
	Value *float64    `| (@Float | @Int)`
}

type call struct {
	Name string      `@Ident "("`
	Arg  *expression `@@ ")"`
}

var exprParser = participle.MustBuild(&expression{})

func (e *expression) eval(t float64) float64 {
	v := e.Left.eval(t)
	for i, op := range e.Ops {
		rhs := e.Right[i].eval(t)
		switch op {
		case "+":
			v += rhs
		case "-":
			v -= rhs
		}
	}
	return v
}

func (t2 *term) eval(t float64) float64 {
	v := t2.Left.eval(t)
	for i, op := range t2.Ops {
		rhs := t2.Right[i].eval(t)
		switch op {
		case "*":
			v *= rhs
		case "/":
			v /= rhs
		}
	}
	return v
}

func (f *factor) eval(t float64) float64 {
	switch {
	case f.Neg != nil:
		return -f.Neg.eval(t)
	case f.Call != nil:
		return f.Call.eval(t)
	case f.Sub != nil:
		return f.Sub.eval(t)
	case f.Ident == "t":
		return t
	case f.Ident == "pi":
		return math.Pi
	case f.Value != nil:
		return *f.Value
	default:
		return 0
	}
}

func (c *call) eval(t float64) float64 {
	arg := c.Arg.eval(t)
	switch c.Name {
	case "sin":
		return math.Sin(arg)
	case "cos":
		return math.Cos(arg)
	case "sqrt":
		return math.Sqrt(arg)
	case "abs":
		return math.Abs(arg)
	case "exp":
		return math.Exp(arg)
	default:
		return math.NaN()
	}
}
