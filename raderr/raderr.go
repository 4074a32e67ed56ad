// Package raderr defines the error kinds surfaced when constructing a
// radar simulation. All five kinds are detected at construction time;
// the synthesizer's hot path never returns an error.
package raderr

import "github.com/pkg/errors"

// Kind identifies which construction-time check failed.
type Kind int

const (
	// InvalidWaveform covers breakpoint-length mismatches, non-monotonic
	// time, pulse_length > prp, negative bandwidth, and empty channel lists.
	InvalidWaveform Kind = iota
	// InvalidPattern covers angle/pattern length mismatches and
	// non-monotonic angle tables.
	InvalidPattern
	// InvalidMask covers phase-noise mask frequency/level length mismatches.
	InvalidMask
	// ShapeMismatch covers per-sample platform fields of the wrong shape.
	ShapeMismatch
	// InvalidConfig covers unknown bb_type, non-positive fs, and
	// non-positive load_resistor.
	InvalidConfig
)

func (k Kind) String() string {
	switch k {
	case InvalidWaveform:
		return "InvalidWaveform"
	case InvalidPattern:
		return "InvalidPattern"
	case InvalidMask:
		return "InvalidMask"
	case ShapeMismatch:
		return "ShapeMismatch"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// Error is the single failure type constructors return. It carries the
// Kind so callers can switch on the category without string matching.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Kind.String() + ": " + e.msg + ": " + e.err.Error()
	}
	return e.Kind.String() + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// New constructs a Kind-tagged error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: errors.Errorf(format, args...).Error()}
}

// Wrap tags an existing error with a Kind and additional context.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: errors.Errorf(format, args...).Error(), err: err}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	re, ok := err.(*Error)
	return ok && re.Kind == kind
}
