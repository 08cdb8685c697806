package rpn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the input is empty, does not contain
	// exactly two operands, or contains a token that is not an integer.
	ErrInvalidInput = errors.New("rpncalc: invalid input")

	// ErrDisplayOverflow is returned when the decimal form of a result is
	// wider than [DisplayWidth] characters.
	ErrDisplayOverflow = fmt.Errorf("rpncalc: calculation output may not exceed %d characters", DisplayWidth)

	// ErrArithmetic marks runtime faults raised while applying an operator.
	ErrArithmetic = errors.New("rpncalc: arithmetic fault")

	// ErrDivideByZero is returned by / and % when the second operand is zero.
	// It wraps [ErrArithmetic].
	ErrDivideByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)
)

// Kind identifies which class of failure an error belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindDisplayOverflow
	KindArithmetic
)

// String returns the lower-case name used in logs and metric attributes.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindDisplayOverflow:
		return "display_overflow"
	case KindArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// KindOf classifies err. A nil error and errors not produced by this package
// are reported as [KindUnknown].
//
// Example:
//
//	if _, err := rpn.Calculate(line); rpn.KindOf(err) == rpn.KindDisplayOverflow {
//	    fmt.Println("E")
//	}
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrDisplayOverflow):
		return KindDisplayOverflow
	case errors.Is(err, ErrArithmetic):
		return KindArithmetic
	default:
		return KindUnknown
	}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
