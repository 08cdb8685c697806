package rpn

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayWidth is the number of characters available to show a result,
// including the leading minus sign of a negative value.
const DisplayWidth = 8

// Calculator evaluates a textual expression to an integer.
type Calculator interface {
	Calculate(input string) (int, error)
}

// Expression is a parsed input: two operands and the operator joining them.
type Expression struct {
	Left  int
	Right int
	Op    Operator
}

// Parse splits input into its operator and two integer operands.
//
// The operator is the last character of input when it is one of + - * / % ^;
// every occurrence of that character is then removed before the operands are
// read. Otherwise the operator is [DefaultOperator]. Commas count as spaces,
// and operands are separated by runs of spaces.
func Parse(input string) (Expression, error) {
	op := DefaultOperator
	if n := len(input); n > 0 {
		if found, ok := ParseOperator(input[n-1]); ok {
			op = found
			input = strings.ReplaceAll(input, found.String(), "")
		}
	}

	input = strings.ReplaceAll(input, ",", " ")
	tokens := strings.FieldsFunc(input, func(r rune) bool { return r == ' ' })

	operands := make([]int, 0, 2)
	for _, token := range tokens {
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return Expression{}, invalidInput("%q is not an integer", token)
		}
		operands = append(operands, int(v))
	}
	if len(operands) != 2 {
		return Expression{}, invalidInput("expected 2 operands, got %d", len(operands))
	}

	return Expression{Left: operands[0], Right: operands[1], Op: op}, nil
}

// Evaluate applies the operator and checks the result against the display.
func (e Expression) Evaluate() (int, error) {
	r, err := e.Op.Apply(int64(e.Left), int64(e.Right))
	if err != nil {
		return 0, err
	}
	return CheckDisplay(r)
}

// String renders the expression in reverse Polish notation.
func (e Expression) String() string {
	return strconv.Itoa(e.Left) + " " + strconv.Itoa(e.Right) + " " + e.Op.String()
}

// CheckDisplay returns v as an int when its decimal form fits [DisplayWidth],
// and an error wrapping [ErrDisplayOverflow] otherwise.
func CheckDisplay(v int64) (int, error) {
	s := strconv.FormatInt(v, 10)
	if len(s) > DisplayWidth {
		return 0, fmt.Errorf("%w: %s is %d characters", ErrDisplayOverflow, s, len(s))
	}
	return int(v), nil
}

// Calculate parses and evaluates input.
//
// Example:
//
//	v, err := rpn.Calculate("7, 2%")
//	// v == 1
func Calculate(input string) (int, error) {
	expr, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return expr.Evaluate()
}
