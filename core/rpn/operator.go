package rpn

import (
	"math"
)

// Operator is one of the binary operators an expression may end with.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpMod Operator = '%'
	OpPow Operator = '^'
)

// DefaultOperator is applied when the input does not end with an operator.
const DefaultOperator = OpAdd

// operations maps each supported operator to its binary function. Operands
// are 32-bit values widened to 64 bits, so + - and * cannot wrap.
var operations = map[Operator]func(a, b int64) (int64, error){
	OpAdd: func(a, b int64) (int64, error) { return a + b, nil },
	OpSub: func(a, b int64) (int64, error) { return a - b, nil },
	OpMul: func(a, b int64) (int64, error) { return a * b, nil },
	OpDiv: func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	},
	OpMod: func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a % b, nil
	},
	OpPow: power,
}

// Operators returns the supported operators in a stable order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow}
}

// ParseOperator reports whether c is a supported operator symbol.
func ParseOperator(c byte) (Operator, bool) {
	op := Operator(c)
	_, ok := operations[op]
	return op, ok
}

// String returns the operator symbol.
func (op Operator) String() string {
	return string(rune(op))
}

// Apply computes a op b. Division and remainder truncate toward zero, so the
// remainder takes the sign of a.
func (op Operator) Apply(a, b int64) (int64, error) {
	fn, ok := operations[op]
	if !ok {
		return 0, invalidInput("unsupported operator %q", op.String())
	}
	return fn(a, b)
}

// power raises a to b and truncates toward zero. Results that do not fit an
// int64 (including the infinity of 0 ^ -n) can never fit the display.
func power(a, b int64) (int64, error) {
	r := math.Trunc(math.Pow(float64(a), float64(b)))
	if math.IsNaN(r) || math.IsInf(r, 0) || r >= math.MaxInt64 || r < math.MinInt64 {
		return 0, ErrDisplayOverflow
	}
	return int64(r), nil
}
