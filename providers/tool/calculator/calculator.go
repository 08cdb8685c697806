package calculator

import (
	"context"
	"strconv"

	"github.com/leofalp/rpncalc/core/rpn"
	"github.com/leofalp/rpncalc/providers/tool"
)

// Name is the name the tool is registered under.
const Name = "calculator"

// NewCalculatorTool returns the calculator tool. opts configure the evaluator
// behind it, typically [rpn.WithObserver].
func NewCalculatorTool(opts ...rpn.Option) *tool.Tool[Input, Output] {
	evaluator := rpn.New(opts...)
	return tool.NewTool[Input, Output](
		Name,
		func(ctx context.Context, req Input) (Output, error) {
			return calc(ctx, evaluator, req)
		},
		tool.WithDescription("Evaluates two integers and an optional trailing operator (+ - * / % ^), "+
			"written as \"3 4 +\" or \"3, 4+\". Without an operator the numbers are added. "+
			"Results wider than 8 characters are rejected."),
	)
}

// Calc evaluates req.Expression without observability. Errors wrap
// [rpn.ErrInvalidInput], [rpn.ErrDisplayOverflow] or [rpn.ErrArithmetic].
//
//	out, err := calculator.Calc(ctx, calculator.Input{Expression: "9, 4%"})
//	// out.Result == 1, out.Display == "1"
func Calc(ctx context.Context, req Input) (Output, error) {
	return calc(ctx, nil, req)
}

func calc(ctx context.Context, evaluator *rpn.Evaluator, req Input) (Output, error) {
	result, err := evaluator.CalculateContext(ctx, req.Expression)
	if err != nil {
		return Output{}, err
	}
	return Output{Result: result, Display: strconv.Itoa(result)}, nil
}

// Input is the JSON object a client sends.
type Input struct {
	Expression string `json:"expression" jsonschema:"description=Two integers separated by spaces or commas and an optional trailing operator"`
}

// Output is the JSON object returned on success.
type Output struct {
	Result  int    `json:"result" jsonschema:"description=Integer result of the calculation"`
	Display string `json:"display" jsonschema:"description=Result as shown on the 8-character display"`
}
