// Package calculator exposes the rpn evaluator as a tool. Clients send an
// expression such as "3 4 +" or "7, 2%" and get back the integer result and
// the text shown on the 8-character display.
//
// [NewCalculatorTool] returns a [tool.Tool] ready to be added to a
// [tool.Catalog]; [Calc] is the underlying function.
package calculator
