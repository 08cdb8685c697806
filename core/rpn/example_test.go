package rpn_test

import (
	"errors"
	"fmt"

	"github.com/leofalp/rpncalc/core/rpn"
)

func ExampleCalculate() {
	for _, input := range []string{"3 4", "3 4 *", "7, 2%", "2 10 ^"} {
		v, _ := rpn.Calculate(input)
		fmt.Println(input, "=", v)
	}
	// Output:
	// 3 4 = 7
	// 3 4 * = 12
	// 7, 2% = 1
	// 2 10 ^ = 1024
}

func ExampleCalculate_errors() {
	_, err := rpn.Calculate("99999 99999 *")
	fmt.Println(errors.Is(err, rpn.ErrDisplayOverflow))

	_, err = rpn.Calculate("1 0 /")
	fmt.Println(rpn.KindOf(err))
	// Output:
	// true
	// arithmetic
}

func ExampleParse() {
	expr, _ := rpn.Parse("12, 5-")
	fmt.Println(expr)
	// Output: 12 5 -
}
