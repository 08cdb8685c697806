// Command rpncalc evaluates two-operand integer expressions.
//
//	rpncalc 3 4 +        # prints 7
//	rpncalc -- -3 4 '*'  # "--" ends the flags so negative operands parse
//	echo "7, 2%" | rpncalc
//
// With arguments the joined arguments are evaluated once and the exit status
// reports the outcome: 0 success, 1 invalid input, 2 display overflow,
// 3 arithmetic fault. Without arguments every line of stdin is evaluated.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leofalp/rpncalc/core/overview"
	"github.com/leofalp/rpncalc/core/rpn"
	"github.com/leofalp/rpncalc/internal/config"
	"github.com/leofalp/rpncalc/internal/utils"
	"github.com/leofalp/rpncalc/providers/observability"
	"github.com/leofalp/rpncalc/providers/observability/slogobs"
)

const (
	exitOK = iota
	exitInvalidInput
	exitDisplayOverflow
	exitArithmetic
	exitUsage = 64
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("rpncalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: rpncalc [flags] [--] [expression ...]")
		fs.PrintDefaults()
	}
	cfg.RegisterFlags(fs)
	summary := fs.Bool("summary", false, "print a JSON summary of the session to stderr when done")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	opts := append(cfg.ObserverOptions(), slogobs.WithOutput(stderr))
	observer := slogobs.New(opts...)
	evaluator := rpn.New(rpn.WithObserver(observer))

	ctx := context.Background()
	session := overview.OverviewFromContext(&ctx)
	session.StartSession()
	if *summary {
		defer func() {
			session.EndSession()
			fmt.Fprintln(stderr, utils.JSONToString(session, true))
		}()
	}

	if fs.NArg() > 0 {
		return evaluate(ctx, evaluator, strings.Join(fs.Args(), " "), stdout)
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		evaluate(ctx, evaluator, scanner.Text(), stdout)
	}
	if err := scanner.Err(); err != nil {
		observer.Error(ctx, "Reading input failed", observability.Error(err))
		return exitUsage
	}
	observer.Debug(ctx, "Input exhausted", observability.String("summary", session.String()))
	return exitOK
}

// evaluate prints the result of one expression and returns its exit code.
func evaluate(ctx context.Context, evaluator *rpn.Evaluator, input string, stdout io.Writer) int {
	result, err := evaluator.CalculateContext(ctx, input)
	if err != nil {
		fmt.Fprintf(stdout, "error: %v\n", err)
		return exitCode(err)
	}
	fmt.Fprintln(stdout, result)
	return exitOK
}

func exitCode(err error) int {
	switch rpn.KindOf(err) {
	case rpn.KindInvalidInput:
		return exitInvalidInput
	case rpn.KindDisplayOverflow:
		return exitDisplayOverflow
	case rpn.KindArithmetic:
		return exitArithmetic
	default:
		return exitUsage
	}
}
