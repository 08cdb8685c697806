// Package rpn evaluates two-operand integer expressions written in reverse
// Polish ("3 4 +") or comma-separated ("3, 4+") notation.
//
// The main entry point is [Calculate]. An expression holds exactly two
// integers and an optional trailing operator (one of + - * / % ^); without
// an operator the operands are added. Results must fit an 8-character
// display, see [DisplayWidth].
//
// Failures are reported through sentinel errors that can be matched with
// [errors.Is]: [ErrInvalidInput] for malformed input, [ErrDisplayOverflow]
// for results that are too wide and [ErrArithmetic] for runtime faults such
// as division by zero. [KindOf] classifies an error into a [Kind].
//
// [Evaluator] wraps the same computation with optional observability; use
// [New] with [WithObserver] to trace and count evaluations.
package rpn
