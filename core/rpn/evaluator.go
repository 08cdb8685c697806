package rpn

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/rpncalc/core/overview"
	"github.com/leofalp/rpncalc/internal/utils"
	"github.com/leofalp/rpncalc/providers/memory"
	"github.com/leofalp/rpncalc/providers/observability"
)

// Evaluator is a [Calculator] that can report each evaluation to an
// observability provider and record it in a history. The zero value is ready
// to use and behaves exactly like [Calculate].
//
// When the context passed to [Evaluator.CalculateContext] carries an
// [overview.Overview], every evaluation is also tallied there.
type Evaluator struct {
	observer observability.Provider
	history  memory.Provider
}

// Option configures an [Evaluator].
type Option func(*Evaluator)

// WithObserver traces, counts and logs every evaluation through provider.
func WithObserver(provider observability.Provider) Option {
	return func(e *Evaluator) {
		e.observer = provider
	}
}

// WithHistory appends every evaluation, failed ones included, to history.
func WithHistory(history memory.Provider) Option {
	return func(e *Evaluator) {
		e.history = history
	}
}

// New creates an Evaluator configured by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ Calculator = (*Evaluator)(nil)

// Calculate evaluates input with a background context.
func (e *Evaluator) Calculate(input string) (int, error) {
	return e.CalculateContext(context.Background(), input)
}

// CalculateContext evaluates input. The context only carries observability
// data and an optional overview; evaluation never blocks.
func (e *Evaluator) CalculateContext(ctx context.Context, input string) (int, error) {
	if e == nil {
		e = &Evaluator{}
	}
	if e.observer == nil {
		expr, result, err := evaluate(nil, input)
		e.record(ctx, input, expr, result, err)
		return result, err
	}

	ctx, span := e.observer.StartSpan(ctx, observability.SpanCalculate,
		observability.String(observability.AttrCalcInput, input),
	)
	defer span.End()

	timer := utils.NewTimer()
	expr, result, err := evaluate(span, input)
	e.observer.Histogram(observability.MetricCalculationDuration).Record(ctx, float64(timer.Stop().Microseconds()))
	e.record(ctx, input, expr, result, err)

	if err != nil {
		kind := KindOf(err)
		span.RecordError(err)
		span.SetStatus(observability.StatusError, kind.String())
		e.observer.Counter(observability.MetricCalculations).Add(ctx, 1,
			observability.String(observability.AttrStatus, "error"),
			observability.String(observability.AttrCalcErrorKind, kind.String()),
		)
		e.observer.Warn(ctx, "Calculation failed",
			observability.String(observability.AttrCalcInput, input),
			observability.String(observability.AttrCalcErrorKind, kind.String()),
			observability.Error(err),
		)
		return 0, err
	}

	span.SetAttributes(observability.Int(observability.AttrCalcResult, result))
	span.SetStatus(observability.StatusOK, "")
	e.observer.Counter(observability.MetricCalculations).Add(ctx, 1,
		observability.String(observability.AttrStatus, "ok"),
	)
	e.observer.Debug(ctx, "Calculation completed",
		observability.String(observability.AttrCalcInput, input),
		observability.Int(observability.AttrCalcResult, result),
	)
	return result, nil
}

// evaluate parses and evaluates input. span may be nil. The returned
// expression is the zero value when parsing failed.
func evaluate(span observability.Span, input string) (Expression, int, error) {
	expr, err := Parse(input)
	if err != nil {
		return Expression{}, 0, err
	}
	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrCalcOperator, expr.Op.String()),
			observability.Int(observability.AttrCalcLeft, expr.Left),
			observability.Int(observability.AttrCalcRight, expr.Right),
		)
	}
	result, err := expr.Evaluate()
	return expr, result, err
}

func (e *Evaluator) record(ctx context.Context, input string, expr Expression, result int, err error) {
	tally := overview.Lookup(ctx)
	if e.history == nil && tally == nil {
		return
	}

	entry := memory.Entry{ID: uuid.NewString(), Input: input, Result: result, At: time.Now()}
	if expr.Op != 0 {
		entry.Operator = expr.Op.String()
	}
	if err != nil {
		entry.Result = 0
		entry.Error = err.Error()
		entry.Kind = KindOf(err).String()
	}

	if e.history != nil {
		e.history.Append(ctx, entry)
	}
	if tally != nil {
		tally.Add(entry)
	}
}
