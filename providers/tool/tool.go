package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/leofalp/rpncalc/core/parse"
	"github.com/leofalp/rpncalc/internal/jsonschema"
	"github.com/leofalp/rpncalc/internal/utils"
	"github.com/leofalp/rpncalc/providers/observability"
)

// Tool is a named, typed function with JSON schemas for its input I and
// output O. Create one with [NewTool].
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
}

// Info is what a tool advertises about itself.
type Info struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
}

// GenericTool is a [Tool] with its type parameters erased.
type GenericTool interface {
	// ToolInfo returns the tool's name, description and schemas.
	ToolInfo() Info

	// Call runs the tool on a JSON-encoded input and returns the
	// JSON-encoded output.
	Call(ctx context.Context, inputJSON string) (string, error)
}

type options struct {
	description string
}

// Option configures a tool created by [NewTool].
type Option func(*options)

// WithDescription sets the text clients see when deciding whether to call the tool.
func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// NewTool creates a Tool named name that runs function.
//
//	calc := tool.NewTool("calculator", evaluate,
//	    tool.WithDescription("Evaluates a two-operand expression."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), opts ...Option) *Tool[I, O] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: o.description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
	}
}

var _ GenericTool = (*Tool[struct{}, struct{}])(nil)

func (t *Tool[I, O]) ToolInfo() Info {
	return Info{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Output:      t.Output,
	}
}

// Call decodes inputJSON with [parse.ParseStringAs], runs the function and
// encodes its result. When ctx carries a span, execution start and end events
// and the input, output, duration or error are recorded on it.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, utils.TruncateString(inputJSON, utils.DefaultMaxStringLength)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	input, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		recordFailure(span, err, 0)
		return "", err
	}

	timer := utils.NewTimer()
	output, err := t.Function(ctx, input)
	duration := timer.Stop()
	if err != nil {
		recordFailure(span, err, duration)
		return "", err
	}

	encoded, err := json.Marshal(output)
	if err != nil {
		recordFailure(span, err, duration)
		return "", err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, string(encoded)),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}
	return string(encoded), nil
}

func recordFailure(span observability.Span, err error, duration time.Duration) {
	if span == nil {
		return
	}
	span.RecordError(err)
	attrs := []observability.Attribute{observability.String(observability.AttrToolError, err.Error())}
	if duration > 0 {
		attrs = append(attrs, observability.Duration(observability.AttrToolDuration, duration))
	}
	span.SetAttributes(attrs...)
}
