package calculator

import (
	"context"

	"github.com/leofalp/rpncalc/core/overview"
	"github.com/leofalp/rpncalc/providers/memory"
	"github.com/leofalp/rpncalc/providers/tool"
)

// HistoryName is the name the history tool is registered under.
const HistoryName = "calculator_history"

// defaultHistoryLast is how many entries are returned when the client does
// not ask for a number.
const defaultHistoryLast = 10

// HistoryInput selects how much of the history to return.
type HistoryInput struct {
	Last  int  `json:"last,omitempty" jsonschema:"description=Number of most recent calculations to return (default 10)"`
	Clear bool `json:"clear,omitempty" jsonschema:"description=Erase the history after reading it"`
}

// HistoryOutput lists recent calculations and summarizes the whole history.
type HistoryOutput struct {
	Entries []memory.Entry     `json:"entries"`
	Summary *overview.Overview `json:"summary"`
	Text    string             `json:"text"`
}

// NewHistoryTool returns a tool that reads history. Pair it with a calculator
// tool created with rpn.WithHistory on the same provider.
func NewHistoryTool(history memory.Provider) *tool.Tool[HistoryInput, HistoryOutput] {
	return tool.NewTool[HistoryInput, HistoryOutput](
		HistoryName,
		func(ctx context.Context, req HistoryInput) (HistoryOutput, error) {
			return readHistory(ctx, history, req)
		},
		tool.WithDescription("Lists the most recent calculator evaluations, including failed ones, "+
			"and summarizes every evaluation made so far."),
	)
}

func readHistory(ctx context.Context, history memory.Provider, req HistoryInput) (HistoryOutput, error) {
	all, err := history.All(ctx)
	if err != nil {
		return HistoryOutput{}, err
	}

	n := req.Last
	if n <= 0 {
		n = defaultHistoryLast
	}
	last, err := history.Last(ctx, n)
	if err != nil {
		return HistoryOutput{}, err
	}

	if req.Clear {
		history.Clear(ctx)
	}

	summary := overview.FromEntries(all)
	return HistoryOutput{Entries: last, Summary: summary, Text: summary.String()}, nil
}
