package calculator

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/leofalp/rpncalc/core/rpn"
	"github.com/leofalp/rpncalc/providers/memory/inmemory"
)

func TestHistoryTool(t *testing.T) {
	ctx := context.Background()
	tape := inmemory.New()
	calcTool := NewCalculatorTool(rpn.WithHistory(tape))
	historyTool := NewHistoryTool(tape)

	for _, expr := range []string{"1 2", "3 4 *", "5 0 /", "6 7 -"} {
		_, _ = calcTool.Call(ctx, `{"expression": "`+expr+`"}`)
	}

	tests := []struct {
		name      string
		input     string
		wantCount int
		wantFirst string
	}{
		{"default", `{}`, 4, "1 2"},
		{"last two", `{"last": 2}`, 2, "5 0 /"},
		{"null input", `null`, 4, "1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := historyTool.Call(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var out HistoryOutput
			if err := json.Unmarshal([]byte(raw), &out); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if len(out.Entries) != tt.wantCount {
				t.Fatalf("got %d entries, want %d", len(out.Entries), tt.wantCount)
			}
			if out.Entries[0].Input != tt.wantFirst {
				t.Errorf("first entry = %q, want %q", out.Entries[0].Input, tt.wantFirst)
			}
			if out.Summary.Calculations != 4 || out.Summary.Failed != 1 {
				t.Errorf("summary = %s", out.Text)
			}
		})
	}
}

func TestHistoryTool_Clear(t *testing.T) {
	ctx := context.Background()
	tape := inmemory.New()
	calcTool := NewCalculatorTool(rpn.WithHistory(tape))
	_, _ = calcTool.Call(ctx, `{"expression": "2 2"}`)

	out, err := readHistory(ctx, tape, HistoryInput{Clear: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Entries) != 1 || out.Entries[0].Result != 4 {
		t.Errorf("entries = %+v", out.Entries)
	}
	if n, _ := tape.Count(ctx); n != 0 {
		t.Errorf("history not cleared, %d entries left", n)
	}
}

func TestNewHistoryTool_Info(t *testing.T) {
	info := NewHistoryTool(inmemory.New()).ToolInfo()
	if info.Name != HistoryName {
		t.Errorf("name = %q, want %q", info.Name, HistoryName)
	}
	for _, prop := range []string{"last", "clear"} {
		if _, ok := info.Parameters.Properties[prop]; !ok {
			t.Errorf("missing %s parameter", prop)
		}
	}
	if len(info.Parameters.Required) != 0 {
		t.Errorf("required = %v, want none", info.Parameters.Required)
	}
}
