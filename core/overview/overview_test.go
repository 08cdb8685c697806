package overview

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/leofalp/rpncalc/providers/memory"
)

// ========== OverviewFromContext / ToContext ==========

// TestOverviewFromContext_CreatesNew verifies that a new Overview is created and
// injected into the context pointer when none is stored yet.
func TestOverviewFromContext_CreatesNew(t *testing.T) {
	ctx := context.Background()
	overview := OverviewFromContext(&ctx)
	if overview == nil {
		t.Fatal("expected a new Overview, got nil")
	}
	if Lookup(ctx) != overview {
		t.Error("expected context to be updated with the new Overview")
	}
}

// TestOverviewFromContext_ReturnsExisting verifies that the same pointer is
// returned on a second call.
func TestOverviewFromContext_ReturnsExisting(t *testing.T) {
	ctx := context.Background()
	first := OverviewFromContext(&ctx)
	second := OverviewFromContext(&ctx)
	if first != second {
		t.Error("expected the same Overview pointer on second call")
	}
}

// TestOverviewFromContext_WrongType verifies that nil is returned when the key
// holds a value of another type.
func TestOverviewFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), overviewContextKey, "not-an-overview")
	if got := OverviewFromContext(&ctx); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestLookup(t *testing.T) {
	if Lookup(context.Background()) != nil {
		t.Error("expected nil for an empty context")
	}
	var nilCtx context.Context
	if Lookup(nilCtx) != nil {
		t.Error("expected nil for a nil context")
	}
}

// ========== Add / FromEntries ==========

func TestAdd(t *testing.T) {
	o := New()
	o.Add(memory.Entry{Input: "3 4", Operator: "+", Result: 7})
	o.Add(memory.Entry{Input: "3 4 *", Operator: "*", Result: 12})
	o.Add(memory.Entry{Input: "1 0 /", Operator: "/", Error: "division by zero", Kind: "arithmetic"})
	o.Add(memory.Entry{Input: "", Error: "invalid input", Kind: "invalid_input"})

	if o.Calculations != 4 || o.Succeeded != 2 || o.Failed != 2 {
		t.Errorf("counts = %d/%d/%d, want 4/2/2", o.Calculations, o.Succeeded, o.Failed)
	}
	if o.ByOperator["+"] != 1 || o.ByOperator["*"] != 1 || o.ByOperator["/"] != 1 {
		t.Errorf("ByOperator = %v", o.ByOperator)
	}
	if o.ByErrorKind["arithmetic"] != 1 || o.ByErrorKind["invalid_input"] != 1 {
		t.Errorf("ByErrorKind = %v", o.ByErrorKind)
	}
	if o.LastResult == nil || *o.LastResult != 12 {
		t.Errorf("LastResult = %v, want 12", o.LastResult)
	}
	if got := o.SuccessRate(); got != 0.5 {
		t.Errorf("SuccessRate = %v, want 0.5", got)
	}
}

func TestAdd_ZeroValue(t *testing.T) {
	var o Overview
	o.Add(memory.Entry{Operator: "-", Result: -1})
	if o.Calculations != 1 || o.ByOperator["-"] != 1 {
		t.Errorf("zero value Overview did not record: %+v", o.ByOperator)
	}
}

func TestFromEntries(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	entries := []memory.Entry{
		{Input: "1 1", Operator: "+", Result: 2, At: start},
		{Input: "2 2 *", Operator: "*", Result: 4, At: start.Add(time.Second)},
		{Input: "99999 99999 *", Operator: "*", Error: "too wide", Kind: "display_overflow", At: start.Add(3 * time.Second)},
	}

	o := FromEntries(entries)
	if o.Calculations != 3 || o.Failed != 1 {
		t.Errorf("counts = %d calculations, %d failed", o.Calculations, o.Failed)
	}
	if got := o.Duration(); got != 3*time.Second {
		t.Errorf("Duration = %v, want 3s", got)
	}

	want := "3 calculations, 2 ok, 1 failed (display_overflow=1), operators: *=2 +=1"
	if got := o.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFromEntries_Empty(t *testing.T) {
	o := FromEntries(nil)
	if o.Calculations != 0 || o.SuccessRate() != 0 || o.Duration() != 0 {
		t.Errorf("unexpected overview for no entries: %+v", o)
	}
	if got := o.String(); got != "0 calculations, 0 ok, 0 failed" {
		t.Errorf("String() = %q", got)
	}
}

// ========== Session timing ==========

func TestSession(t *testing.T) {
	o := New()
	if o.Duration() != 0 {
		t.Error("expected zero duration before the session starts")
	}
	o.StartSession()
	time.Sleep(time.Millisecond)
	o.EndSession()
	if o.Duration() <= 0 {
		t.Errorf("Duration = %v, want > 0", o.Duration())
	}
}

func TestJSON(t *testing.T) {
	o := New()
	o.Add(memory.Entry{Operator: "^", Result: 1024})

	raw, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(raw)
	for _, want := range []string{`"calculations":1`, `"last_result":1024`, `"by_operator":{"^":1}`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON %s missing %s", got, want)
		}
	}
	if strings.Contains(got, "start_time") {
		t.Errorf("zero times should be omitted: %s", got)
	}
}
