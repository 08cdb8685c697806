package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/leofalp/rpncalc/providers/memory"
	"github.com/leofalp/rpncalc/providers/observability"
)

func entry(input string) memory.Entry {
	return memory.Entry{Input: input}
}

func TestTape_AppendAndAll(t *testing.T) {
	ctx := context.Background()
	tape := New()
	if n, _ := tape.Count(ctx); n != 0 {
		t.Fatalf("expected an empty tape, got %d", n)
	}

	tape.Append(ctx, memory.Entry{Input: "3 4", Result: 7})
	tape.Append(ctx, memory.Entry{Input: "1", Error: "invalid", Kind: "invalid_input"})

	if n, _ := tape.Count(ctx); n != 2 {
		t.Fatalf("expected 2 entries, got %d", n)
	}

	all, _ := tape.All(ctx)
	all[0].Input = "changed"
	again, _ := tape.All(ctx)
	if again[0].Input != "3 4" {
		t.Fatal("All must return a copy")
	}
	if !again[1].Failed() || again[0].Failed() {
		t.Errorf("Failed() mismatch: %+v", again)
	}
}

func TestTape_Last(t *testing.T) {
	ctx := context.Background()
	tape := New()
	for i := 0; i < 5; i++ {
		tape.Append(ctx, entry(fmt.Sprint(i)))
	}

	tests := []struct {
		n    int
		want []string
	}{
		{2, []string{"3", "4"}},
		{0, []string{}},
		{-1, []string{}},
		{10, []string{"0", "1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		got, err := tape.Last(ctx, tt.n)
		if err != nil {
			t.Fatalf("Last(%d) error: %v", tt.n, err)
		}
		if got == nil || len(got) != len(tt.want) {
			t.Fatalf("Last(%d) = %v, want %v", tt.n, got, tt.want)
		}
		for i := range got {
			if got[i].Input != tt.want[i] {
				t.Errorf("Last(%d)[%d] = %q, want %q", tt.n, i, got[i].Input, tt.want[i])
			}
		}
	}
}

func TestTape_Capacity(t *testing.T) {
	ctx := context.Background()
	tape := New(WithCapacity(3))
	for i := 0; i < 7; i++ {
		tape.Append(ctx, entry(fmt.Sprint(i)))
	}

	all, _ := tape.All(ctx)
	if len(all) != 3 || all[0].Input != "4" || all[2].Input != "6" {
		t.Errorf("All() = %v, want entries 4..6", all)
	}
}

func TestTape_PopLastAndClear(t *testing.T) {
	ctx := context.Background()
	tape := New()
	if got, _ := tape.PopLast(ctx); got != nil {
		t.Fatalf("PopLast on empty tape = %+v, want nil", got)
	}

	tape.Append(ctx, entry("a"))
	tape.Append(ctx, entry("b"))
	got, _ := tape.PopLast(ctx)
	if got == nil || got.Input != "b" {
		t.Fatalf("PopLast = %+v, want b", got)
	}

	tape.Clear(ctx)
	if n, _ := tape.Count(ctx); n != 0 {
		t.Errorf("Count after Clear = %d", n)
	}
}

func TestTape_FilterByKind(t *testing.T) {
	ctx := context.Background()
	tape := New()
	tape.Append(ctx, memory.Entry{Input: "1 2", Result: 3})
	tape.Append(ctx, memory.Entry{Input: "1 0 /", Error: "x", Kind: "arithmetic"})
	tape.Append(ctx, memory.Entry{Input: "", Error: "y", Kind: "invalid_input"})
	tape.Append(ctx, memory.Entry{Input: "5 0 %", Error: "z", Kind: "arithmetic"})

	got, _ := tape.FilterByKind(ctx, "arithmetic")
	if len(got) != 2 || got[0].Input != "1 0 /" || got[1].Input != "5 0 %" {
		t.Errorf("FilterByKind = %v", got)
	}
	if none, _ := tape.FilterByKind(ctx, "display_overflow"); none == nil || len(none) != 0 {
		t.Errorf("expected an empty non-nil slice, got %v", none)
	}
}

type eventSpan struct {
	events []string
	attrs  map[string]any
}

func (s *eventSpan) End() {}
func (s *eventSpan) SetStatus(observability.StatusCode, string) {}
func (s *eventSpan) RecordError(error) {}
func (s *eventSpan) AddEvent(name string, _ ...observability.Attribute) {
	s.events = append(s.events, name)
}
func (s *eventSpan) SetAttributes(attrs ...observability.Attribute) {
	for _, a := range attrs {
		s.attrs[a.Key] = a.Value
	}
}

func TestTape_SpanEvents(t *testing.T) {
	span := &eventSpan{attrs: map[string]any{}}
	ctx := observability.ContextWithSpan(context.Background(), span)
	tape := New()

	tape.Append(ctx, entry("1 1"))
	tape.Append(ctx, entry("2 2"))
	tape.Clear(ctx)

	want := []string{observability.EventMemoryAppend, observability.EventMemoryAppend, observability.EventMemoryClear}
	if fmt.Sprint(span.events) != fmt.Sprint(want) {
		t.Errorf("events = %v, want %v", span.events, want)
	}
	if span.attrs[observability.AttrMemoryTotalEntries] != 2 {
		t.Errorf("total entries = %v, want 2", span.attrs[observability.AttrMemoryTotalEntries])
	}
}

func TestTape_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	tape := New()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tape.Append(ctx, entry("1 1"))
			}
		}()
	}
	wg.Wait()

	if n, _ := tape.Count(ctx); n != 1000 {
		t.Errorf("Count = %d, want 1000", n)
	}
}
