package inmemory

import (
	"context"
	"sync"

	"github.com/leofalp/rpncalc/providers/memory"
	"github.com/leofalp/rpncalc/providers/observability"
)

// Tape is an in-memory calculation history. When a capacity is set the oldest
// entries are dropped to make room for new ones.
type Tape struct {
	mu       sync.RWMutex
	entries  []memory.Entry
	capacity int
}

// Option configures a Tape.
type Option func(*Tape)

// WithCapacity keeps at most n entries. Zero or negative means unbounded.
func WithCapacity(n int) Option {
	return func(t *Tape) {
		t.capacity = n
	}
}

// New returns an empty Tape.
func New(opts ...Option) *Tape {
	t := &Tape{entries: []memory.Entry{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ memory.Provider = (*Tape)(nil)

// Append stores entry at the end of the tape. When ctx carries a span an
// append event and the resulting entry count are recorded on it.
func (t *Tape) Append(ctx context.Context, entry memory.Entry) {
	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.AddEvent(observability.EventMemoryAppend,
			observability.String(observability.AttrCalcInput, entry.Input),
		)
	}

	t.mu.Lock()
	t.entries = append(t.entries, entry)
	if t.capacity > 0 && len(t.entries) > t.capacity {
		t.entries = append(t.entries[:0], t.entries[len(t.entries)-t.capacity:]...)
	}
	total := len(t.entries)
	t.mu.Unlock()

	if span != nil {
		span.SetAttributes(observability.Int(observability.AttrMemoryTotalEntries, total))
	}
}

// Count returns the number of stored entries. The error is always nil.
func (t *Tape) Count(_ context.Context) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries), nil
}

// All returns a copy of every entry, oldest first.
func (t *Tape) All(_ context.Context) ([]memory.Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]memory.Entry, len(t.entries))
	copy(out, t.entries)
	return out, nil
}

// Last returns up to the n most recent entries, oldest first. The slice is
// empty, not nil, when n <= 0 or the tape is empty.
func (t *Tape) Last(_ context.Context, n int) ([]memory.Entry, error) {
	if n <= 0 {
		return []memory.Entry{}, nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	n = min(n, len(t.entries))
	out := make([]memory.Entry, n)
	copy(out, t.entries[len(t.entries)-n:])
	return out, nil
}

// PopLast removes and returns the most recent entry, or nil if empty.
func (t *Tape) PopLast(_ context.Context) (*memory.Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.entries) == 0 {
		return nil, nil
	}
	idx := len(t.entries) - 1
	entry := t.entries[idx]
	t.entries = t.entries[:idx]
	return &entry, nil
}

// Clear removes every entry and keeps the backing array.
func (t *Tape) Clear(ctx context.Context) {
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventMemoryClear)
	}

	t.mu.Lock()
	t.entries = t.entries[:0]
	t.mu.Unlock()
}

// FilterByKind returns the failed entries whose error kind equals kind.
func (t *Tape) FilterByKind(_ context.Context, kind string) ([]memory.Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []memory.Entry{}
	for _, e := range t.entries {
		if e.Failed() && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out, nil
}
