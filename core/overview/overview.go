package overview

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/leofalp/rpncalc/internal/utils"
	"github.com/leofalp/rpncalc/providers/memory"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const overviewContextKey contextKey = "overview"

// Overview aggregates the outcome of every calculation in a session. It is
// safe for concurrent use.
type Overview struct {
	mu sync.Mutex

	Calculations int            `json:"calculations"`
	Succeeded    int            `json:"succeeded"`
	Failed       int            `json:"failed"`
	ByOperator   map[string]int `json:"by_operator,omitempty"`
	ByErrorKind  map[string]int `json:"by_error_kind,omitempty"`
	// LastResult is the result of the most recent successful calculation.
	LastResult *int `json:"last_result,omitempty"`

	StartTime time.Time `json:"start_time,omitzero"`
	EndTime   time.Time `json:"end_time,omitzero"`
}

// New returns an empty Overview.
func New() *Overview {
	return &Overview{
		ByOperator:  make(map[string]int),
		ByErrorKind: make(map[string]int),
	}
}

// FromEntries summarizes a stored history. Start and end times are taken
// from the first and last entries.
func FromEntries(entries []memory.Entry) *Overview {
	o := New()
	for _, e := range entries {
		o.Add(e)
	}
	if len(entries) > 0 {
		o.StartTime = entries[0].At
		o.EndTime = entries[len(entries)-1].At
	}
	return o
}

// OverviewFromContext retrieves the Overview from the context, creating one if
// it does not already exist. The context pointer is updated in place when a new
// Overview is created so callers see the enriched context.
func OverviewFromContext(ctx *context.Context) *Overview {
	if o := Lookup(*ctx); o != nil {
		return o
	}
	if (*ctx).Value(overviewContextKey) != nil {
		return nil
	}
	o := New()
	*ctx = o.ToContext(*ctx)
	return o
}

// Lookup returns the Overview stored in ctx, or nil. Unlike
// [OverviewFromContext] it never creates one.
func Lookup(ctx context.Context) *Overview {
	if ctx == nil {
		return nil
	}
	o, _ := ctx.Value(overviewContextKey).(*Overview)
	return o
}

// ToContext stores the Overview in the given context and returns the enriched context.
func (o *Overview) ToContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, overviewContextKey, o)
}

// Add records one calculation.
func (o *Overview) Add(e memory.Entry) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ByOperator == nil {
		o.ByOperator = make(map[string]int)
	}
	if o.ByErrorKind == nil {
		o.ByErrorKind = make(map[string]int)
	}

	o.Calculations++
	if e.Operator != "" {
		o.ByOperator[e.Operator]++
	}
	if e.Failed() {
		o.Failed++
		o.ByErrorKind[e.Kind]++
		return
	}
	o.Succeeded++
	o.LastResult = utils.Ptr(e.Result)
}

// StartSession marks the start of the session.
func (o *Overview) StartSession() {
	o.mu.Lock()
	o.StartTime = time.Now()
	o.mu.Unlock()
}

// EndSession marks the end of the session.
func (o *Overview) EndSession() {
	o.mu.Lock()
	o.EndTime = time.Now()
	o.mu.Unlock()
}

// Duration returns the session length, or 0 if it has not both started and ended.
func (o *Overview) Duration() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.StartTime.IsZero() || o.EndTime.IsZero() {
		return 0
	}
	return o.EndTime.Sub(o.StartTime)
}

// SuccessRate returns the fraction of calculations that succeeded, 0 when
// nothing was calculated.
func (o *Overview) SuccessRate() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Calculations == 0 {
		return 0
	}
	return float64(o.Succeeded) / float64(o.Calculations)
}

// String renders a one-line summary such as
// "5 calculations, 4 ok, 1 failed (arithmetic=1), operators: *=2 +=3".
func (o *Overview) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%d calculations, %d ok, %d failed", o.Calculations, o.Succeeded, o.Failed)
	if len(o.ByErrorKind) > 0 {
		fmt.Fprintf(&b, " (%s)", joinCounts(o.ByErrorKind))
	}
	if len(o.ByOperator) > 0 {
		fmt.Fprintf(&b, ", operators: %s", joinCounts(o.ByOperator))
	}
	return b.String()
}

func joinCounts(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, " ")
}
