package memory

import (
	"context"
	"time"
)

// Entry is one evaluated expression.
type Entry struct {
	ID       string    `json:"id"`
	Input    string    `json:"input"`
	Operator string    `json:"operator,omitempty"`
	Result   int       `json:"result"`
	Error    string    `json:"error,omitempty"`
	Kind     string    `json:"kind,omitempty"`
	At       time.Time `json:"at"`
}

// Failed reports whether the expression was rejected.
func (e Entry) Failed() bool {
	return e.Error != ""
}

// Provider stores calculation history.
type Provider interface {
	Append(ctx context.Context, entry Entry)
	Count(ctx context.Context) (int, error)
	All(ctx context.Context) ([]Entry, error)
	Last(ctx context.Context, n int) ([]Entry, error)
	PopLast(ctx context.Context) (*Entry, error)
	Clear(ctx context.Context)
}
