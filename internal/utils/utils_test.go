package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	timer := NewTimer()
	if timer.GetDuration() != 0 {
		t.Errorf("GetDuration before Stop = %v, want 0", timer.GetDuration())
	}

	time.Sleep(2 * time.Millisecond)
	first := timer.Stop()
	if first <= 0 || timer.GetDuration() != first {
		t.Fatalf("Stop = %v, GetDuration = %v", first, timer.GetDuration())
	}

	timer.Start()
	if second := timer.Stop(); second >= first {
		t.Errorf("restarted timer measured %v, want less than %v", second, first)
	}
}

func TestPtr(t *testing.T) {
	v := 42
	p := Ptr(v)
	if p == nil || *p != 42 {
		t.Fatalf("Ptr(42) = %v", p)
	}
	*p = 7
	if v != 42 {
		t.Error("Ptr must point to a copy")
	}
	if s := Ptr("x"); *s != "x" {
		t.Errorf("Ptr(\"x\") = %q", *s)
	}
}

func TestJSONToString(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		indent bool
		want   string
	}{
		{"compact", map[string]int{"a": 1}, false, `{"a":1}`},
		{"indented", map[string]int{"a": 1}, true, "{\n  \"a\": 1\n}"},
		{"unmarshalable", make(chan int), false, `{"error": "failed to marshal to JSON:`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JSONToString(tt.input, tt.indent)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("JSONToString() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	long := strings.Repeat("x", DefaultMaxStringLength+10)

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than limit", "abc", 5, "abc"},
		{"exact limit", "abcde", 5, "abcde"},
		{"longer than limit", "abcdef", 3, "abc... (truncated, total: 6 chars)"},
		{"default limit", long, 0, long[:DefaultMaxStringLength] + "... (truncated, total: 510 chars)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString() = %q, want %q", got, tt.want)
			}
		})
	}
}
