// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans, counters and histograms are rendered as structured log entries, so a
// single stream on stderr is enough to follow what the calculator does. The
// handler writes compact single-line, pretty multi-line or JSON output.
//
// Use [New] with [WithFormat], [WithLevel], [WithOutput], [WithColors] or
// [WithLogger]. Without options the format and level come from
// RPNCALC_LOG_FORMAT and RPNCALC_LOG_LEVEL (falling back to LOG_FORMAT and
// LOG_LEVEL).
package slogobs
