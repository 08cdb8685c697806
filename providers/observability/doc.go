// Package observability defines the tracing, metrics and logging interfaces
// used across rpncalc, together with the attribute keys and span names that
// every component records.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into a single
// dependency. A [Span] travels through a [context.Context] with
// [ContextWithSpan] and is recovered with [SpanFromContext]. The slogobs
// subpackage provides a log/slog backed implementation.
package observability
