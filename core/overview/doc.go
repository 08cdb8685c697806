// Package overview tallies a calculation session: how many expressions were
// evaluated, which operators were used, which kinds of error occurred and
// how long the session ran.
// Use [OverviewFromContext] to bind an [Overview] to a [context.Context] so
// that an evaluator can record into it, or [FromEntries] to summarize a
// stored history.
package overview
