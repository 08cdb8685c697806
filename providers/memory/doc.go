// Package memory defines the Provider interface for calculation history, the
// tape a printing calculator keeps of every expression it was given.
// Read methods return errors so that other backends can surface failures.
// The bundled implementation lives in the sibling package
// [github.com/leofalp/rpncalc/providers/memory/inmemory].
package memory
