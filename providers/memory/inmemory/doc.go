// Package inmemory provides a concurrency-safe, slice-backed implementation
// of [memory.Provider]. History lives only as long as the process.
package inmemory
