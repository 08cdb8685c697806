// Package utils holds small helpers shared by the rpncalc packages: a
// wall-clock [Timer], the generic [Ptr] and JSON/string helpers for log output.
package utils
