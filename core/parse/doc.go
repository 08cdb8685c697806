// Package parse decodes loosely formatted text into Go values. Tool inputs
// arriving from MCP clients and language models are often almost-JSON:
// single quotes, trailing commas, comments, code fences or
// {"type": ..., "value": ...} envelopes. [ParseStringAs] repairs and unwraps
// such input before giving up.
package parse
