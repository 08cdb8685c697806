// Package jsonschema derives JSON Schema documents from Go types by
// reflection. Tools advertise their input and output with these schemas, and
// the MCP server forwards them to clients unchanged.
//
// Struct fields honour `json` tags for naming and omitempty, and `jsonschema`
// tags for description, enum values and explicit required markers.
// Self-referencing types are emitted once under $defs and referenced with $ref.
package jsonschema
