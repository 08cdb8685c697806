// Package tool turns typed Go functions into tools that remote clients can
// discover and call with JSON.
//
// [NewTool] binds a name and a function to auto-generated input and output
// schemas; [Tool.Call] decodes loosely formatted JSON input, runs the function
// and encodes the result. [GenericTool] hides the type parameters so that
// tools of different shapes can share a [Catalog].
package tool
