package observability

// Attribute keys, span names and metric names shared by all components.

// --- Calculation ---

const (
	// AttrCalcInput is the raw expression text.
	AttrCalcInput = "calc.input"

	// AttrCalcOperator is the operator symbol that was applied.
	AttrCalcOperator = "calc.operator"

	// AttrCalcLeft and AttrCalcRight are the parsed operands.
	AttrCalcLeft  = "calc.left"
	AttrCalcRight = "calc.right"

	// AttrCalcResult is the integer result.
	AttrCalcResult = "calc.result"

	// AttrCalcErrorKind is one of invalid_input, display_overflow, arithmetic.
	AttrCalcErrorKind = "calc.error_kind"
)

// --- Tool execution ---

const (
	AttrToolName     = "tool.name"
	AttrToolInput    = "tool.input"
	AttrToolOutput   = "tool.output"
	AttrToolDuration = "tool.duration"
	AttrToolError    = "tool.error"
)

// --- History ---

const (
	// AttrMemoryTotalEntries is the number of calculations held after an append.
	AttrMemoryTotalEntries = "memory.total_entries"
)

// --- MCP transport ---

const (
	// AttrMCPTransport is "stdio" or "http".
	AttrMCPTransport = "mcp.transport"

	// AttrMCPAddr is the listen address of the http transport.
	AttrMCPAddr = "mcp.addr"

	// AttrMCPToolsCount is the number of tools registered with the server.
	AttrMCPToolsCount = "mcp.tools_count"
)

// --- Status ---

const (
	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
	AttrError             = "error"
)

// --- Span names ---

const (
	SpanCalculate = "rpn.calculate"
	SpanToolCall  = "tool.call"
)

// --- Event names ---

const (
	EventToolExecutionStart = "tool.execution.start"
	EventToolExecutionEnd   = "tool.execution.end"

	EventMemoryAppend = "memory.append"
	EventMemoryClear  = "memory.clear"
)

// --- Metric names ---

const (
	// MetricCalculations counts evaluations, tagged with AttrStatus and,
	// on failure, AttrCalcErrorKind.
	MetricCalculations = "rpn.calculations"

	// MetricCalculationDuration records evaluation time in microseconds.
	MetricCalculationDuration = "rpn.calculation.duration"

	// MetricToolCalls counts tool invocations served over MCP.
	MetricToolCalls = "mcp.tool.calls"
)
