package tracing

// Span attribute keys.
const (
	AttrCommandID    = "command.id"
	AttrInvocationID = "command.invocation_id"
	AttrArgCount     = "command.argc"
	AttrArguments    = "command.args"
	AttrResultType   = "command.result_type"
)

// SpanPrefixInvoke prefixes invocation span names.
const SpanPrefixInvoke = "command.invoke."

// EventSettled marks the moment the host settled the invocation.
const EventSettled = "command.settled"
