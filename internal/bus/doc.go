// Package bus is the typed dispatcher for a string-keyed host command bus.
//
// Commands are declared once, in a Set, with the Go types of their
// arguments and result:
//
//	var set = bus.NewSet("commands.editor")
//	var ShowHover = bus.Declare0[bus.Void](set, "editor.action.showHover", "Show the hover")
//
// A Command value can only come from a Declare function, so an identifier
// that was never declared cannot be dispatched: there is nothing to name at
// the call site. Argument and result types are checked by the compiler:
//
//	fut := ShowHover.Call(ctx, host)
//	_, err := fut.Await(ctx)
//
// At run time the call is erased to Host.Invoke(ctx, id, []any) and the host
// value is handed back as the declared result type without validation.
//
// # Hosts
//
// Host is the outbound dispatch channel. HostFunc adapts a synchronous
// function, Mux routes identifiers to in-process handlers, and Middleware
// wraps a Host with cross-cutting behavior (logging, slow-call warnings,
// invocation events, result caching). Middleware never rewrites a host
// failure: the error a caller awaits is the value the host produced.
package bus
