// Package commands declares the known host commands.
//
// Every exported command value is the only way program code can name a host
// command: calling it dispatches through a bus.Host with arguments and a
// result checked by the compiler.
//
//	locs, err := commands.ExecuteDefinitionProvider.
//		Call(ctx, host, uri, commands.Position{Line: 4, Character: 2}).
//		Await(ctx)
//
// The same declarations, together with the embedded declaration files and any
// user declaration files, form the signature table returned by Table.
package commands
