package commands

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/knowncmd/internal/bus"
	"github.com/zjrosen/knowncmd/internal/testutil"
)

func awaitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestOpen_TrimsAbsentOptionalArguments(t *testing.T) {
	ctx := awaitCtx(t)
	host := testutil.NewStubHost(t).On(Open.ID())
	doc := File("/tmp/a.txt")

	_, err := Open.Call(ctx, host, doc, bus.None[ColumnOrOptions](), bus.None[string]()).Await(ctx)
	require.NoError(t, err)
	_, err = Open.Call(ctx, host, URIString("https://example.com"), bus.Some[ColumnOrOptions](ViewColumnBeside), bus.None[string]()).Await(ctx)
	require.NoError(t, err)
	_, err = Open.Call(ctx, host, doc, bus.None[ColumnOrOptions](), bus.Some("Preview")).Await(ctx)
	require.NoError(t, err)

	calls := host.CallsTo(Open.ID())
	require.Len(t, calls, 3)
	require.Equal(t, []any{doc}, calls[0].Args)
	require.Equal(t, []any{URIString("https://example.com"), ViewColumnBeside}, calls[1].Args)
	require.Equal(t, []any{doc, nil, "Preview"}, calls[2].Args)
}

func TestExecuteDefinitionProvider_TypedResult(t *testing.T) {
	ctx := awaitCtx(t)
	want := []LocationOrLink{
		Location{URI: File("/src/main.go"), Range: Range{End: Position{Line: 1}}},
		LocationLink{TargetURI: File("/src/util.go")},
	}
	host := testutil.NewStubHost(t).On(ExecuteDefinitionProvider.ID(), testutil.Returns(want))

	got, err := ExecuteDefinitionProvider.Call(ctx, host, File("/src/main.go"), Position{Line: 3, Character: 7}).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	call := host.LastCall(ExecuteDefinitionProvider.ID())
	require.Equal(t, []any{File("/src/main.go"), Position{Line: 3, Character: 7}}, call.Args)
	require.NotEmpty(t, call.InvocationID)
}

func TestExecuteCompletionItemProvider_DecodesRawResult(t *testing.T) {
	ctx := awaitCtx(t)
	raw := json.RawMessage(`{"isIncomplete":true,"items":[{"label":"Println","kind":2}]}`)
	host := testutil.NewStubHost(t).On(ExecuteCompletionItemProvider.ID(), testutil.Returns(raw))

	got, err := ExecuteCompletionItemProvider.
		Call(ctx, host, File("/src/main.go"), Position{Line: 1}, bus.Some("."), bus.None[int]()).
		Await(ctx)
	require.NoError(t, err)
	require.True(t, got.IsIncomplete)
	require.Equal(t, []CompletionItem{{Label: "Println", Kind: 2}}, got.Items)
	require.Equal(t, []any{File("/src/main.go"), Position{Line: 1}, "."}, host.LastCall(ExecuteCompletionItemProvider.ID()).Args)
}

func TestCall_HostFailurePropagates(t *testing.T) {
	ctx := awaitCtx(t)
	host := testutil.NewStubHost(t).On(RunTask.ID(), testutil.Fails(testutil.ErrStubFailure))

	_, err := RunTask.Call(ctx, host, TaskFilterOptions{Type: "npm", Task: "build"}).Await(ctx)
	require.Same(t, testutil.ErrStubFailure, err)
}

func TestCall_ResultMismatchSurfacesAtAwait(t *testing.T) {
	ctx := awaitCtx(t)
	host := testutil.NewStubHost(t).On(GetEditorLayout.ID(), testutil.Returns("not a layout"))

	fut := GetEditorLayout.Call(ctx, host)
	_, err := fut.Await(ctx)
	require.ErrorIs(t, err, bus.ErrResultType)
}

func TestCall_ThroughMux(t *testing.T) {
	ctx := awaitCtx(t)
	mux := bus.NewMux()
	require.NoError(t, bus.Handle(mux, ExecuteWorkspaceSymbolProvider.Command,
		func(_ context.Context, args bus.Args1[string]) ([]SymbolInformation, error) {
			return []SymbolInformation{{Name: args.P1}}, nil
		}))

	got, err := ExecuteWorkspaceSymbolProvider.Call(ctx, mux, "Handler").Await(ctx)
	require.NoError(t, err)
	require.Equal(t, []SymbolInformation{{Name: "Handler"}}, got)
}

func TestURI(t *testing.T) {
	u, err := ParseURI("https://example.com/docs/a.md?x=1#top")
	require.NoError(t, err)
	require.Equal(t, URI{Scheme: "https", Authority: "example.com", Path: "/docs/a.md", Query: "x=1", Fragment: "top"}, u)
	require.Equal(t, "https://example.com/docs/a.md?x=1#top", u.String())
	require.Equal(t, "file:///tmp/a%20b.txt", File("/tmp/a b.txt").String())

	data, err := json.Marshal(Location{URI: File("/x.go")})
	require.NoError(t, err)
	require.Contains(t, string(data), `"uri":"file:///x.go"`)

	var loc Location
	require.NoError(t, json.Unmarshal(data, &loc))
	require.Equal(t, File("/x.go"), loc.URI)
}

func TestChangeResource_MarshalsAsTuple(t *testing.T) {
	orig := File("/a.old")
	data, err := json.Marshal(ChangeResource{Resource: File("/a"), Original: &orig})
	require.NoError(t, err)
	require.JSONEq(t, `["file:///a","file:///a.old",null]`, string(data))
}
