package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/knowncmd/internal/bus"
)

func TestStubHost_StandardCommands(t *testing.T) {
	h := NewStubHost(t).WithStandardCommands()
	ctx := context.Background()

	v, err := h.Invoke(ctx, "x.test", []any{1, 2}).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	v, err = h.Invoke(ctx, "x.test", []any{1, 0.5}).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	_, err = h.Invoke(ctx, "x.test", []any{"one"}).Await(ctx)
	require.Error(t, err)

	_, err = h.Invoke(ctx, "x.fail", nil).Await(ctx)
	require.ErrorIs(t, err, ErrStubFailure)

	v, err = h.Invoke(ctx, "x.echo", []any{"a", nil}).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, []any{"a", nil}, v)
}

func TestStubHost_UnknownCommand(t *testing.T) {
	h := NewStubHost(t)
	ctx := context.Background()

	_, err := h.Invoke(ctx, "x.missing", nil).Await(ctx)
	require.ErrorIs(t, err, bus.ErrUnknownCommand)
	require.Len(t, h.CallsTo("x.missing"), 1)
}

func TestStubHost_RecordsCalls(t *testing.T) {
	h := NewStubHost(t).On("a.one", Returns("ok"))
	ctx := bus.WithInvocationID(context.Background(), "inv-1")

	_, err := h.Invoke(ctx, "a.one", []any{1}).Await(ctx)
	require.NoError(t, err)

	call := h.LastCall("a.one")
	require.Equal(t, []any{1}, call.Args)
	require.Equal(t, "inv-1", call.InvocationID)
	require.Len(t, h.Calls(), 1)
}

func TestStubHost_WaitFor(t *testing.T) {
	release := make(chan struct{})
	h := NewStubHost(t).On("a.slow", Returns(1), WaitFor(release))
	ctx := context.Background()

	fut := h.Invoke(ctx, "a.slow", nil)
	require.False(t, fut.Settled())

	close(release)
	require.Eventually(t, fut.Settled, time.Second, time.Millisecond)
}
