package bus

import (
	"context"

	"github.com/google/uuid"
)

// Host is the outbound dispatch channel: the component that actually runs
// commands. Invoke must not block; it returns a future for the result.
type Host interface {
	Invoke(ctx context.Context, command string, args []any) *Future[any]
}

// InvokeFunc adapts an asynchronous function to the Host interface.
type InvokeFunc func(ctx context.Context, command string, args []any) *Future[any]

// Invoke calls f.
func (f InvokeFunc) Invoke(ctx context.Context, command string, args []any) *Future[any] {
	return f(ctx, command, args)
}

// HostFunc adapts a synchronous function to the Host interface.
// Each call runs on its own goroutine. The function sees ctx values but not
// its cancellation, since an invocation cannot be cancelled once dispatched.
// A panic fails the invocation with a *PanicError.
type HostFunc func(ctx context.Context, command string, args []any) (any, error)

// Invoke runs f on a new goroutine.
func (f HostFunc) Invoke(ctx context.Context, command string, args []any) *Future[any] {
	return goInvoke(ctx, command, func(ctx context.Context) (any, error) {
		return f(ctx, command, args)
	})
}

func goInvoke(ctx context.Context, command string, fn func(context.Context) (any, error)) *Future[any] {
	fut, settle := NewFuture[any]()
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				settle(nil, newPanicError(command, r))
			}
		}()
		settle(fn(ctx))
	}()
	return fut
}

type invocationIDKey struct{}

// WithInvocationID returns a context carrying the invocation ID.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, id)
}

// InvocationID returns the ID Execute assigned to the invocation in ctx,
// or "" outside of an invocation.
func InvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationIDKey{}).(string)
	return id
}

func ensureInvocationID(ctx context.Context) context.Context {
	if InvocationID(ctx) != "" {
		return ctx
	}
	return WithInvocationID(ctx, uuid.NewString())
}
