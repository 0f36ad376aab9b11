package bus

import (
	"context"
	"sync"
)

// Future is the deferred result of a host invocation.
// A Future settles exactly once; later settle calls are ignored.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// NewFuture returns a pending future and the function that settles it.
func NewFuture[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.settle
}

// Resolved returns a future already settled with v.
func Resolved[T any](v T) *Future[T] {
	f, settle := NewFuture[T]()
	settle(v, nil)
	return f
}

// Failed returns a future already settled with err.
func Failed[T any](err error) *Future[T] {
	f, settle := NewFuture[T]()
	var zero T
	settle(zero, err)
	return f
}

func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		f.val, f.err = v, err
		close(f.done)
	})
}

// Done returns a channel that is closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future has a result.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the future settles or ctx is done.
// A done ctx stops the wait only; the invocation itself keeps running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then returns a future settled with fn applied to f's outcome.
// A panic in fn fails the returned future with a *PanicError.
func Then[T, U any](f *Future[T], fn func(T, error) (U, error)) *Future[U] {
	out, settle := NewFuture[U]()
	go func() {
		<-f.done
		defer func() {
			if r := recover(); r != nil {
				var zero U
				settle(zero, newPanicError("", r))
			}
		}()
		settle(fn(f.val, f.err))
	}()
	return out
}
