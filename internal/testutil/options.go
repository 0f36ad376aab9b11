package testutil

import "time"

// response holds the scripted behavior for one command.
type response struct {
	fn      func(args []any) (any, error)
	delay   time.Duration
	release <-chan struct{}
}

// defaultResponse resolves with nil.
func defaultResponse() response {
	return response{
		fn: func([]any) (any, error) { return nil, nil },
	}
}

// ResponseOption configures a scripted response.
type ResponseOption func(*response)

// Returns resolves every invocation with v.
func Returns(v any) ResponseOption {
	return func(r *response) {
		r.fn = func([]any) (any, error) { return v, nil }
	}
}

// Fails rejects every invocation with err.
func Fails(err error) ResponseOption {
	return func(r *response) {
		r.fn = func([]any) (any, error) { return nil, err }
	}
}

// Computes answers each invocation with fn applied to its arguments.
func Computes(fn func(args []any) (any, error)) ResponseOption {
	return func(r *response) {
		r.fn = fn
	}
}

// Delay settles each invocation after d.
func Delay(d time.Duration) ResponseOption {
	return func(r *response) {
		r.delay = d
	}
}

// WaitFor holds each invocation until ch is closed.
func WaitFor(ch <-chan struct{}) ResponseOption {
	return func(r *response) {
		r.release = ch
	}
}
