package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/zjrosen/knowncmd/internal/bus"
)

// Call records one invocation seen by a StubHost.
type Call struct {
	Command      string
	Args         []any
	InvocationID string
}

// StubHost is a scripted bus.Host for tests. Commands are answered from
// responses configured with On; every invocation is recorded.
// Unconfigured commands fail with bus.ErrUnknownCommand.
type StubHost struct {
	t         *testing.T
	mu        sync.Mutex
	responses map[string]response
	calls     []Call
}

// NewStubHost creates an empty stub host.
func NewStubHost(t *testing.T) *StubHost {
	t.Helper()
	return &StubHost{t: t, responses: make(map[string]response)}
}

// On configures the response for command.
func (h *StubHost) On(command string, opts ...ResponseOption) *StubHost {
	r := defaultResponse()
	for _, opt := range opts {
		opt(&r)
	}
	h.mu.Lock()
	h.responses[command] = r
	h.mu.Unlock()
	return h
}

// Invoke implements bus.Host.
func (h *StubHost) Invoke(ctx context.Context, command string, args []any) *bus.Future[any] {
	h.mu.Lock()
	h.calls = append(h.calls, Call{Command: command, Args: args, InvocationID: bus.InvocationID(ctx)})
	r, ok := h.responses[command]
	h.mu.Unlock()

	if !ok {
		return bus.Failed[any](fmt.Errorf("%w: %s", bus.ErrUnknownCommand, command))
	}

	fut, settle := bus.NewFuture[any]()
	go func() {
		if r.delay > 0 {
			time.Sleep(r.delay)
		}
		if r.release != nil {
			<-r.release
		}
		settle(r.fn(args))
	}()
	return fut
}

// Calls returns every recorded invocation in order.
func (h *StubHost) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Call, len(h.calls))
	copy(out, h.calls)
	return out
}

// CallsTo returns the recorded invocations of command.
func (h *StubHost) CallsTo(command string) []Call {
	var out []Call
	for _, c := range h.Calls() {
		if c.Command == command {
			out = append(out, c)
		}
	}
	return out
}

// LastCall returns the most recent invocation of command, failing the test
// if there is none.
func (h *StubHost) LastCall(command string) Call {
	h.t.Helper()
	calls := h.CallsTo(command)
	if len(calls) == 0 {
		h.t.Fatalf("no call to %s recorded", command)
	}
	return calls[len(calls)-1]
}

// Compile-time check that StubHost implements bus.Host.
var _ bus.Host = (*StubHost)(nil)
