package bus

import (
	"context"
	"time"

	"github.com/zjrosen/knowncmd/internal/log"
	"github.com/zjrosen/knowncmd/internal/pubsub"
)

// Middleware wraps a Host to add behavior around every invocation.
// Middleware functions are composed using Chain.
type Middleware func(Host) Host

// Chain applies middlewares to a host in reverse order.
// The first middleware in the list will be the outermost wrapper.
// For example: Chain(host, logging, events, cache)
// Results in: logging(events(cache(host)))
func Chain(h Host, middlewares ...Middleware) Host {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// observe calls fn with the outcome of fut once it settles and returns a
// future carrying the same outcome.
func observe(fut *Future[any], fn func(v any, err error)) *Future[any] {
	if fut == nil {
		return nil
	}
	return Then(fut, func(v any, err error) (any, error) {
		fn(v, err)
		return v, err
	})
}

// ===========================================================================
// Logging Middleware
// ===========================================================================

// LoggingMiddlewareConfig configures the logging middleware.
type LoggingMiddlewareConfig struct {
	// LogArguments includes the flattened argument count and values.
	LogArguments bool
}

// NewLoggingMiddleware creates a middleware that logs every invocation when
// it settles.
func NewLoggingMiddleware(cfg LoggingMiddlewareConfig) Middleware {
	return func(next Host) Host {
		return InvokeFunc(func(ctx context.Context, command string, args []any) *Future[any] {
			start := time.Now()
			invocationID := InvocationID(ctx)

			fields := []any{"command", command, "invocation_id", invocationID}
			if cfg.LogArguments {
				fields = append(fields, "argc", len(args), "args", args)
			}
			log.Debug(log.CatBus, "command dispatched", fields...)

			return observe(next.Invoke(ctx, command, args), func(_ any, err error) {
				duration := time.Since(start)
				if err != nil {
					log.Error(log.CatBus, "command failed",
						"command", command,
						"invocation_id", invocationID,
						"duration", duration,
						"error", err.Error(),
					)
					return
				}
				log.Debug(log.CatBus, "command completed",
					"command", command,
					"invocation_id", invocationID,
					"duration", duration,
				)
			})
		})
	}
}

// ===========================================================================
// Slow Call Middleware
// ===========================================================================

// DefaultSlowCallThreshold is the default threshold for slow invocation warnings.
const DefaultSlowCallThreshold = 500 * time.Millisecond

// SlowCallMiddlewareConfig configures the slow call middleware.
type SlowCallMiddlewareConfig struct {
	Threshold time.Duration
}

// NewSlowCallMiddleware creates a middleware that logs a warning when an
// invocation takes longer than the threshold to settle.
// It never abandons or fails a slow invocation.
func NewSlowCallMiddleware(cfg SlowCallMiddlewareConfig) Middleware {
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = DefaultSlowCallThreshold
	}

	return func(next Host) Host {
		return InvokeFunc(func(ctx context.Context, command string, args []any) *Future[any] {
			start := time.Now()
			return observe(next.Invoke(ctx, command, args), func(_ any, _ error) {
				if duration := time.Since(start); duration > threshold {
					log.Warn(log.CatBus, "command exceeded time threshold",
						"command", command,
						"invocation_id", InvocationID(ctx),
						"duration", duration,
						"threshold", threshold,
					)
				}
			})
		})
	}
}

// ===========================================================================
// Event Middleware
// ===========================================================================

// InvocationEvent describes one invocation for event subscribers.
type InvocationEvent struct {
	InvocationID string
	Command      string
	ArgCount     int
	Success      bool
	Error        error
	Duration     time.Duration
	Timestamp    time.Time
}

// EventMiddlewareConfig configures the event middleware.
type EventMiddlewareConfig struct {
	// Publisher receives a DispatchedEvent and a SettledEvent per invocation.
	// If nil, the middleware is a no-op.
	Publisher pubsub.Publisher[InvocationEvent]
}

// NewEventMiddleware creates a middleware that publishes invocation activity.
func NewEventMiddleware(cfg EventMiddlewareConfig) Middleware {
	return func(next Host) Host {
		if cfg.Publisher == nil {
			return next
		}
		return InvokeFunc(func(ctx context.Context, command string, args []any) *Future[any] {
			start := time.Now()
			event := InvocationEvent{
				InvocationID: InvocationID(ctx),
				Command:      command,
				ArgCount:     len(args),
				Timestamp:    start,
			}
			cfg.Publisher.Publish(pubsub.DispatchedEvent, event)

			return observe(next.Invoke(ctx, command, args), func(_ any, err error) {
				settled := event
				settled.Success = err == nil
				settled.Error = err
				settled.Duration = time.Since(start)
				settled.Timestamp = time.Now()
				cfg.Publisher.Publish(pubsub.SettledEvent, settled)
			})
		})
	}
}
