package tracing

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/knowncmd/internal/bus"
)

// MiddlewareConfig configures the tracing middleware.
type MiddlewareConfig struct {
	// Tracer creates the spans. A nil Tracer makes the middleware a
	// pass-through.
	Tracer trace.Tracer

	// RecordArguments attaches the JSON form of the arguments to each span.
	RecordArguments bool
}

// NewMiddleware creates a bus middleware that opens a span when a command is
// dispatched and ends it when the host settles the invocation. Host failures
// are recorded on the span and passed on unchanged.
func NewMiddleware(cfg MiddlewareConfig) bus.Middleware {
	if cfg.Tracer == nil {
		return func(next bus.Host) bus.Host {
			return next
		}
	}

	return func(next bus.Host) bus.Host {
		return bus.InvokeFunc(func(ctx context.Context, command string, args []any) *bus.Future[any] {
			ctx, span := cfg.Tracer.Start(ctx, SpanPrefixInvoke+command,
				trace.WithSpanKind(trace.SpanKindClient),
			)
			span.SetAttributes(
				attribute.String(AttrCommandID, command),
				attribute.String(AttrInvocationID, bus.InvocationID(ctx)),
				attribute.Int(AttrArgCount, len(args)),
			)
			if cfg.RecordArguments {
				if data, err := json.Marshal(args); err == nil {
					span.SetAttributes(attribute.String(AttrArguments, string(data)))
				}
			}

			fut := next.Invoke(ctx, command, args)
			if fut == nil {
				span.SetStatus(codes.Error, bus.ErrNoResult.Error())
				span.End()
				return nil
			}

			return bus.Then(fut, func(v any, err error) (any, error) {
				span.AddEvent(EventSettled)
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				} else {
					if v != nil {
						span.SetAttributes(attribute.String(AttrResultType, fmt.Sprintf("%T", v)))
					}
					span.SetStatus(codes.Ok, "")
				}
				span.End()
				return v, err
			})
		})
	}
}

// TraceID returns the trace ID of the span in ctx, or "" if there is none.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
