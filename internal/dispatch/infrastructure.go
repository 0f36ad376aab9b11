// Package dispatch assembles the host that typed invocations go through: a
// base host wrapped in the tracing, logging, event, slow call and result
// cache middleware.
package dispatch

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/knowncmd/internal/bus"
	"github.com/zjrosen/knowncmd/internal/cachemanager"
	"github.com/zjrosen/knowncmd/internal/log"
	"github.com/zjrosen/knowncmd/internal/pubsub"
	"github.com/zjrosen/knowncmd/internal/tracing"
)

// ErrNoBaseHost is returned when Config.Base is missing.
var ErrNoBaseHost = errors.New("base host is required")

const cacheUseCase = "command-results"

// Config holds configuration for creating dispatch infrastructure.
type Config struct {
	// Base runs the commands. Required.
	Base bus.Host

	// SlowCallThreshold is the duration above which a settled invocation is
	// logged as slow. Defaults to bus.DefaultSlowCallThreshold if zero.
	SlowCallThreshold time.Duration

	// LogArguments includes flattened arguments in debug logs.
	LogArguments bool

	// CacheCommands lists the commands whose results are cached. Caching is
	// off when empty.
	CacheCommands []string
	// CacheTTL defaults to bus.DefaultCacheTTL if zero.
	CacheTTL time.Duration

	// Tracer is the OpenTelemetry tracer (optional).
	// When provided, the tracing middleware is the outermost wrapper.
	Tracer trace.Tracer
	// TraceArguments records argument values on spans.
	TraceArguments bool
}

// Infrastructure holds the assembled host and the components around it.
type Infrastructure struct {
	// Host is the wrapped host. Pass it to bus.Execute or CommandN.Call.
	Host bus.Host
	// Events receives a dispatched and a settled event per invocation.
	Events *pubsub.Broker[bus.InvocationEvent]
	// Cache holds cached results; nil when caching is off.
	Cache cachemanager.CacheManager[string, any]
}

// New creates the dispatch infrastructure described by cfg.
func New(cfg Config) (*Infrastructure, error) {
	if cfg.Base == nil {
		return nil, ErrNoBaseHost
	}

	events := pubsub.NewBroker[bus.InvocationEvent]()

	var cache cachemanager.CacheManager[string, any]
	if len(cfg.CacheCommands) > 0 {
		ttl := cfg.CacheTTL
		if ttl == 0 {
			ttl = bus.DefaultCacheTTL
		}
		cache = cachemanager.NewInMemoryCacheManager[string, any](cacheUseCase, ttl, 2*ttl)
	}

	middlewares := []bus.Middleware{}
	if cfg.Tracer != nil {
		middlewares = append(middlewares, tracing.NewMiddleware(tracing.MiddlewareConfig{
			Tracer:          cfg.Tracer,
			RecordArguments: cfg.TraceArguments,
		}))
	}
	middlewares = append(middlewares,
		bus.NewLoggingMiddleware(bus.LoggingMiddlewareConfig{LogArguments: cfg.LogArguments}),
		bus.NewEventMiddleware(bus.EventMiddlewareConfig{Publisher: events}),
		bus.NewSlowCallMiddleware(bus.SlowCallMiddlewareConfig{Threshold: cfg.SlowCallThreshold}),
	)
	if cache != nil {
		middlewares = append(middlewares, bus.NewCacheMiddleware(bus.CacheMiddlewareConfig{
			Cache:    cache,
			Commands: cfg.CacheCommands,
			TTL:      cfg.CacheTTL,
		}))
	}

	log.Debug(log.CatBus, "Dispatch infrastructure created",
		"middleware", len(middlewares),
		"tracing", cfg.Tracer != nil,
		"cached_commands", len(cfg.CacheCommands),
	)

	return &Infrastructure{
		Host:   bus.Chain(cfg.Base, middlewares...),
		Events: events,
		Cache:  cache,
	}, nil
}

// Close closes the event broker and drops cached results. Invocations still
// in flight settle normally; their events are discarded.
func (i *Infrastructure) Close() {
	if dropped := i.Events.Dropped(); dropped > 0 {
		log.Warn(log.CatBus, "Invocation events dropped by slow subscribers", "dropped", dropped)
	}
	i.Events.Close()
	if sc, ok := i.Cache.(interface{ Stats() cachemanager.Stats }); ok {
		stats := sc.Stats()
		log.Debug(log.CatCache, "Result cache closed", "hits", stats.Hits, "misses", stats.Misses)
	}
	if i.Cache != nil {
		_ = i.Cache.Flush(context.Background())
	}
}
