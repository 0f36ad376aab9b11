package bus

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/zjrosen/knowncmd/internal/cachemanager"
	"github.com/zjrosen/knowncmd/internal/log"
)

// ===========================================================================
// Cache Middleware
// ===========================================================================

// DefaultCacheTTL is the default lifetime of a cached result.
const DefaultCacheTTL = 30 * time.Second

// CacheMiddlewareConfig configures the result cache middleware.
type CacheMiddlewareConfig struct {
	// Cache stores results keyed by command and arguments. If nil, the
	// middleware is a no-op.
	Cache cachemanager.CacheManager[string, any]
	// Commands lists the identifiers whose results may be reused. Only
	// side-effect free commands belong here.
	Commands []string
	TTL      time.Duration
}

// NewCacheMiddleware creates a middleware that serves repeated invocations of
// the configured commands from cache. Only successful results are stored.
// Invocations whose arguments cannot be encoded as JSON are never cached.
//
// Slice and map results are copied when stored and again on every hit, so a
// caller reordering or replacing elements does not change later hits. The
// elements themselves are shared: pointers, nested slices and maps inside a
// cached result must be treated as read-only.
func NewCacheMiddleware(cfg CacheMiddlewareConfig) Middleware {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	cacheable := make(map[string]bool, len(cfg.Commands))
	for _, id := range cfg.Commands {
		cacheable[id] = true
	}

	return func(next Host) Host {
		if cfg.Cache == nil || len(cacheable) == 0 {
			return next
		}
		return InvokeFunc(func(ctx context.Context, command string, args []any) *Future[any] {
			if !cacheable[command] {
				return next.Invoke(ctx, command, args)
			}
			key, ok := cacheKey(command, args)
			if !ok {
				return next.Invoke(ctx, command, args)
			}

			if v, hit := cfg.Cache.Get(ctx, key); hit {
				log.Debug(log.CatCache, "result served from cache",
					"command", command,
					"invocation_id", InvocationID(ctx),
				)
				return Resolved(copyContainer(v))
			}

			return observe(next.Invoke(ctx, command, args), func(v any, err error) {
				if err == nil {
					cfg.Cache.Set(ctx, key, copyContainer(v), ttl)
				}
			})
		})
	}
}

func cacheKey(command string, args []any) (string, bool) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", false
	}
	return command + ":" + string(encoded), true
}

// copyContainer returns a copy of a slice or map value with the same dynamic
// type. Other values are returned as is.
func copyContainer(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	default:
		return v
	}
}
