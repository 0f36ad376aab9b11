// Package flags provides feature flag support for controlled feature rollout.
// Flags are read-only after initialization and provide safe defaults for unknown flags.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/knowncmd/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagStrictMerge makes the signature table reject a precise declaration
	// and an opaque declaration of the same command instead of keeping the
	// precise one.
	FlagStrictMerge = "strict-merge"

	// FlagTraceArguments records flattened argument values on invocation spans.
	FlagTraceArguments = "trace-arguments"
)

var descriptions = map[string]string{
	FlagStrictMerge:    "Treat refined opaque declarations as conflicts",
	FlagTraceArguments: "Record argument values on invocation spans",
}

// Known returns the names of every flag the program reads, sorted.
func Known() []string {
	return slices.Sorted(maps.Keys(descriptions))
}

// Describe returns the one-line description of a known flag.
func Describe(name string) (string, bool) {
	d, ok := descriptions[name]
	return d, ok
}

// Registry holds feature flag state loaded from configuration.
// Flags are read-only after initialization.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map. The map is copied.
// If flags is nil, an empty registry is created (all flags disabled).
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: make(map[string]bool, len(flags))}
	maps.Copy(r.flags, flags)
	for name := range r.flags {
		if _, ok := descriptions[name]; !ok {
			log.Warn(log.CatConfig, "Unknown feature flag configured", "flag", name)
		}
	}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(r.flags), "flags", r.All())
	return r
}

// Enabled returns true if the named flag is enabled.
// Returns false for unknown flags (safe default).
// Returns false when called on nil registry (nil-safe).
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		log.Debug(log.CatConfig, "Unset flag accessed", "flag", name, "result", false)
		return false
	}
	return value
}

// All returns a copy of all flags (for debugging/logging).
// Returns an empty map if the registry is nil.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}
