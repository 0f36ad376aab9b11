package table

// Provider defines read-only access to a signature table.
// Tooling depends on Provider so tests can substitute small fixtures.
type Provider interface {
	// Lookup returns the entry for id, or false if id was never declared.
	Lookup(id string) (Entry, bool)

	// List returns every entry sorted by identifier.
	List() []Entry

	// ByPrefix returns the entries in a dotted namespace.
	ByPrefix(namespace string) []Entry

	// Refinements returns the recorded precise-over-opaque merges.
	Refinements() []Refinement
}

// Compile-time check that Table implements Provider.
var _ Provider = (*Table)(nil)
