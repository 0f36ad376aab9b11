package table

import (
	"sort"
	"strings"
)

// Table is a frozen mapping from command identifier to signature.
// It is safe for concurrent reads.
type Table struct {
	entries     map[string]Entry
	ids         []string // sorted
	refinements []Refinement
}

// Lookup returns the entry for id.
func (t *Table) Lookup(id string) (Entry, bool) {
	e, ok := t.entries[id]
	return e, ok
}

// Len returns the number of declared identifiers.
func (t *Table) Len() int {
	return len(t.ids)
}

// IDs returns every declared identifier, sorted.
func (t *Table) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// List returns every entry sorted by identifier.
func (t *Table) List() []Entry {
	out := make([]Entry, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.entries[id])
	}
	return out
}

// ByPrefix returns the entries in a dotted namespace, sorted by identifier.
// "editor.action" matches "editor.action.showHover" but not "editor.actions".
func (t *Table) ByPrefix(namespace string) []Entry {
	namespace = strings.TrimSuffix(namespace, ".")
	if namespace == "" {
		return t.List()
	}
	prefix := namespace + "."
	start := sort.SearchStrings(t.ids, namespace)

	result := make([]Entry, 0)
	for _, id := range t.ids[start:] {
		if id != namespace && !strings.HasPrefix(id, prefix) {
			if id > prefix {
				break
			}
			continue
		}
		result = append(result, t.entries[id])
	}
	return result
}

// Refinements returns the opaque declarations that were replaced by precise ones.
func (t *Table) Refinements() []Refinement {
	out := make([]Refinement, len(t.refinements))
	copy(out, t.refinements)
	return out
}
