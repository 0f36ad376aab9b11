package table

import (
	"errors"
	"sort"

	"github.com/zjrosen/knowncmd/internal/log"
	"github.com/zjrosen/knowncmd/internal/signature"
)

// Option configures a Builder.
type Option func(*Builder)

// WithStrictMerge makes every differing duplicate a conflict, including
// precise-versus-opaque pairs that would otherwise merge as refinements.
func WithStrictMerge(strict bool) Option {
	return func(b *Builder) {
		b.strict = strict
	}
}

// Builder accumulates declarations from several sources into a Table.
// A Builder is not safe for concurrent use.
type Builder struct {
	strict      bool
	entries     map[string]*Entry
	refinements []Refinement
	errs        []error
}

// NewBuilder creates an empty table builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		entries: make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add registers sig as declared by src.
// Returns a *ConflictError when the identifier is already declared differently.
// Failed adds are also remembered and reported again by Build.
func (b *Builder) Add(src Source, sig *signature.Signature) error {
	if err := b.add(src, sig); err != nil {
		b.errs = append(b.errs, err)
		return err
	}
	return nil
}

func (b *Builder) add(src Source, sig *signature.Signature) error {
	if sig == nil {
		return ErrNilSignature
	}

	id := sig.ID()
	existing, ok := b.entries[id]
	if !ok {
		b.entries[id] = &Entry{sig: sig, sources: []Source{src}}
		return nil
	}

	switch {
	case existing.sig.Equal(sig):
		log.Debug(log.CatTable, "Duplicate declaration merged", "id", id, "source", src)
	case !b.strict && sig.Refines(existing.sig):
		b.refine(id, sig, src, existing.sig, lastSource(existing))
		existing.sig = sig
	case !b.strict && existing.sig.Refines(sig):
		b.refine(id, existing.sig, lastSource(existing), sig, src)
	default:
		return &ConflictError{
			ID:             id,
			Existing:       existing.sig,
			ExistingSource: lastSource(existing),
			Incoming:       sig,
			IncomingSource: src,
		}
	}

	existing.sources = appendSource(existing.sources, src)
	return nil
}

func (b *Builder) refine(id string, precise *signature.Signature, preciseSrc Source, opaque *signature.Signature, opaqueSrc Source) {
	b.refinements = append(b.refinements, Refinement{
		ID:            id,
		Precise:       precise,
		PreciseSource: preciseSrc,
		Opaque:        opaque,
		OpaqueSource:  opaqueSrc,
	})
	log.Warn(log.CatTable, "Opaque declaration refined",
		"id", id, "precise", preciseSrc, "opaque", opaqueSrc)
}

// AddAll registers every signature in sigs as declared by src.
// All signatures are attempted; the returned error joins every failure.
func (b *Builder) AddAll(src Source, sigs ...*signature.Signature) error {
	var errs []error
	for _, sig := range sigs {
		if err := b.Add(src, sig); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddTable registers every entry of t under its recorded sources.
func (b *Builder) AddTable(t *Table) error {
	var errs []error
	for _, e := range t.List() {
		for _, src := range e.sources {
			if err := b.Add(src, e.sig); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Build freezes the accumulated declarations into a Table.
// Returns the joined errors of every failed Add, and no table, if any Add failed.
func (b *Builder) Build() (*Table, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	t := &Table{
		entries: make(map[string]Entry, len(b.entries)),
		ids:     make([]string, 0, len(b.entries)),
	}
	for id, e := range b.entries {
		t.entries[id] = Entry{sig: e.sig, sources: e.Sources()}
		t.ids = append(t.ids, id)
	}
	sort.Strings(t.ids)

	t.refinements = make([]Refinement, len(b.refinements))
	copy(t.refinements, b.refinements)

	log.Debug(log.CatTable, "Signature table built",
		"commands", len(t.ids), "refinements", len(t.refinements))
	return t, nil
}

func lastSource(e *Entry) Source {
	return e.sources[len(e.sources)-1]
}

func appendSource(sources []Source, src Source) []Source {
	for _, s := range sources {
		if s == src {
			return sources
		}
	}
	return append(sources, src)
}
