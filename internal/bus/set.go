package bus

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/zjrosen/knowncmd/internal/signature"
)

var (
	voidType         = reflect.TypeFor[Void]()
	rawMessageType   = reflect.TypeFor[json.RawMessage]()
	optionalSlotType = reflect.TypeFor[optionalSlot]()
	restSlotType     = reflect.TypeFor[restSlot]()
)

type declaration struct {
	id     string
	doc    string
	args   reflect.Type
	result reflect.Type
	params []ParamDoc
}

// SetOption configures a Set.
type SetOption func(*Set)

// WithTypeName makes T appear as name in derived signatures. It is how
// union interfaces and host value types get their declared names.
func WithTypeName[T any](name string) SetOption {
	return func(s *Set) {
		s.typeNames[reflect.TypeFor[T]()] = name
	}
}

// Set is a named group of Go declarations. It is one declaration source for
// the signature table.
//
// A derived signature spells types by their declared names, not by Go
// identity: every numeric kind is "number", and a named type is its bare
// name. Two declarations therefore merge as identical when their names agree,
// even if the Go types differ (Declare2[int, int, int] and
// Declare2[float64, float64, float64] for the same id). Within one set, two
// distinct named Go types that would share a name fail Signatures with
// ErrTypeNameClash; WithTypeName gives one of them its own name.
type Set struct {
	name      string
	typeNames map[reflect.Type]string

	mu    sync.Mutex
	decls []declaration
}

// NewSet creates an empty declaration set.
func NewSet(name string, opts ...SetOption) *Set {
	s := &Set{
		name:      name,
		typeNames: make(map[reflect.Type]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the set name.
func (s *Set) Name() string {
	return s.name
}

// Len returns the number of declarations, duplicates included.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.decls)
}

func (s *Set) add(d declaration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decls = append(s.decls, d)
}

// Signatures derives the signature of every declaration in the set, in
// declaration order. The returned error joins every malformed declaration.
func (s *Set) Signatures() ([]*signature.Signature, error) {
	s.mu.Lock()
	decls := make([]declaration, len(s.decls))
	copy(decls, s.decls)
	s.mu.Unlock()

	n := &typeNamer{set: s, origins: make(map[string]reflect.Type)}
	sigs := make([]*signature.Signature, 0, len(decls))
	var errs []error
	for _, d := range decls {
		sig, err := n.derive(d)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		sigs = append(sigs, sig)
	}
	return sigs, errors.Join(errs...)
}

// typeNamer derives signatures for one Set, remembering which Go type each
// declared name came from.
type typeNamer struct {
	set     *Set
	origins map[string]reflect.Type
	clash   error
}

func (tn *typeNamer) derive(d declaration) (*signature.Signature, error) {
	n := d.args.NumField()
	if len(d.params) > n {
		return nil, fmt.Errorf("command %s: %d parameter docs for %d arguments: %w", d.id, len(d.params), n, ErrArity)
	}
	tn.clash = nil

	b := signature.NewBuilder(d.id).Doc(d.doc)
	for i := 0; i < n; i++ {
		ft := d.args.Field(i).Type
		p := signature.Param{Name: fmt.Sprintf("arg%d", i+1)}
		if i < len(d.params) {
			p.Name, p.Doc = d.params[i].Name, d.params[i].Doc
		}

		switch {
		case ft.Implements(optionalSlotType):
			p.Optional = true
			p.Type = tn.typeRef(reflect.Zero(ft).Interface().(optionalSlot).elemType())
		case ft.Implements(restSlotType):
			p.Rest = true
			p.Type = tn.typeRef(reflect.Zero(ft).Interface().(restSlot).elemType())
		default:
			p.Type = tn.typeRef(ft)
		}
		b.Add(p)
	}
	result := tn.typeRef(d.result)
	if tn.clash != nil {
		return nil, fmt.Errorf("command %s: %w", d.id, tn.clash)
	}
	return b.Returns(result).Build()
}

// named records that t is spelled name and returns the reference.
func (tn *typeNamer) named(t reflect.Type, name string) signature.TypeRef {
	if prev, ok := tn.origins[name]; ok && prev != t {
		if tn.clash == nil {
			tn.clash = fmt.Errorf("%v and %v are both %q: %w", prev, t, name, ErrTypeNameClash)
		}
	} else {
		tn.origins[name] = t
	}
	return signature.Named(name)
}

// typeRef names a Go type the way declarations spell it.
func (tn *typeNamer) typeRef(t reflect.Type) signature.TypeRef {
	if name, ok := tn.set.typeNames[t]; ok {
		return tn.named(t, name)
	}
	switch t {
	case voidType:
		return signature.Void
	case rawMessageType:
		return signature.Unknown
	}

	switch t.Kind() {
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return signature.Unknown
		}
		return tn.named(t, t.Name())
	case reflect.Pointer:
		return tn.typeRef(t.Elem())
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 && t.Elem().PkgPath() == "" {
			return signature.Named("Uint8Array")
		}
		return signature.ArrayOf(tn.typeRef(t.Elem()))
	case reflect.Map:
		return signature.Named(fmt.Sprintf("Record<%s, %s>", tn.typeRef(t.Key()), tn.typeRef(t.Elem())))
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return signature.Unknown
	}

	if t.PkgPath() != "" && t.Name() != "" {
		return tn.named(t, t.Name())
	}
	switch t.Kind() {
	case reflect.Bool:
		return signature.Named("boolean")
	case reflect.String:
		return signature.Named("string")
	case reflect.Struct:
		return signature.Named("object")
	default:
		// remaining kinds are numeric
		return signature.Named("number")
	}
}
