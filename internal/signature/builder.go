package signature

import (
	"errors"
	"fmt"
	"strings"
)

// Builder errors
var (
	ErrEmptyID   = errors.New("command identifier cannot be empty")
	ErrInvalidID = errors.New("invalid command identifier")
)

// Builder provides a fluent API for creating signatures.
type Builder struct {
	id     string
	doc    string
	params []Param
	result TypeRef
}

// NewBuilder creates a signature builder for the command identifier.
// The result defaults to Void.
func NewBuilder(id string) *Builder {
	return &Builder{id: id, result: Void}
}

// Doc sets the description.
func (b *Builder) Doc(doc string) *Builder {
	b.doc = doc
	return b
}

// Param appends a required parameter.
func (b *Builder) Param(name string, t TypeRef, doc string) *Builder {
	return b.Add(Param{Name: name, Type: t, Doc: doc})
}

// Optional appends an optional parameter.
func (b *Builder) Optional(name string, t TypeRef, doc string) *Builder {
	return b.Add(Param{Name: name, Type: t, Optional: true, Doc: doc})
}

// Rest appends a rest parameter collecting values of type elem.
func (b *Builder) Rest(name string, elem TypeRef, doc string) *Builder {
	return b.Add(Param{Name: name, Type: elem, Rest: true, Doc: doc})
}

// Add appends a fully described parameter.
func (b *Builder) Add(p Param) *Builder {
	b.params = append(b.params, p)
	return b
}

// Returns sets the result type.
func (b *Builder) Returns(t TypeRef) *Builder {
	b.result = t
	return b
}

// Build validates and returns the signature.
func (b *Builder) Build() (*Signature, error) {
	id := strings.TrimSpace(b.id)
	if id == "" {
		return nil, ErrEmptyID
	}
	if !IsValidID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if err := validateParams(b.params); err != nil {
		return nil, fmt.Errorf("command %s: %w", id, err)
	}

	params := make([]Param, len(b.params))
	copy(params, b.params)
	result := b.result
	if result.IsVoid() {
		result = Void
	}
	return &Signature{id: id, doc: b.doc, params: params, result: result}, nil
}

// MustBuild is Build for declarations that are fixed in source code.
func (b *Builder) MustBuild() *Signature {
	sig, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sig
}

func validateParams(params []Param) error {
	seenOptional := false
	for i, p := range params {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("parameter %d: %w", i+1, ErrParamEmptyName)
		}
		if p.Type.IsVoid() {
			return fmt.Errorf("parameter %s: %w", p.Name, ErrVoidParameterType)
		}
		if p.Rest {
			if p.Optional {
				return fmt.Errorf("parameter %s: %w", p.Name, ErrRestOptional)
			}
			if i != len(params)-1 {
				return fmt.Errorf("parameter %s: %w", p.Name, ErrRestNotLast)
			}
			continue
		}
		if p.Optional {
			seenOptional = true
			continue
		}
		if seenOptional {
			return fmt.Errorf("parameter %s: %w", p.Name, ErrOptionalRequired)
		}
	}
	return nil
}

// IsValidID reports whether id is a well-formed command identifier: ASCII
// letters, digits, '_', '-' and '.' separators, with no empty segment.
// A leading underscore marks host-internal commands and is allowed.
func IsValidID(id string) bool {
	if id == "" {
		return false
	}
	lastDot := true
	for i := 0; i < len(id); i++ {
		c := id[i]
		isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		switch {
		case c == '.':
			if lastDot {
				return false
			}
			lastDot = true
			continue
		case isAlpha || isDigit || c == '_' || c == '-':
		default:
			return false
		}
		lastDot = false
	}
	return !lastDot
}
