package signature

import (
	"strings"
)

// Signature is the declared call shape of one command identifier.
type Signature struct {
	id     string
	doc    string
	params []Param
	result TypeRef
}

// ID returns the command identifier.
func (s *Signature) ID() string {
	return s.id
}

// Doc returns the human-readable description.
func (s *Signature) Doc() string {
	return s.doc
}

// Params returns a copy of the parameter list.
func (s *Signature) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)
	return out
}

// Result returns the declared result type.
func (s *Signature) Result() TypeRef {
	return s.result
}

// Required returns the number of required parameters.
func (s *Signature) Required() int {
	n := 0
	for _, p := range s.params {
		if p.Optional || p.Rest {
			break
		}
		n++
	}
	return n
}

// MaxArity returns the largest accepted argument count, or -1 when a rest
// parameter makes it unbounded.
func (s *Signature) MaxArity() int {
	if n := len(s.params); n > 0 && s.params[n-1].Rest {
		return -1
	}
	return len(s.params)
}

// Accepts reports whether a call with n arguments matches the declared arity.
func (s *Signature) Accepts(n int) bool {
	if n < s.Required() {
		return false
	}
	max := s.MaxArity()
	return max < 0 || n <= max
}

// Equal reports whether s and o declare the same parameter and result types.
// Identifiers, names and docs are ignored.
func (s *Signature) Equal(o *Signature) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.params) != len(o.params) || s.result != o.result {
		return false
	}
	for i := range s.params {
		if !s.params[i].sameShape(o.params[i]) {
			return false
		}
	}
	return true
}

// Refines reports whether s is a strictly more precise version of o: both have
// the same arity and flags, every position where they differ is opaque in o,
// and at least one such position exists.
func (s *Signature) Refines(o *Signature) bool {
	if s == nil || o == nil || len(s.params) != len(o.params) {
		return false
	}
	stricter := false
	for i := range s.params {
		a, b := s.params[i], o.params[i]
		if a.Optional != b.Optional || a.Rest != b.Rest {
			return false
		}
		if a.Type == b.Type {
			continue
		}
		if !b.Type.IsOpaque() || a.Type.IsOpaque() {
			return false
		}
		stricter = true
	}
	if s.result != o.result {
		if !o.result.IsOpaque() || s.result.IsOpaque() {
			return false
		}
		stricter = true
	}
	return stricter
}

// String renders the signature as a call expression, e.g.
// "vscode.executeLinkProvider(uri: Uri, linkResolveCount?: number): DocumentLink[]".
func (s *Signature) String() string {
	var b strings.Builder
	b.WriteString(s.id)
	b.WriteByte('(')
	for i, p := range s.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.label())
	}
	b.WriteString("): ")
	b.WriteString(s.result.Name())
	return b.String()
}
