package signature

import (
	"strings"
)

const (
	unknownName = "unknown"
	voidName    = "void"
)

// TypeRef is a reference to a semantic type by name.
type TypeRef struct {
	name string
}

var (
	// Unknown is the opaque payload type.
	Unknown = TypeRef{name: unknownName}
	// Void is the "no value" result type.
	Void = TypeRef{name: voidName}
)

// Named returns a reference to the named type. The name is normalized so that
// spelling differences in whitespace do not count as different types.
func Named(name string) TypeRef {
	n := normalizeTypeName(name)
	switch n {
	case "", voidName, "undefined":
		return Void
	case unknownName, "any":
		return Unknown
	}
	return TypeRef{name: n}
}

// ArrayOf returns a reference to an array of elem.
func ArrayOf(elem TypeRef) TypeRef {
	if strings.Contains(elem.name, "|") {
		return TypeRef{name: "Array<" + elem.name + ">"}
	}
	return TypeRef{name: elem.name + "[]"}
}

// UnionOf returns a reference to the union of the given types.
func UnionOf(types ...TypeRef) TypeRef {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.name)
	}
	return Named(strings.Join(names, " | "))
}

// Name returns the normalized type name.
func (t TypeRef) Name() string {
	if t.name == "" {
		return voidName
	}
	return t.name
}

// IsOpaque reports whether t is the opaque payload type.
func (t TypeRef) IsOpaque() bool {
	return t.name == unknownName
}

// IsVoid reports whether t is the "no value" type.
func (t TypeRef) IsVoid() bool {
	return t.name == "" || t.name == voidName
}

// String implements fmt.Stringer.
func (t TypeRef) String() string {
	return t.Name()
}

// normalizeTypeName collapses whitespace and puts single spaces around union bars.
func normalizeTypeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if !strings.Contains(name, "|") {
		return name
	}
	parts := strings.Split(name, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, " | ")
}
