package table

import (
	"github.com/zjrosen/knowncmd/internal/signature"
)

// SourceKind indicates where a declaration originated from.
type SourceKind int

const (
	// SourceGo indicates a declaration set compiled into the program.
	SourceGo SourceKind = iota
	// SourceBuiltIn indicates a declaration file embedded in the binary.
	SourceBuiltIn
	// SourceUser indicates a declaration file from the user's directories.
	SourceUser
)

// String returns a human-readable representation of the SourceKind.
func (k SourceKind) String() string {
	switch k {
	case SourceGo:
		return "go"
	case SourceBuiltIn:
		return "built-in"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// Source names one declaration source.
type Source struct {
	Name string     // e.g. "commands.language" or "declarations/notebook.yaml"
	Kind SourceKind // origin of the declaration
}

// String renders the source as kind:name.
func (s Source) String() string {
	return s.Kind.String() + ":" + s.Name
}

// Entry is one identifier in the table with every source that declared it.
type Entry struct {
	sig     *signature.Signature
	sources []Source
}

// ID returns the command identifier.
func (e Entry) ID() string {
	return e.sig.ID()
}

// Signature returns the merged signature.
func (e Entry) Signature() *signature.Signature {
	return e.sig
}

// Sources returns the declaring sources in the order they were added.
func (e Entry) Sources() []Source {
	out := make([]Source, len(e.sources))
	copy(out, e.sources)
	return out
}

// Refinement records that a precise declaration replaced an opaque one.
type Refinement struct {
	ID            string
	Precise       *signature.Signature
	PreciseSource Source
	Opaque        *signature.Signature
	OpaqueSource  Source
}
