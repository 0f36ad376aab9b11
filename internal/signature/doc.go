// Package signature implements the domain types for command signatures.
//
// A Signature is the declared shape of one host command: an identifier, an
// ordered list of parameters and a result type. Signatures are values; they
// are assembled with a Builder, validated once, and compared with Equal and
// Refines when several declaration sources describe the same identifier.
//
// # Type references
//
// TypeRef names a semantic type ("Uri", "Position[]", "Uri | string"). Two
// names are special:
//   - "unknown" is the opaque payload. It is accepted for commands whose
//     argument shape belongs to the host; each opaque parameter should carry a
//     doc string describing what the payload means.
//   - "void" is the absence of a result.
//
// # Parameter rules
//
// Optional parameters are trailing only: no required parameter may follow an
// optional one. A rest parameter, if present, is the last parameter.
//
// This package has no dependencies outside the standard library.
package signature
