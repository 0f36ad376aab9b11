// Package table implements the command signature table.
//
// A Table maps command identifiers to their declared signatures. Tables are
// assembled once by a Builder from any number of declaration sources (Go
// declaration sets, embedded declaration files, user declaration files) and
// are read-only afterwards.
//
// # Merge rules
//
// When two sources declare the same identifier:
//   - identical signatures merge silently and both sources are recorded
//   - a precise signature and an opaque one of the same arity merge into the
//     precise one, and a Refinement is recorded
//   - anything else is a ConflictError
//
// WithStrictMerge disables refinement merging so every difference conflicts.
package table
