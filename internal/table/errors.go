package table

import (
	"errors"
	"fmt"

	"github.com/zjrosen/knowncmd/internal/signature"
)

// Table errors
var (
	ErrSignatureConflict = errors.New("conflicting signatures")
	ErrNilSignature      = errors.New("signature cannot be nil")
)

// ConflictError reports two sources declaring one identifier differently.
type ConflictError struct {
	ID             string
	Existing       *signature.Signature
	ExistingSource Source
	Incoming       *signature.Signature
	IncomingSource Source
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: command %s declared by %s as %s and by %s as %s",
		ErrSignatureConflict, e.ID,
		e.ExistingSource, e.Existing,
		e.IncomingSource, e.Incoming)
}

// Unwrap lets callers match conflicts with errors.Is(err, ErrSignatureConflict).
func (e *ConflictError) Unwrap() error {
	return ErrSignatureConflict
}
