package domain

import (
	"github.com/allisson/keyshred/internal/errors"
)

// Audit error definitions.
var (
	// ErrSignatureInvalid indicates the stored signature does not match the record.
	ErrSignatureInvalid = errors.Wrap(errors.ErrInvalidInput, "audit record signature is invalid")

	// ErrSigningKeyInvalid indicates the audit signing key is missing or not 32 bytes.
	ErrSigningKeyInvalid = errors.Wrap(errors.ErrInvalidInput, "audit signing key must be 32 bytes")
)
