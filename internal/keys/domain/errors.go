package domain

import (
	"github.com/allisson/keyshred/internal/errors"
)

// Key registry and shred error definitions.
//
// These errors wrap the standard errors from internal/errors so the HTTP layer
// can map them to status codes without knowing about this package.
var (
	// ErrDuplicateKey indicates an insert for an id that is already registered.
	// The existing entry and the caller's material are left untouched.
	//
	// HTTP Status: 409 Conflict
	ErrDuplicateKey = errors.Wrap(errors.ErrConflict, "duplicate key")

	// ErrKeyNotFound indicates a lookup for an id that is not registered.
	//
	// A shred of an absent id is not an error: it is reported as a not_found
	// outcome because the key may already have been destroyed.
	//
	// HTTP Status: 404 Not Found
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "key not found")

	// ErrAlreadyDestroyed indicates a wipe or read of a buffer that has already
	// been wiped. The detach-then-wipe protocol makes this unreachable from the
	// registry, so seeing it means an invariant was broken.
	ErrAlreadyDestroyed = errors.Wrap(errors.ErrInvariant, "key material already destroyed")

	// ErrEmptyKeyID indicates an insert with an empty key id.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrEmptyKeyID = errors.Wrap(errors.ErrInvalidInput, "key id cannot be empty")

	// ErrEmptyKeyMaterial indicates an insert with no key bytes.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrEmptyKeyMaterial = errors.Wrap(errors.ErrInvalidInput, "key material cannot be empty")

	// ErrKeyMaterialTooLarge indicates key material above the configured size limit.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrKeyMaterialTooLarge = errors.Wrap(errors.ErrInvalidInput, "key material too large")

	// ErrMemoryLockFailed indicates mlock failed while memory locking is required.
	ErrMemoryLockFailed = errors.Wrap(errors.ErrUnavailable, "failed to lock key memory")

	// ErrRegistryClosed indicates an insert into a registry that has been torn down.
	ErrRegistryClosed = errors.Wrap(errors.ErrUnavailable, "key registry closed")

	// ErrRegionRequired indicates a node was constructed without a region.
	ErrRegionRequired = errors.Wrap(errors.ErrInvalidInput, "node region cannot be empty")
)
