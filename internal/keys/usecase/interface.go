// Package usecase defines the interfaces and implementations for the ephemeral key
// use cases: provisioning keys into a node's registry and destroying them on alert.
package usecase

import (
	"context"

	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// KeyRegistry defines the in-memory store of live keys for one region.
type KeyRegistry interface {
	Region() string
	Insert(id string, material []byte) error
	// RemoveAndDestroy detaches the buffer for id under exclusive access and
	// transfers ownership to the caller, who must wipe and close it.
	RemoveAndDestroy(id string) (*keysDomain.SecureBuffer, bool)
	Lookup(id string) (keysDomain.KeyInfo, bool)
	IDs() []string
	Len() int
	Close() error
}

// OutcomeReporter receives every shred outcome (logging, metrics, audit).
// A reporter error never changes the outcome.
type OutcomeReporter interface {
	Report(ctx context.Context, outcome keysDomain.ShredOutcome) error
}

// NodeUseCase defines the operations a node exposes to provisioning and alert sources.
type NodeUseCase interface {
	Region() string
	// Insert moves material into the registry. The caller's slice is zeroed on success.
	Insert(ctx context.Context, id string, material []byte) error
	Lookup(ctx context.Context, id string) (keysDomain.KeyInfo, error)
	Len(ctx context.Context) int
	// TriggerShred destroys the key registered under id. An absent id yields a
	// not_found outcome, never an error.
	TriggerShred(ctx context.Context, id string) keysDomain.ShredOutcome
	// ShredAll destroys every key registered when the call starts.
	ShredAll(ctx context.Context) []keysDomain.ShredOutcome
	// Close destroys all remaining keys and tears the registry down.
	Close(ctx context.Context) error
}
