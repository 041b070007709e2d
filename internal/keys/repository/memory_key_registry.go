// Package repository provides the in-memory key registry holding live ephemeral
// keys for a node.
package repository

import (
	"slices"
	"sync"

	"github.com/allisson/keyshred/internal/errors"
	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// RegistryConfig configures a MemoryKeyRegistry.
type RegistryConfig struct {
	// Region is the logical region the registry belongs to.
	Region string
	// MaxKeySize bounds the material length accepted by Insert. Zero means
	// keysDomain.DefaultMaxKeySize.
	MaxKeySize int
	// RequireMemoryLock makes Insert fail when the key pages cannot be mlocked.
	RequireMemoryLock bool
}

// MemoryKeyRegistry maps key ids to SecureBuffers.
//
// The write lock is held only for the O(1) map mutation. Buffers are
// allocated before the lock is taken and wiped by the caller after
// RemoveAndDestroy has detached them, so a large key never extends the
// critical section seen by operations on other ids.
type MemoryKeyRegistry struct {
	region      string
	maxKeySize  int
	requireLock bool

	mu      sync.RWMutex
	entries map[string]*keysDomain.SecureBuffer
	closed  bool
}

// NewMemoryKeyRegistry creates an empty registry.
func NewMemoryKeyRegistry(cfg RegistryConfig) *MemoryKeyRegistry {
	maxKeySize := cfg.MaxKeySize
	if maxKeySize <= 0 {
		maxKeySize = keysDomain.DefaultMaxKeySize
	}

	return &MemoryKeyRegistry{
		region:      cfg.Region,
		maxKeySize:  maxKeySize,
		requireLock: cfg.RequireMemoryLock,
		entries:     make(map[string]*keysDomain.SecureBuffer),
	}
}

// Region returns the registry's region.
func (r *MemoryKeyRegistry) Region() string {
	return r.region
}

// Insert stores a copy of material under id and zeroes the caller's slice.
// If id is already registered it returns ErrDuplicateKey and neither the
// existing entry nor material is modified.
func (r *MemoryKeyRegistry) Insert(id string, material []byte) error {
	if id == "" {
		return keysDomain.ErrEmptyKeyID
	}
	if len(material) == 0 {
		return keysDomain.ErrEmptyKeyMaterial
	}
	if len(material) > r.maxKeySize {
		return errors.Wrapf(
			keysDomain.ErrKeyMaterialTooLarge,
			"%d bytes exceeds limit of %d",
			len(material),
			r.maxKeySize,
		)
	}

	// Cheap rejection before paying for a mapping.
	r.mu.RLock()
	_, exists := r.entries[id]
	closed := r.closed
	r.mu.RUnlock()
	if closed {
		return keysDomain.ErrRegistryClosed
	}
	if exists {
		return keysDomain.ErrDuplicateKey
	}

	buf, err := keysDomain.NewSecureBuffer(id, material, r.requireLock)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		_ = buf.Close()
		return keysDomain.ErrRegistryClosed
	}
	if _, exists := r.entries[id]; exists {
		r.mu.Unlock()
		_ = buf.Close()
		return keysDomain.ErrDuplicateKey
	}
	r.entries[id] = buf
	r.mu.Unlock()

	keysDomain.Zero(material)
	return nil
}

// RemoveAndDestroy detaches the buffer registered under id and hands it to
// the caller, who must Wipe and Close it. The entry is deleted before the lock
// is released, so exactly one caller can obtain a given buffer. It returns
// false when id is not registered.
func (r *MemoryKeyRegistry) RemoveAndDestroy(id string) (*keysDomain.SecureBuffer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	delete(r.entries, id)
	return buf, true
}

// Lookup returns the metadata of the key registered under id.
func (r *MemoryKeyRegistry) Lookup(id string) (keysDomain.KeyInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buf, ok := r.entries[id]
	if !ok {
		return keysDomain.KeyInfo{}, false
	}
	return buf.Info(), true
}

// IDs returns the registered ids in sorted order.
func (r *MemoryKeyRegistry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Len returns the number of registered keys.
func (r *MemoryKeyRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Close wipes and releases every remaining key and rejects further inserts.
// Close is idempotent.
func (r *MemoryKeyRegistry) Close() error {
	r.mu.Lock()
	remaining := r.entries
	r.entries = make(map[string]*keysDomain.SecureBuffer)
	r.closed = true
	r.mu.Unlock()

	var errs []error
	for id, buf := range remaining {
		if err := buf.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "release key %s", id))
		}
	}
	return errors.Join(errs...)
}
