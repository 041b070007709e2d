// Package domain defines the ephemeral key model: off-heap key buffers with an
// irreversible three-pass wipe, the metadata exposed about live keys, and the
// outcome produced by a shred request.
package domain

import (
	"runtime"
	"sync"
	"time"
)

// KeyInfo is the metadata exposed about a registered key. It never carries
// key material.
type KeyInfo struct {
	ID        string
	Length    int
	Locked    bool
	CreatedAt time.Time
}

// SecureBuffer owns the raw material of one ephemeral key.
//
// The material lives in memory allocated outside the Go heap (see allocate),
// so the garbage collector never copies or relocates it. On Linux the pages
// are excluded from core dumps and locked against swap when the kernel allows
// it. A SecureBuffer must not be copied after creation.
//
// Lifecycle: NewSecureBuffer -> Wipe (exactly once) -> Close. Close wipes
// first if Wipe was never called, so teardown cannot leak material.
type SecureBuffer struct {
	mu        sync.Mutex
	id        string
	data      []byte
	length    int
	locked    bool
	wiped     bool
	closed    bool
	createdAt time.Time
}

// afterWipePass is called after each wipe pass when set. Tests use it to
// observe pass ordering.
var afterWipePass func(pass byte, data []byte)

// NewSecureBuffer copies material into a freshly allocated protected region.
// The caller's slice is not modified; the registry zeroes it once the key is
// stored. When requireLock is true an mlock failure is returned as
// ErrMemoryLockFailed instead of falling back to unlocked pages.
func NewSecureBuffer(id string, material []byte, requireLock bool) (*SecureBuffer, error) {
	if id == "" {
		return nil, ErrEmptyKeyID
	}
	if len(material) == 0 {
		return nil, ErrEmptyKeyMaterial
	}

	data, locked, err := allocate(len(material), requireLock)
	if err != nil {
		return nil, err
	}
	copy(data, material)

	return &SecureBuffer{
		id:        id,
		data:      data,
		length:    len(material),
		locked:    locked,
		createdAt: time.Now().UTC(),
	}, nil
}

// ID returns the key identifier.
func (b *SecureBuffer) ID() string {
	return b.id
}

// Len returns the length of the key material. It stays valid after Close.
func (b *SecureBuffer) Len() int {
	return b.length
}

// Locked reports whether the backing pages are locked into RAM.
func (b *SecureBuffer) Locked() bool {
	return b.locked
}

// Info returns the buffer metadata.
func (b *SecureBuffer) Info() KeyInfo {
	return KeyInfo{
		ID:        b.id,
		Length:    b.length,
		Locked:    b.locked,
		CreatedAt: b.createdAt,
	}
}

// Wipe overwrites the material with 0x00, then 0xFF, then WipeSentinel, each
// pass covering the full length. It always runs to completion once started.
// A second call writes nothing and returns ErrAlreadyDestroyed.
func (b *SecureBuffer) Wipe() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.wiped || b.closed {
		return ErrAlreadyDestroyed
	}

	b.wipeLocked()
	return nil
}

func (b *SecureBuffer) wipeLocked() {
	for _, pass := range wipePasses {
		fill(b.data, pass)
		if afterWipePass != nil {
			afterWipePass(pass, b.data)
		}
	}
	runtime.KeepAlive(b.data)
	b.wiped = true
}

// isWiped reports whether Wipe has completed.
func (b *SecureBuffer) isWiped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.wiped
}

// Verify reports whether the buffer has been wiped and every byte equals
// WipeSentinel. It returns false for a live buffer without inspecting it, and
// false after Close because the memory is gone.
func (b *SecureBuffer) Verify() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.wiped || b.closed {
		return false
	}
	for _, v := range b.data {
		if v != WipeSentinel {
			return false
		}
	}
	return true
}

// Use calls fn with the live material while holding the buffer lock, so a
// concurrent Wipe waits for fn to return. fn must not retain the slice. After a
// wipe Use returns ErrAlreadyDestroyed without calling fn.
func (b *SecureBuffer) Use(fn func(material []byte) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.wiped || b.closed {
		return ErrAlreadyDestroyed
	}
	return fn(b.data[:b.length])
}

// Close wipes the material if it is still live, then unlocks and releases the
// backing memory. Close is idempotent.
func (b *SecureBuffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	if !b.wiped {
		b.wipeLocked()
	}
	b.closed = true

	err := release(b.data, b.locked)
	b.data = nil
	return err
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}
