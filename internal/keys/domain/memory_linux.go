//go:build linux

package domain

import (
	"golang.org/x/sys/unix"

	"github.com/allisson/keyshred/internal/errors"
)

// allocate maps size bytes of anonymous memory outside the Go heap, excludes it
// from core dumps and tries to lock it into RAM. locked is false when mlock was
// refused (RLIMIT_MEMLOCK) and requireLock is not set.
func allocate(size int, requireLock bool) (data []byte, locked bool, err error) {
	data, err = unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, false, errors.Wrapf(err, "mmap %d bytes", size)
	}

	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		_ = unix.Munmap(data)
		return nil, false, errors.Wrap(err, "madvise(MADV_DONTDUMP)")
	}

	if err := unix.Mlock(data); err != nil {
		if requireLock {
			_ = unix.Munmap(data)
			return nil, false, errors.Wrapf(ErrMemoryLockFailed, "mlock: %v", err)
		}
		return data, false, nil
	}

	return data, true, nil
}

// release unlocks and unmaps a region returned by allocate.
func release(data []byte, locked bool) error {
	var firstErr error
	if locked {
		if err := unix.Munlock(data); err != nil {
			firstErr = errors.Wrap(err, "munlock")
		}
	}
	if err := unix.Munmap(data); err != nil && firstErr == nil {
		firstErr = errors.Wrap(err, "munmap")
	}
	return firstErr
}
