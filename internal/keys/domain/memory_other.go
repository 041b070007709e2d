//go:build !linux

package domain

// allocate falls back to heap memory where anonymous locked mappings are not
// wired up. The buffer is reported as unlocked.
func allocate(size int, requireLock bool) ([]byte, bool, error) {
	if requireLock {
		return nil, false, ErrMemoryLockFailed
	}
	return make([]byte, size), false, nil
}

func release(data []byte, locked bool) error {
	return nil
}
