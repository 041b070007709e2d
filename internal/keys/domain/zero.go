package domain

import "runtime"

// Zero overwrites a heap byte slice with zeros. It is used on transient copies
// of key material (request bodies, unwrapped plaintext) once the material has
// been moved into a SecureBuffer.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
