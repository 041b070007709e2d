package domain

import "time"

const (
	// WipeSentinel is the value of every byte after the final wipe pass.
	WipeSentinel byte = 0xAA

	// DefaultSlowThreshold is the elapsed time above which a shred is
	// classified as a slow warning.
	DefaultSlowThreshold = 30 * time.Millisecond

	// DefaultMaxKeySize bounds the size of a single key's material.
	DefaultMaxKeySize = 64 * 1024
)

// wipePasses are applied in order, full length each pass. The two passes
// after the zero pass keep the overwrite from being coalesced into a single
// clear.
var wipePasses = [...]byte{0x00, 0xFF, WipeSentinel}
