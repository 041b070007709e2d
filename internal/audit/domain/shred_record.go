// Package domain defines the signed audit record persisted for every shred outcome.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShredRecord is the durable, signed trace of one shred request. It never
// contains key material.
type ShredRecord struct {
	ID             uuid.UUID
	KeyID          string
	Region         string
	Classification string
	Found          bool
	Verified       bool
	ElapsedMicros  int64
	RequestedAt    time.Time
	Signature      []byte
	CreatedAt      time.Time
}

// IsSigned reports whether the record carries a signature.
func (r *ShredRecord) IsSigned() bool {
	return len(r.Signature) > 0
}

// VerificationReport summarizes a batch integrity check of stored records.
type VerificationReport struct {
	TotalChecked   int64
	SignedCount    int64
	UnsignedCount  int64
	ValidCount     int64
	InvalidCount   int64
	InvalidRecords []uuid.UUID
}
