// Package usecase persists signed shred records and verifies their integrity.
package usecase

import (
	"context"
	"time"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// ShredRecordRepository defines the interface for shred record persistence.
type ShredRecordRepository interface {
	Create(ctx context.Context, record *auditDomain.ShredRecord) error
	// List returns records newest first. Nil bounds are not applied; both are inclusive.
	List(
		ctx context.Context,
		offset, limit int,
		createdAtFrom, createdAtTo *time.Time,
	) ([]*auditDomain.ShredRecord, error)
	// DeleteOlderThan removes records created before olderThan, or only counts them when dryRun is set.
	DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

// AuditUseCase records shred outcomes and checks the stored trail.
type AuditUseCase interface {
	// Report signs and stores one outcome. It satisfies the keys OutcomeReporter.
	Report(ctx context.Context, outcome keysDomain.ShredOutcome) error
	List(
		ctx context.Context,
		offset, limit int,
		createdAtFrom, createdAtTo *time.Time,
	) ([]*auditDomain.ShredRecord, error)
	// VerifyBatch checks the signature of every record created in [start, end].
	VerifyBatch(ctx context.Context, start, end time.Time) (*auditDomain.VerificationReport, error)
	// DeleteOlderThan prunes records older than days; dryRun only counts them.
	DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error)
}
