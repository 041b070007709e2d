package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
	auditService "github.com/allisson/keyshred/internal/audit/service"
	"github.com/allisson/keyshred/internal/database"
	apperrors "github.com/allisson/keyshred/internal/errors"
	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

// verifyPageSize is the number of records loaded per page by VerifyBatch.
const verifyPageSize = 500

type auditUseCase struct {
	txManager database.TxManager
	repo      ShredRecordRepository
	signer    auditService.RecordSigner
	now       func() time.Time
}

// NewAuditUseCase creates an AuditUseCase. signer may be nil, in which case
// records are stored unsigned and VerifyBatch refuses to run.
func NewAuditUseCase(
	txManager database.TxManager,
	repo ShredRecordRepository,
	signer auditService.RecordSigner,
) AuditUseCase {
	return &auditUseCase{
		txManager: txManager,
		repo:      repo,
		signer:    signer,
		now:       time.Now,
	}
}

// Report builds a ShredRecord from outcome, signs it and persists it.
func (a *auditUseCase) Report(ctx context.Context, outcome keysDomain.ShredOutcome) error {
	record := &auditDomain.ShredRecord{
		ID:             uuid.Must(uuid.NewV7()),
		KeyID:          outcome.KeyID,
		Region:         outcome.Region,
		Classification: string(outcome.Classification),
		Found:          outcome.Found,
		Verified:       outcome.Verified,
		ElapsedMicros:  outcome.ElapsedMicros(),
		RequestedAt:    outcome.RequestedAt.UTC().Truncate(time.Microsecond),
		CreatedAt:      a.now().UTC().Truncate(time.Microsecond),
	}

	if a.signer != nil {
		signature, err := a.signer.Sign(record)
		if err != nil {
			return apperrors.Wrap(err, "failed to sign shred record")
		}
		record.Signature = signature
	}

	if err := a.repo.Create(ctx, record); err != nil {
		return apperrors.Wrap(err, "failed to store shred record")
	}
	return nil
}

func (a *auditUseCase) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.ShredRecord, error) {
	records, err := a.repo.List(ctx, offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list shred records")
	}
	return records, nil
}

// VerifyBatch pages through every record in the range and checks signatures.
func (a *auditUseCase) VerifyBatch(ctx context.Context, start, end time.Time) (*auditDomain.VerificationReport, error) {
	if a.signer == nil {
		return nil, auditDomain.ErrSigningKeyInvalid
	}

	report := &auditDomain.VerificationReport{InvalidRecords: make([]uuid.UUID, 0)}

	for offset := 0; ; offset += verifyPageSize {
		records, err := a.repo.List(ctx, offset, verifyPageSize, &start, &end)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to list shred records")
		}

		for _, record := range records {
			report.TotalChecked++
			if !record.IsSigned() {
				report.UnsignedCount++
				continue
			}
			report.SignedCount++

			err := a.signer.Verify(record)
			switch {
			case err == nil:
				report.ValidCount++
			case apperrors.Is(err, auditDomain.ErrSignatureInvalid):
				report.InvalidCount++
				report.InvalidRecords = append(report.InvalidRecords, record.ID)
			default:
				return nil, apperrors.Wrap(err, "failed to verify shred record")
			}
		}

		if len(records) < verifyPageSize {
			return report, nil
		}
	}
}

// DeleteOlderThan removes records created more than days ago. In dry-run mode
// it only counts them.
func (a *auditUseCase) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "days must not be negative")
	}

	cutoff := a.now().UTC().AddDate(0, 0, -days)

	var count int64
	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		count, err = a.repo.DeleteOlderThan(ctx, cutoff, dryRun)
		return err
	})
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete shred records")
	}
	return count, nil
}
