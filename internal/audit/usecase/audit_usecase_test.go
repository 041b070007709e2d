package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
	auditService "github.com/allisson/keyshred/internal/audit/service"
	auditUsecaseMocks "github.com/allisson/keyshred/internal/audit/usecase/mocks"
	apperrors "github.com/allisson/keyshred/internal/errors"
	keysDomain "github.com/allisson/keyshred/internal/keys/domain"
)

func newTestSigner(t *testing.T) auditService.RecordSigner {
	t.Helper()
	key := make([]byte, auditDomain.SigningKeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)

	signer, err := auditService.NewRecordSigner(key)
	require.NoError(t, err)
	t.Cleanup(func() { _ = signer.Close() })
	return signer
}

func newTestOutcome() keysDomain.ShredOutcome {
	return keysDomain.ShredOutcome{
		KeyID:          "k1",
		Region:         "QUEBEC-BHS-SECURE",
		Found:          true,
		Verified:       true,
		Elapsed:        412 * time.Microsecond,
		Classification: keysDomain.ClassificationSuccess,
		RequestedAt:    time.Now().UTC(),
	}
}

func TestAuditUseCase_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SignedRecord", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		signer := newTestSigner(t)
		outcome := newTestOutcome()

		var stored *auditDomain.ShredRecord
		repo.EXPECT().
			Create(ctx, mock.AnythingOfType("*domain.ShredRecord")).
			Run(func(_ context.Context, record *auditDomain.ShredRecord) {
				stored = record
			}).
			Return(nil).
			Once()

		uc := NewAuditUseCase(&passthroughTxManager{}, repo, signer)
		require.NoError(t, uc.Report(ctx, outcome))

		require.NotNil(t, stored)
		assert.Equal(t, "k1", stored.KeyID)
		assert.Equal(t, "QUEBEC-BHS-SECURE", stored.Region)
		assert.Equal(t, "success", stored.Classification)
		assert.True(t, stored.Found)
		assert.True(t, stored.Verified)
		assert.Equal(t, int64(412), stored.ElapsedMicros)
		assert.Equal(t, outcome.RequestedAt.Truncate(time.Microsecond), stored.RequestedAt)
		assert.Equal(t, uuid.Version(7), stored.ID.Version())
		assert.True(t, stored.IsSigned())
		assert.NoError(t, signer.Verify(stored))
	})

	t.Run("Success_UnsignedWithoutSigner", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		repo.EXPECT().
			Create(ctx, mock.MatchedBy(func(r *auditDomain.ShredRecord) bool {
				return !r.IsSigned() && r.Classification == "not_found"
			})).
			Return(nil).
			Once()

		outcome := newTestOutcome()
		outcome.Found = false
		outcome.Verified = false
		outcome.Classification = keysDomain.ClassificationNotFound

		require.NoError(t, NewAuditUseCase(&passthroughTxManager{}, repo, nil).Report(ctx, outcome))
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		repo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down")).Once()

		err := NewAuditUseCase(&passthroughTxManager{}, repo, newTestSigner(t)).Report(ctx, newTestOutcome())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store shred record")
	})
}

func TestAuditUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		expected := []*auditDomain.ShredRecord{{KeyID: "k1"}}
		repo.EXPECT().List(ctx, 0, 10, (*time.Time)(nil), (*time.Time)(nil)).Return(expected, nil).Once()

		records, err := NewAuditUseCase(&passthroughTxManager{}, repo, nil).List(ctx, 0, 10, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, records)
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		repo.EXPECT().List(ctx, 0, 10, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		records, err := NewAuditUseCase(&passthroughTxManager{}, repo, nil).List(ctx, 0, 10, nil, nil)
		assert.Nil(t, records)
		assert.Error(t, err)
	})
}

func TestAuditUseCase_VerifyBatch(t *testing.T) {
	ctx := context.Background()
	start := time.Now().UTC().Add(-time.Hour)
	end := time.Now().UTC()

	signedRecord := func(t *testing.T, signer auditService.RecordSigner) *auditDomain.ShredRecord {
		t.Helper()
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		var stored *auditDomain.ShredRecord
		repo.EXPECT().Create(ctx, mock.Anything).
			Run(func(_ context.Context, record *auditDomain.ShredRecord) { stored = record }).
			Return(nil).
			Once()
		require.NoError(t, NewAuditUseCase(&passthroughTxManager{}, repo, signer).Report(ctx, newTestOutcome()))
		return stored
	}

	t.Run("Success_MixedRecords", func(t *testing.T) {
		signer := newTestSigner(t)
		valid := signedRecord(t, signer)
		tampered := signedRecord(t, signer)
		tampered.Classification = "not_found"
		unsigned := &auditDomain.ShredRecord{KeyID: "legacy"}

		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		repo.EXPECT().
			List(ctx, 0, verifyPageSize, &start, &end).
			Return([]*auditDomain.ShredRecord{valid, tampered, unsigned}, nil).
			Once()

		report, err := NewAuditUseCase(&passthroughTxManager{}, repo, signer).VerifyBatch(ctx, start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(3), report.TotalChecked)
		assert.Equal(t, int64(2), report.SignedCount)
		assert.Equal(t, int64(1), report.UnsignedCount)
		assert.Equal(t, int64(1), report.ValidCount)
		assert.Equal(t, int64(1), report.InvalidCount)
		assert.Equal(t, tampered.ID, report.InvalidRecords[0])
	})

	t.Run("Success_Paginates", func(t *testing.T) {
		signer := newTestSigner(t)
		record := signedRecord(t, signer)

		fullPage := make([]*auditDomain.ShredRecord, verifyPageSize)
		for i := range fullPage {
			fullPage[i] = record
		}

		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		repo.EXPECT().List(ctx, 0, verifyPageSize, &start, &end).Return(fullPage, nil).Once()
		repo.EXPECT().
			List(ctx, verifyPageSize, verifyPageSize, &start, &end).
			Return([]*auditDomain.ShredRecord{record}, nil).
			Once()

		report, err := NewAuditUseCase(&passthroughTxManager{}, repo, signer).VerifyBatch(ctx, start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(verifyPageSize+1), report.TotalChecked)
		assert.Equal(t, int64(verifyPageSize+1), report.ValidCount)
		assert.Empty(t, report.InvalidRecords)
	})

	t.Run("Error_NoSigner", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)

		_, err := NewAuditUseCase(&passthroughTxManager{}, repo, nil).VerifyBatch(ctx, start, end)
		assert.ErrorIs(t, err, auditDomain.ErrSigningKeyInvalid)
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		repo.EXPECT().List(ctx, 0, verifyPageSize, &start, &end).Return(nil, errors.New("db down")).Once()

		_, err := NewAuditUseCase(&passthroughTxManager{}, repo, newTestSigner(t)).VerifyBatch(ctx, start, end)
		assert.Error(t, err)
	})
}

// passthroughTxManager runs fn directly and counts the transactions opened.
type passthroughTxManager struct {
	calls int
	err   error
}

func (m *passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

func TestAuditUseCase_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	newUseCase := func(tx *passthroughTxManager, repo ShredRecordRepository) *auditUseCase {
		uc := NewAuditUseCase(tx, repo, nil).(*auditUseCase)
		uc.now = func() time.Time { return fixedNow }
		return uc
	}

	t.Run("Success_Delete", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		tx := &passthroughTxManager{}

		repo.EXPECT().
			DeleteOlderThan(ctx, fixedNow.AddDate(0, 0, -30), false).
			Return(int64(12), nil).
			Once()

		count, err := newUseCase(tx, repo).DeleteOlderThan(ctx, 30, false)
		require.NoError(t, err)
		assert.Equal(t, int64(12), count)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("Success_DryRun", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)

		repo.EXPECT().
			DeleteOlderThan(ctx, fixedNow, true).
			Return(int64(3), nil).
			Once()

		count, err := newUseCase(&passthroughTxManager{}, repo).DeleteOlderThan(ctx, 0, true)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Error_NegativeDays", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)
		tx := &passthroughTxManager{}

		_, err := newUseCase(tx, repo).DeleteOlderThan(ctx, -1, false)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Equal(t, 0, tx.calls)
	})

	t.Run("Error_Repository", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)

		repo.EXPECT().
			DeleteOlderThan(ctx, mock.AnythingOfType("time.Time"), false).
			Return(int64(0), errors.New("connection reset")).
			Once()

		count, err := newUseCase(&passthroughTxManager{}, repo).DeleteOlderThan(ctx, 7, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete shred records")
		assert.Equal(t, int64(0), count)
	})

	t.Run("Error_Transaction", func(t *testing.T) {
		repo := auditUsecaseMocks.NewMockShredRecordRepository(t)

		_, err := newUseCase(&passthroughTxManager{err: errors.New("begin failed")}, repo).DeleteOlderThan(ctx, 7, false)
		assert.Error(t, err)
	})
}
