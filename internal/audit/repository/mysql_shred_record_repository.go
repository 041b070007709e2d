package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
	"github.com/allisson/keyshred/internal/database"
	apperrors "github.com/allisson/keyshred/internal/errors"
)

// MySQLShredRecordRepository implements ShredRecord persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLShredRecordRepository struct {
	db *sql.DB
}

// Create inserts a new ShredRecord.
func (m *MySQLShredRecordRepository) Create(ctx context.Context, record *auditDomain.ShredRecord) error {
	querier := database.GetTx(ctx, m.db)

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal shred record id")
	}

	query := `INSERT INTO shred_records
			  (id, key_id, region, classification, found, verified, elapsed_us, requested_at, signature, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		record.KeyID,
		record.Region,
		record.Classification,
		record.Found,
		record.Verified,
		record.ElapsedMicros,
		record.RequestedAt,
		record.Signature,
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create shred record")
	}

	return nil
}

// List retrieves shred records ordered by created_at descending (newest first) with
// pagination and optional inclusive time filters. UUIDs are stored as BINARY(16).
func (m *MySQLShredRecordRepository) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.ShredRecord, error) {
	querier := database.GetTx(ctx, m.db)

	var conditions []string
	var args []any

	if createdAtFrom != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *createdAtFrom)
	}
	if createdAtTo != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *createdAtTo)
	}

	query := `SELECT id, key_id, region, classification, found, verified, elapsed_us, requested_at, signature, created_at
			  FROM shred_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list shred records")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*auditDomain.ShredRecord, 0)
	for rows.Next() {
		var record auditDomain.ShredRecord
		var idBinary []byte

		err := rows.Scan(
			&idBinary,
			&record.KeyID,
			&record.Region,
			&record.Classification,
			&record.Found,
			&record.Verified,
			&record.ElapsedMicros,
			&record.RequestedAt,
			&record.Signature,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan shred record")
		}

		if err := record.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal shred record id")
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate shred records")
	}

	return records, nil
}

// DeleteOlderThan removes records created before olderThan. When dryRun is
// true it returns the matching count without deleting.
func (m *MySQLShredRecordRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		query := `SELECT COUNT(*) FROM shred_records WHERE created_at < ?`
		var count int64
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count shred records")
		}
		return count, nil
	}

	query := `DELETE FROM shred_records WHERE created_at < ?`
	result, err := querier.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete shred records")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}
	return count, nil
}

// NewMySQLShredRecordRepository creates a new MySQL ShredRecord repository.
func NewMySQLShredRecordRepository(db *sql.DB) *MySQLShredRecordRepository {
	return &MySQLShredRecordRepository{db: db}
}
