// Package repository persists signed shred records in PostgreSQL or MySQL.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	auditDomain "github.com/allisson/keyshred/internal/audit/domain"
	"github.com/allisson/keyshred/internal/database"
	apperrors "github.com/allisson/keyshred/internal/errors"
)

// PostgreSQLShredRecordRepository implements ShredRecord persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLShredRecordRepository struct {
	db *sql.DB
}

// Create inserts a new ShredRecord.
func (p *PostgreSQLShredRecordRepository) Create(ctx context.Context, record *auditDomain.ShredRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO shred_records
			  (id, key_id, region, classification, found, verified, elapsed_us, requested_at, signature, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
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
// pagination and optional inclusive time filters. Returns an empty slice if none match.
func (p *PostgreSQLShredRecordRepository) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.ShredRecord, error) {
	querier := database.GetTx(ctx, p.db)

	var conditions []string
	var args []any

	if createdAtFrom != nil {
		args = append(args, *createdAtFrom)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if createdAtTo != nil {
		args = append(args, *createdAtTo)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	query := `SELECT id, key_id, region, classification, found, verified, elapsed_us, requested_at, signature, created_at
			  FROM shred_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
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
		err := rows.Scan(
			&record.ID,
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
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate shred records")
	}

	return records, nil
}

// DeleteOlderThan removes records created before olderThan. When dryRun is
// true it returns the matching count without deleting.
func (p *PostgreSQLShredRecordRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	if dryRun {
		query := `SELECT COUNT(*) FROM shred_records WHERE created_at < $1`
		var count int64
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count shred records")
		}
		return count, nil
	}

	query := `DELETE FROM shred_records WHERE created_at < $1`
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

// NewPostgreSQLShredRecordRepository creates a new PostgreSQL ShredRecord repository.
func NewPostgreSQLShredRecordRepository(db *sql.DB) *PostgreSQLShredRecordRepository {
	return &PostgreSQLShredRecordRepository{db: db}
}
