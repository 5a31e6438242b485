// Package audit implements the composite write log using PostgreSQL.
// Records are append-only; DeleteOlderThan enforces the retention window.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// Repo provides composite write log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const recordColumns = `id, operation, step, entity_type, entity_id, action, changes, created_at`

const createSQL = `
INSERT INTO composite_write_log (id, operation, step, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + recordColumns

const getByEntitySQL = `
SELECT ` + recordColumns + `
FROM composite_write_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

const getByOperationSQL = `
SELECT ` + recordColumns + `
FROM composite_write_log
WHERE operation = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const deleteOlderThanSQL = `DELETE FROM composite_write_log WHERE created_at < $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new log record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	var changesJSON []byte
	if record.Changes != nil {
		var err error
		changesJSON, err = json.Marshal(record.Changes)
		if err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
		}
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		record.ID,
		record.Operation,
		record.Step,
		record.EntityType.String(),
		record.EntityID,
		record.Action.String(),
		changesJSON,
		record.CreatedAt,
	)

	rec, err := scanRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return rec, nil
}

// Log creates a record without returning it.
// Satisfies dealership.auditLogger.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// DeleteOlderThan removes records created before threshold and returns how
// many were deleted.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteOlderThanSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete old audit_records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the compensation history of one entity, newest first,
// limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, getByEntitySQL, entityType.String(), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	return collect(rows)
}

// GetByOperation returns records of one composite operation, newest first,
// with pagination.
func (r *Repo) GetByOperation(ctx context.Context, operation string, limit, offset int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, getByOperationSQL, operation, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by operation: %w", err)
	}
	return collect(rows)
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func collect(rows pgx.Rows) ([]domain.AuditRecord, error) {
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan audit_records: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	err := row.Scan(&rec.ID, &rec.Operation, &rec.Step, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt)
	if err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	// changes: JSONB -> map[string]any
	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = m
	}
	return rec, nil
}
