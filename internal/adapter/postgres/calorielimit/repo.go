// Package calorielimit stores per-user daily calorie limits.
package calorielimit

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const table = "calorie_limits"

// Repo provides calorie limit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new calorie limit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type limitRow struct {
	OwnerID    uuid.UUID `db:"owner_id"`
	LimitValue float64   `db:"limit_value"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r limitRow) toDomain() *domain.CalorieLimit {
	return &domain.CalorieLimit{OwnerID: r.OwnerID, Limit: r.LimitValue, CreatedAt: r.CreatedAt}
}

// Get returns the owner's limit or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, ownerID uuid.UUID) (*domain.CalorieLimit, error) {
	q := postgres.Builder().
		Select("owner_id", "limit_value", "created_at").
		From(table).
		Where(sq.Eq{"owner_id": ownerID})

	var row limitRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "calorie_limit", ownerID)
	}
	return row.toDomain(), nil
}

// Upsert sets the owner's limit, replacing any previous value.
func (r *Repo) Upsert(ctx context.Context, ownerID uuid.UUID, limit float64) (*domain.CalorieLimit, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("owner_id", "limit_value").
		Values(ownerID, limit).
		Suffix("ON CONFLICT (owner_id) DO UPDATE SET limit_value = EXCLUDED.limit_value RETURNING owner_id, limit_value, created_at")

	var row limitRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "calorie_limit", ownerID)
	}
	return row.toDomain(), nil
}

// Delete removes the owner's limit.
func (r *Repo) Delete(ctx context.Context, ownerID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "calorie_limit", ownerID)
	}
	return postgres.CheckAffected(tag, "calorie_limit", ownerID)
}
