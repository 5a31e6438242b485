// Package carmake implements the Make repository using PostgreSQL.
package carmake

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const table = "makes"

var columns = []string{"id", "name", "created_at"}

// Repo provides make persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new make repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type makeRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r makeRow) toDomain() *domain.Make {
	return &domain.Make{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

// GetByID returns a make or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Make, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var row makeRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "make", id)
	}
	return row.toDomain(), nil
}

// GetByName looks a make up by its normalized name (case and whitespace
// insensitive). Returns domain.ErrNotFound if there is none.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Make, error) {
	key := domain.NormalizeName(name)
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Expr("lower(name) = ?", key))

	var row makeRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "make", key)
	}
	return row.toDomain(), nil
}

// Create inserts a make. Returns domain.ErrAlreadyExists if a make with the
// same normalized name exists.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Make, error) {
	clean := domain.CleanName(name)
	q := postgres.Builder().
		Insert(table).
		Columns("name").
		Values(clean).
		Suffix("RETURNING id, name, created_at")

	var row makeRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "make", clean)
	}
	return row.toDomain(), nil
}

// Delete removes a make. Returns domain.ErrConflict while cars reference it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, "make", id)
	}
	return postgres.CheckAffected(tag, "make", id)
}
