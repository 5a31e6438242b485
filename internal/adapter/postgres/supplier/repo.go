// Package supplier implements the Supplier repository using PostgreSQL.
package supplier

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const table = "suppliers"

var columns = []string{"id", "company_name", "contact_name", "phone", "email", "created_at"}

// Repo provides supplier persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new supplier repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type supplierRow struct {
	ID          uuid.UUID `db:"id"`
	CompanyName string    `db:"company_name"`
	ContactName *string   `db:"contact_name"`
	Phone       *string   `db:"phone"`
	Email       *string   `db:"email"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r supplierRow) toDomain() *domain.Supplier {
	return &domain.Supplier{
		ID:          r.ID,
		CompanyName: r.CompanyName,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Email:       r.Email,
		CreatedAt:   r.CreatedAt,
	}
}

// GetByID returns a supplier or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var row supplierRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "supplier", id)
	}
	return row.toDomain(), nil
}

// GetByCompanyName looks a supplier up case-insensitively.
func (r *Repo) GetByCompanyName(ctx context.Context, companyName string) (*domain.Supplier, error) {
	key := domain.NormalizeName(companyName)
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Expr("lower(company_name) = ?", key))

	var row supplierRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "supplier", key)
	}
	return row.toDomain(), nil
}

// Create inserts a supplier.
func (r *Repo) Create(ctx context.Context, s domain.Supplier) (*domain.Supplier, error) {
	name := domain.CleanName(s.CompanyName)
	q := postgres.Builder().
		Insert(table).
		Columns("company_name", "contact_name", "phone", "email").
		Values(name, s.ContactName, s.Phone, s.Email).
		Suffix("RETURNING id, company_name, contact_name, phone, email, created_at")

	var row supplierRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "supplier", name)
	}
	return row.toDomain(), nil
}
