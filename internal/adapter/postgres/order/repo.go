// Package order implements the Order repository using PostgreSQL.
package order

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const table = "orders"

var columns = []string{"id", "supplier_id", "car_id", "quantity", "order_date", "status", "created_at"}

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new order repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type orderRow struct {
	ID         uuid.UUID `db:"id"`
	SupplierID uuid.UUID `db:"supplier_id"`
	CarID      uuid.UUID `db:"car_id"`
	Quantity   int       `db:"quantity"`
	OrderDate  time.Time `db:"order_date"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r orderRow) toDomain() *domain.Order {
	return &domain.Order{
		ID:         r.ID,
		SupplierID: r.SupplierID,
		CarID:      r.CarID,
		Quantity:   r.Quantity,
		OrderDate:  r.OrderDate,
		Status:     domain.OrderStatus(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

// GetByID returns an order or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var row orderRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	return row.toDomain(), nil
}

// Create inserts an order. Returns domain.ErrNotFound when the supplier or car
// does not exist.
func (r *Repo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("supplier_id", "car_id", "quantity", "order_date", "status").
		Values(o.SupplierID, o.CarID, o.Quantity, o.OrderDate, o.Status.String()).
		Suffix("RETURNING id, supplier_id, car_id, quantity, order_date, status, created_at")

	var row orderRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "order", o.CarID)
	}
	return row.toDomain(), nil
}
