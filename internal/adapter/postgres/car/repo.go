// Package car implements the Car repository using PostgreSQL.
package car

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

const table = "cars"

// price is read as text so it round-trips through decimal.Decimal exactly.
var columns = []string{
	"id", "make_id", "model", "year", "price::text AS price", "color", "vin", "supplier_id",
	"status", "condition", "mileage", "body_type", "description", "created_at",
}

const returning = "RETURNING id, make_id, model, year, price::text AS price, color, vin, supplier_id, " +
	"status, condition, mileage, body_type, description, created_at"

// Repo provides car persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new car repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type carRow struct {
	ID          uuid.UUID  `db:"id"`
	MakeID      uuid.UUID  `db:"make_id"`
	Model       string     `db:"model"`
	Year        int        `db:"year"`
	Price       string     `db:"price"`
	Color       *string    `db:"color"`
	VIN         string     `db:"vin"`
	SupplierID  *uuid.UUID `db:"supplier_id"`
	Status      string     `db:"status"`
	Condition   *string    `db:"condition"`
	Mileage     *int       `db:"mileage"`
	BodyType    *string    `db:"body_type"`
	Description *string    `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r carRow) toDomain() (*domain.Car, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return nil, fmt.Errorf("parse car price %q: %w", r.Price, err)
	}

	c := &domain.Car{
		ID:          r.ID,
		MakeID:      r.MakeID,
		Model:       r.Model,
		Year:        r.Year,
		Price:       price,
		Color:       r.Color,
		VIN:         r.VIN,
		SupplierID:  r.SupplierID,
		Status:      domain.CarStatus(r.Status),
		Mileage:     r.Mileage,
		BodyType:    r.BodyType,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
	if r.Condition != nil {
		cond := domain.CarCondition(*r.Condition)
		c.Condition = &cond
	}
	return c, nil
}

// GetByID returns a car or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var row carRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "car", id)
	}
	return row.toDomain()
}

// ListByMake returns the cars of a make, newest first.
func (r *Repo) ListByMake(ctx context.Context, makeID uuid.UUID) ([]domain.Car, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"make_id": makeID}).
		OrderBy("created_at DESC")

	var rows []carRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	cars := make([]domain.Car, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		cars = append(cars, *c)
	}
	return cars, nil
}

// Create inserts a car. Returns domain.ErrAlreadyExists on a duplicate VIN and
// domain.ErrNotFound when the make or supplier does not exist.
func (r *Repo) Create(ctx context.Context, c domain.Car) (*domain.Car, error) {
	var condition *string
	if c.Condition != nil {
		s := c.Condition.String()
		condition = &s
	}

	q := postgres.Builder().
		Insert(table).
		Columns("make_id", "model", "year", "price", "color", "vin", "supplier_id",
			"status", "condition", "mileage", "body_type", "description").
		Values(c.MakeID, c.Model, c.Year, c.Price.String(), c.Color, c.VIN, c.SupplierID,
			c.Status.String(), condition, c.Mileage, c.BodyType, c.Description).
		Suffix(returning)

	var row carRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "car", c.VIN)
	}
	return row.toDomain()
}

// Delete removes a car. Returns domain.ErrConflict while orders reference it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, "car", id)
	}
	return postgres.CheckAffected(tag, "car", id)
}
