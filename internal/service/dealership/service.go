// Package dealership creates makes, cars and orders. Creations that span
// several stores run as sagas: every step commits on its own and a failure
// undoes the steps that already succeeded.
package dealership

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/internal/saga"
)

type makeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Make, error)
	GetByName(ctx context.Context, name string) (*domain.Make, error)
	Create(ctx context.Context, name string) (*domain.Make, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type carRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	ListByMake(ctx context.Context, makeID uuid.UUID) ([]domain.Car, error)
	Create(ctx context.Context, car domain.Car) (*domain.Car, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	GetByCompanyName(ctx context.Context, companyName string) (*domain.Supplier, error)
	Create(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error)
}

type orderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// Saga names, also used as the operation in the composite write log.
const (
	OpCreateCarWithMake  = "create_car_with_make"
	OpCreateOrderWithCar = "create_order_with_car"
)

// Step names.
const (
	StepEnsureMake      = "ensure_make"
	StepCreateCar       = "create_car"
	StepResolveSupplier = "resolve_supplier"
	StepCreateOrder     = "create_order"
)

const (
	defaultMinCarYear = 1900
	maxMakeNameLen    = 100
	maxVINLen         = 17
)

// Options tunes the service. Zero values fall back to defaults.
type Options struct {
	// DefaultCarStatus applies to CreateCarWithMake when the input has none.
	DefaultCarStatus domain.CarStatus
	MinCarYear       int
}

// Service coordinates dealership writes.
type Service struct {
	makes     makeRepo
	cars      carRepo
	suppliers supplierRepo
	orders    orderRepo
	audit     auditLogger
	metrics   *saga.Metrics
	log       *slog.Logger

	defaultCarStatus domain.CarStatus
	minCarYear       int
	now              func() time.Time
}

// NewService creates a new dealership service. metrics may be nil.
func NewService(
	log *slog.Logger,
	makes makeRepo,
	cars carRepo,
	suppliers supplierRepo,
	orders orderRepo,
	audit auditLogger,
	metrics *saga.Metrics,
	opts Options,
) *Service {
	status := opts.DefaultCarStatus
	if !status.IsValid() {
		status = domain.CarStatusInStock
	}
	minYear := opts.MinCarYear
	if minYear <= 0 {
		minYear = defaultMinCarYear
	}

	return &Service{
		makes:            makes,
		cars:             cars,
		suppliers:        suppliers,
		orders:           orders,
		audit:            audit,
		metrics:          metrics,
		log:              log.With("service", "dealership"),
		defaultCarStatus: status,
		minCarYear:       minYear,
		now:              time.Now,
	}
}

// yearRange returns the accepted model years: MinCarYear through next year.
func (s *Service) yearRange() (int, int) {
	return s.minCarYear, s.now().Year() + 1
}

func (s *Service) newSaga(name string) *saga.Saga {
	return saga.New(name, s.log, s.metrics)
}
