package dealership

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// OrderWithCar is the result of CreateOrderWithCar.
type OrderWithCar struct {
	Make        *domain.Make
	Car         *domain.Car
	Supplier    *domain.Supplier
	Order       *domain.Order
	MakeCreated bool
}

// CreateOrderWithCar creates a car (and its make when missing) and a supplier
// order for it. The supplier must already exist. On failure the car is
// deleted, and so is the make if this call created it; the error of the step
// that failed is returned.
//
// Cars created here default to Pending: they are on order, not on the lot.
func (s *Service) CreateOrderWithCar(ctx context.Context, input CreateOrderWithCarInput) (*OrderWithCar, error) {
	if err := input.Validate(s.yearRange()); err != nil {
		return nil, err
	}

	var (
		mk    ensuredMake
		car   *domain.Car
		sup   *domain.Supplier
		order *domain.Order
	)

	err := s.newSaga(OpCreateOrderWithCar).
		AddStep(s.ensureMakeStep(OpCreateOrderWithCar, input.MakeName, &mk)).
		AddStep(s.createCarStep(OpCreateOrderWithCar, input.Car, domain.CarStatusPending, &mk, &car)).
		AddStep(s.resolveSupplierStep(input.Order.SupplierCompanyName, &sup)).
		AddStep(s.createOrderStep(input.Order, &car, &sup, &order)).
		Run(ctx)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "order with car created",
		slog.String("order_id", order.ID.String()),
		slog.String("car_id", car.ID.String()),
		slog.String("supplier_id", sup.ID.String()),
		slog.Bool("make_created", mk.Created),
	)

	return &OrderWithCar{
		Make:        mk.Make,
		Car:         car,
		Supplier:    sup,
		Order:       order,
		MakeCreated: mk.Created,
	}, nil
}
