package dealership

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// CreateOrder orders an existing car from an existing supplier. Only cars in
// status Pending can be ordered.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	car, err := s.cars.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}
	if car.Status != domain.CarStatusPending {
		return nil, fmt.Errorf("car %s is %q, want %q: %w", car.ID, car.Status, domain.CarStatusPending, domain.ErrConflict)
	}

	if _, err := s.suppliers.GetByID(ctx, input.SupplierID); err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}

	order, err := s.orders.Create(ctx, s.newOrder(car.ID, input.SupplierID, input.Quantity, input.OrderDate, input.Status))
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("car_id", car.ID.String()),
		slog.Int("quantity", order.Quantity),
	)

	return order, nil
}

// GetOrder returns an order by id.
func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) newOrder(carID, supplierID uuid.UUID, quantity int, date *time.Time, status *domain.OrderStatus) domain.Order {
	o := domain.Order{
		SupplierID: supplierID,
		CarID:      carID,
		Quantity:   quantity,
		OrderDate:  s.now().UTC(),
		Status:     domain.OrderStatusPending,
	}
	if date != nil {
		o.OrderDate = *date
	}
	if status != nil {
		o.Status = *status
	}
	return o
}
