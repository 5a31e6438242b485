package dealership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// GetMake returns a make by id.
func (s *Service) GetMake(ctx context.Context, id uuid.UUID) (*domain.Make, error) {
	return s.makes.GetByID(ctx, id)
}

// ListCarsByMake returns the cars of the make called name, newest first.
func (s *Service) ListCarsByMake(ctx context.Context, name string) ([]domain.Car, error) {
	if errs := validateMakeName(name); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	m, err := s.makes.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get make: %w", err)
	}

	cars, err := s.cars.ListByMake(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return cars, nil
}

// GetCar returns a car by id.
func (s *Service) GetCar(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	return s.cars.GetByID(ctx, id)
}

// DeleteMake removes a make. Returns domain.ErrConflict while cars reference it.
func (s *Service) DeleteMake(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("make_id", "required")
	}

	if err := s.makes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete make: %w", err)
	}

	s.log.InfoContext(ctx, "make deleted", slog.String("make_id", id.String()))
	return nil
}
