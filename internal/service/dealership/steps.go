package dealership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/internal/saga"
)

// ensuredMake is the outcome of the ensure_make step. Created is true only
// when this run inserted the make; only then may it be compensated.
type ensuredMake struct {
	Make    *domain.Make
	Created bool
}

// ensureMakeStep finds the make by name or creates it.
func (s *Service) ensureMakeStep(op, name string, out *ensuredMake) saga.Step {
	return saga.Step{
		Name: StepEnsureMake,
		Action: func(ctx context.Context) error {
			m, created, err := s.findOrCreateMake(ctx, name)
			if err != nil {
				return err
			}
			out.Make, out.Created = m, created
			return nil
		},
		Compensate: func(ctx context.Context) error {
			if !out.Created {
				return saga.ErrNothingToUndo
			}
			err := s.makes.Delete(ctx, out.Make.ID)
			if errors.Is(err, domain.ErrConflict) {
				// A concurrent run attached its own car to the make.
				s.log.InfoContext(ctx, "created make adopted by another car, keeping it",
					slog.String("make_id", out.Make.ID.String()),
				)
				return saga.ErrNothingToUndo
			}
			s.recordCompensation(ctx, op, StepEnsureMake, domain.EntityTypeMake, out.Make.ID, err)
			return err
		},
	}
}

// findOrCreateMake returns the make with the given name, creating it when
// missing. A concurrent insert of the same name is resolved by reading the
// winner's row, which is then treated as pre-existing.
func (s *Service) findOrCreateMake(ctx context.Context, name string) (*domain.Make, bool, error) {
	m, err := s.makes.GetByName(ctx, name)
	switch {
	case err == nil:
		return m, false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, false, fmt.Errorf("get make: %w", err)
	}

	m, err = s.makes.Create(ctx, name)
	switch {
	case err == nil:
		return m, true, nil
	case !errors.Is(err, domain.ErrAlreadyExists):
		return nil, false, fmt.Errorf("create make: %w", err)
	}

	m, err = s.makes.GetByName(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("get make after concurrent create: %w", err)
	}
	return m, false, nil
}

// createCarStep inserts the car under the ensured make.
func (s *Service) createCarStep(op string, input CarInput, status domain.CarStatus, mk *ensuredMake, out **domain.Car) saga.Step {
	return saga.Step{
		Name: StepCreateCar,
		Action: func(ctx context.Context) error {
			car, err := s.cars.Create(ctx, input.toDomain(mk.Make.ID, nil, status))
			if err != nil {
				return fmt.Errorf("create car: %w", err)
			}
			*out = car
			return nil
		},
		Compensate: func(ctx context.Context) error {
			car := *out
			err := s.cars.Delete(ctx, car.ID)
			s.recordCompensation(ctx, op, StepCreateCar, domain.EntityTypeCar, car.ID, err)
			return err
		},
	}
}

// resolveSupplierStep looks the supplier up by company name. It writes
// nothing, so it has no compensation.
func (s *Service) resolveSupplierStep(companyName string, out **domain.Supplier) saga.Step {
	return saga.Step{
		Name: StepResolveSupplier,
		Action: func(ctx context.Context) error {
			sup, err := s.suppliers.GetByCompanyName(ctx, companyName)
			if err != nil {
				return fmt.Errorf("get supplier: %w", err)
			}
			*out = sup
			return nil
		},
	}
}

// createOrderStep is the last step; nothing runs after it, so it has no
// compensation.
func (s *Service) createOrderStep(input OrderInput, car **domain.Car, sup **domain.Supplier, out **domain.Order) saga.Step {
	return saga.Step{
		Name: StepCreateOrder,
		Action: func(ctx context.Context) error {
			order, err := s.orders.Create(ctx, s.newOrder((*car).ID, (*sup).ID, input.Quantity, input.OrderDate, input.Status))
			if err != nil {
				return fmt.Errorf("create order: %w", err)
			}
			*out = order
			return nil
		},
	}
}

// recordCompensation appends the outcome of a compensating delete to the
// composite write log. Failures to write the log are only logged.
func (s *Service) recordCompensation(ctx context.Context, op, step string, entityType domain.EntityType, entityID uuid.UUID, compErr error) {
	record := domain.AuditRecord{
		ID:         uuid.New(),
		Operation:  op,
		Step:       step,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     domain.AuditActionCompensated,
		CreatedAt:  s.now().UTC(),
	}
	if compErr != nil {
		record.Action = domain.AuditActionCompensationFailed
		record.Changes = map[string]any{"error": compErr.Error()}
	}

	if err := s.audit.Log(ctx, record); err != nil {
		s.log.WarnContext(ctx, "composite write log failed",
			slog.String("operation", op),
			slog.String("step", step),
			slog.String("entity_id", entityID.String()),
			slog.String("error", err.Error()),
		)
	}
}
