package dealership

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// CarWithMake is the result of CreateCarWithMake.
type CarWithMake struct {
	Make        *domain.Make
	Car         *domain.Car
	MakeCreated bool
}

// CreateCarWithMake creates a car under the make called input.MakeName,
// creating the make first when it does not exist. If the car cannot be
// created, a make created by this call is deleted again; an existing make is
// never touched. The returned error is always the car's error.
func (s *Service) CreateCarWithMake(ctx context.Context, input CreateCarWithMakeInput) (*CarWithMake, error) {
	if err := input.Validate(s.yearRange()); err != nil {
		return nil, err
	}

	var (
		mk  ensuredMake
		car *domain.Car
	)

	err := s.newSaga(OpCreateCarWithMake).
		AddStep(s.ensureMakeStep(OpCreateCarWithMake, input.MakeName, &mk)).
		AddStep(s.createCarStep(OpCreateCarWithMake, input.Car, s.defaultCarStatus, &mk, &car)).
		Run(ctx)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "car created",
		slog.String("car_id", car.ID.String()),
		slog.String("make_id", mk.Make.ID.String()),
		slog.Bool("make_created", mk.Created),
		slog.String("vin", car.VIN),
	)

	return &CarWithMake{Make: mk.Make, Car: car, MakeCreated: mk.Created}, nil
}
