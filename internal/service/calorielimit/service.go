// Package calorielimit manages the daily calorie ceiling of a user.
package calorielimit

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

// maxLimit bounds a daily limit to a sane value.
const maxLimit = 100000

type limitRepo interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.CalorieLimit, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, limit float64) (*domain.CalorieLimit, error)
	Delete(ctx context.Context, ownerID uuid.UUID) error
}

// Service provides calorie limit operations.
type Service struct {
	limits limitRepo
	log    *slog.Logger
}

// NewService creates a new calorie limit service.
func NewService(log *slog.Logger, limits limitRepo) *Service {
	return &Service{
		limits: limits,
		log:    log.With("service", "calorielimit"),
	}
}

// GetLimit returns the user's limit or domain.ErrNotFound if none is set.
func (s *Service) GetLimit(ctx context.Context) (*domain.CalorieLimit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.limits.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get calorie limit: %w", err)
	}
	return l, nil
}

// SetLimit creates or replaces the user's limit.
func (s *Service) SetLimit(ctx context.Context, limit float64) (*domain.CalorieLimit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	switch {
	case math.IsNaN(limit) || math.IsInf(limit, 0):
		return nil, domain.NewValidationError("limit", "must be a number")
	case limit <= 0:
		return nil, domain.NewValidationError("limit", "must be positive")
	case limit > maxLimit:
		return nil, domain.NewValidationError("limit", fmt.Sprintf("max %d", maxLimit))
	}

	l, err := s.limits.Upsert(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("set calorie limit: %w", err)
	}

	s.log.InfoContext(ctx, "calorie limit set",
		slog.String("user_id", userID.String()),
		slog.Float64("limit", limit),
	)
	return l, nil
}

// DeleteLimit removes the user's limit.
func (s *Service) DeleteLimit(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.limits.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete calorie limit: %w", err)
	}

	s.log.InfoContext(ctx, "calorie limit deleted", slog.String("user_id", userID.String()))
	return nil
}
