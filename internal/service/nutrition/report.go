package nutrition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
	"github.com/heartmarshall/carnutri-backend/pkg/ctxutil"
)

const daysPerWeek = 7

// DailyReport returns the calorie total of the day containing date.
func (s *Service) DailyReport(ctx context.Context, date time.Time) (*domain.CalorieReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	first := s.localMidnight(date)
	return s.buildReport(ctx, userID, domain.ReportPeriodDay, first, 1)
}

// WeeklyReport returns seven day totals starting with the day containing start.
func (s *Service) WeeklyReport(ctx context.Context, start time.Time) (*domain.CalorieReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	first := s.localMidnight(start)
	return s.buildReport(ctx, userID, domain.ReportPeriodWeek, first, daysPerWeek)
}

// MonthlyReport returns one day total for every day of a calendar month.
func (s *Service) MonthlyReport(ctx context.Context, year int, month time.Month) (*domain.CalorieReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if year < 1 || year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "out of range"})
	}
	if month < time.January || month > time.December {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	// Day 0 of the next month is the last day of this one.
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, s.loc).Day()
	return s.buildReport(ctx, userID, domain.ReportPeriodMonth, first, days)
}

func (s *Service) localMidnight(t time.Time) time.Time {
	return DayStart(t, s.loc).In(s.loc)
}

// buildReport sums meal totals per local day over [first, first+days).
func (s *Service) buildReport(
	ctx context.Context,
	userID uuid.UUID,
	period domain.ReportPeriod,
	first time.Time,
	days int,
) (*domain.CalorieReport, error) {
	from := first
	to := first.AddDate(0, 0, days)

	var (
		meals []domain.MealGraph
		limit *float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		meals, err = s.graph.MealGraphsBetween(gctx, userID, from.UTC(), to.UTC())
		if err != nil {
			return fmt.Errorf("get meal graphs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		l, err := s.limits.Get(gctx, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("get calorie limit: %w", err)
		}
		limit = &l.Limit
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.CalorieReport{
		Period:     period,
		From:       from,
		To:         to,
		Days:       make([]domain.DayTotal, days),
		DailyLimit: limit,
	}

	index := make(map[string]int, days)
	for i := range days {
		date := first.AddDate(0, 0, i)
		report.Days[i] = domain.DayTotal{Date: date}
		index[dayKey(date, s.loc)] = i
	}

	for _, meal := range meals {
		i, ok := index[dayKey(meal.CreatedAt, s.loc)]
		if !ok {
			continue
		}
		n := MealNutrition(meal)
		report.Days[i].Calories += n.Calories
		report.Days[i].Meals++
		report.Total += n.Calories
		if !n.CaloriesComplete {
			report.Days[i].Partial = true
			report.Partial = true
		}
	}

	if limit != nil {
		for i := range report.Days {
			report.Days[i].OverLimit = report.Days[i].Calories > *limit
		}
	}

	s.log.DebugContext(ctx, "calorie report built",
		slog.String("user_id", userID.String()),
		slog.String("period", period.String()),
		slog.Int("meals", len(meals)),
	)

	return report, nil
}
