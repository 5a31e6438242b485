// Package saga runs multi-step writes that cannot share a database
// transaction. Steps run in order; when one fails, the compensations of the
// steps that already completed run in reverse order.
package saga

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// ErrNothingToUndo is returned by a compensation whose step left nothing
// behind (for example a find-or-create step that found an existing row).
var ErrNothingToUndo = errors.New("nothing to undo")

// Run outcomes, used as the "outcome" metric label.
const (
	OutcomeDone               = "done"
	OutcomeCompensated        = "compensated"
	OutcomeCompensationFailed = "compensation_failed"
)

// Compensation results, used as the "result" metric label.
const (
	ResultOK      = "ok"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// Step is one action of a saga with its optional compensating action.
// A nil Compensate means the step needs no undo.
type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Saga is an ordered list of steps. It is not safe for concurrent use and
// should be built per operation.
type Saga struct {
	name    string
	log     *slog.Logger
	metrics *Metrics
	steps   []Step
}

// New creates an empty saga. metrics may be nil.
func New(name string, log *slog.Logger, metrics *Metrics) *Saga {
	return &Saga{
		name:    name,
		log:     log.With("saga", name),
		metrics: metrics,
	}
}

// AddStep appends a step and returns the saga for chaining.
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Run executes the steps in order. On the first failing action it runs the
// compensations of the completed steps in reverse and returns a
// *domain.CompositeWriteError whose Err is the action's error. Compensation
// errors are collected on the returned error and never replace it.
func (s *Saga) Run(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.Action(ctx); err != nil {
			return s.fail(ctx, step.Name, err, s.steps[:i])
		}
	}

	s.metrics.observeRun(s.name, OutcomeDone)
	return nil
}

func (s *Saga) fail(ctx context.Context, stepName string, stepErr error, completed []Step) error {
	s.log.WarnContext(ctx, "saga step failed, compensating",
		slog.String("step", stepName),
		slog.String("error", stepErr.Error()),
		slog.Int("completed_steps", len(completed)),
	)

	// Compensations must run even if the request context is already cancelled.
	compCtx := context.WithoutCancel(ctx)

	var compErrs []error
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}

		err := step.Compensate(compCtx)
		switch {
		case err == nil:
			s.metrics.observeCompensation(s.name, step.Name, ResultOK)
			s.log.InfoContext(ctx, "saga step compensated", slog.String("step", step.Name))
		case errors.Is(err, ErrNothingToUndo):
			s.metrics.observeCompensation(s.name, step.Name, ResultSkipped)
		default:
			s.metrics.observeCompensation(s.name, step.Name, ResultFailed)
			s.log.ErrorContext(ctx, "saga compensation failed",
				slog.String("step", step.Name),
				slog.String("error", err.Error()),
			)
			compErrs = append(compErrs, fmt.Errorf("compensate %s: %w", step.Name, err))
		}
	}

	if len(compErrs) > 0 {
		s.metrics.observeRun(s.name, OutcomeCompensationFailed)
	} else {
		s.metrics.observeRun(s.name, OutcomeCompensated)
	}

	return &domain.CompositeWriteError{
		Op:                 s.name,
		Step:               stepName,
		Err:                stepErr,
		CompensationErrors: compErrs,
	}
}
