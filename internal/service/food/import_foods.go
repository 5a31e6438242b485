package food

import (
	"context"
	"fmt"
	"log/slog"
)

// ImportResult summarizes an ImportGlobalFoods run.
type ImportResult struct {
	Created int
	Skipped int
	Errors  []ImportError
}

// ImportError describes an input that could not be imported.
type ImportError struct {
	Index int
	Name  string
	Err   error
}

// ImportGlobalFoods creates global foods, one transaction per food. Invalid
// inputs are skipped and reported; a store failure aborts the import.
func (s *Service) ImportGlobalFoods(ctx context.Context, inputs []CreateFoodInput) (*ImportResult, error) {
	result := &ImportResult{}

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := input.Validate(); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Index: i, Name: input.Name, Err: err})
			continue
		}

		if _, err := s.create(ctx, nil, input); err != nil {
			return result, fmt.Errorf("import food %d (%s): %w", i, input.Name, err)
		}
		result.Created++
	}

	s.log.InfoContext(ctx, "global foods imported",
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}
