package dealership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// CreateSupplier registers a supplier. Company names are unique
// case-insensitively.
func (s *Service) CreateSupplier(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sup, err := s.suppliers.Create(ctx, domain.Supplier{
		CompanyName: domain.CleanName(input.CompanyName),
		ContactName: trimOrNil(input.ContactName),
		Phone:       trimOrNil(input.Phone),
		Email:       trimOrNil(input.Email),
	})
	if err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}

	s.log.InfoContext(ctx, "supplier created",
		slog.String("supplier_id", sup.ID.String()),
		slog.String("company_name", sup.CompanyName),
	)

	return sup, nil
}
