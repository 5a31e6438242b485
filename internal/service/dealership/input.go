package dealership

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/carnutri-backend/internal/domain"
)

// CarInput holds the car fields shared by every car-creating operation.
// The make is given separately, by name.
type CarInput struct {
	Model       string
	Year        int
	Price       decimal.Decimal
	Color       *string
	VIN         string
	Status      *domain.CarStatus // nil = operation default
	Condition   *domain.CarCondition
	Mileage     *int
	BodyType    *string
	Description *string
}

func (i CarInput) validate(minYear, maxYear int) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Model) == "" {
		errs = append(errs, domain.FieldError{Field: "model", Message: "required"})
	}
	if i.Year < minYear || i.Year > maxYear {
		errs = append(errs, domain.FieldError{Field: "year", Message: fmt.Sprintf("must be between %d and %d", minYear, maxYear)})
	}
	if i.Price.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}

	vin := strings.TrimSpace(i.VIN)
	if vin == "" {
		errs = append(errs, domain.FieldError{Field: "vin", Message: "required"})
	}
	if len(vin) > maxVINLen {
		errs = append(errs, domain.FieldError{Field: "vin", Message: fmt.Sprintf("max %d characters", maxVINLen)})
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Condition != nil && !i.Condition.IsValid() {
		errs = append(errs, domain.FieldError{Field: "condition", Message: "must be New or Used"})
	}
	if i.Mileage != nil && *i.Mileage < 0 {
		errs = append(errs, domain.FieldError{Field: "mileage", Message: "must not be negative"})
	}

	return errs
}

// toDomain builds the car to insert. defaultStatus applies when Status is nil.
func (i CarInput) toDomain(makeID uuid.UUID, supplierID *uuid.UUID, defaultStatus domain.CarStatus) domain.Car {
	status := defaultStatus
	if i.Status != nil {
		status = *i.Status
	}
	return domain.Car{
		MakeID:      makeID,
		Model:       strings.TrimSpace(i.Model),
		Year:        i.Year,
		Price:       i.Price,
		Color:       trimOrNil(i.Color),
		VIN:         strings.ToUpper(strings.TrimSpace(i.VIN)),
		SupplierID:  supplierID,
		Status:      status,
		Condition:   i.Condition,
		Mileage:     i.Mileage,
		BodyType:    trimOrNil(i.BodyType),
		Description: trimOrNil(i.Description),
	}
}

func validateMakeName(name string) []domain.FieldError {
	name = domain.CleanName(name)
	if name == "" {
		return []domain.FieldError{{Field: "make_name", Message: "required"}}
	}
	if len(name) > maxMakeNameLen {
		return []domain.FieldError{{Field: "make_name", Message: fmt.Sprintf("max %d characters", maxMakeNameLen)}}
	}
	return nil
}

// CreateCarWithMakeInput holds the parameters for creating a car whose make is
// looked up by name and created when missing.
type CreateCarWithMakeInput struct {
	MakeName string
	Car      CarInput
}

// Validate checks all fields and collects all errors.
func (i CreateCarWithMakeInput) Validate(minYear, maxYear int) error {
	errs := validateMakeName(i.MakeName)
	errs = append(errs, i.Car.validate(minYear, maxYear)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// OrderInput holds the order fields of CreateOrderWithCar. The supplier is
// resolved by company name and is never created implicitly.
type OrderInput struct {
	SupplierCompanyName string
	Quantity            int
	OrderDate           *time.Time          // nil = now
	Status              *domain.OrderStatus // nil = Pending
}

func (i OrderInput) validate() []domain.FieldError {
	var errs []domain.FieldError
	if domain.CleanName(i.SupplierCompanyName) == "" {
		errs = append(errs, domain.FieldError{Field: "supplier_company_name", Message: "required"})
	}
	errs = append(errs, validateOrderFields(i.Quantity, i.Status)...)
	return errs
}

func validateOrderFields(quantity int, status *domain.OrderStatus) []domain.FieldError {
	var errs []domain.FieldError
	if quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if status != nil && !status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order_status", Message: "must be Pending, Completed or Cancelled"})
	}
	return errs
}

// CreateOrderWithCarInput holds the parameters for creating a car (and its
// make, when missing) together with a supplier order for it.
type CreateOrderWithCarInput struct {
	MakeName string
	Car      CarInput
	Order    OrderInput
}

// Validate checks all fields and collects all errors.
func (i CreateOrderWithCarInput) Validate(minYear, maxYear int) error {
	errs := validateMakeName(i.MakeName)
	errs = append(errs, i.Car.validate(minYear, maxYear)...)
	errs = append(errs, i.Order.validate()...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateOrderInput holds the parameters for ordering an existing car.
type CreateOrderInput struct {
	CarID      uuid.UUID
	SupplierID uuid.UUID
	Quantity   int
	OrderDate  *time.Time
	Status     *domain.OrderStatus
}

// Validate checks all fields and collects all errors.
func (i CreateOrderInput) Validate() error {
	var errs []domain.FieldError
	if i.CarID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "car_id", Message: "required"})
	}
	if i.SupplierID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "supplier_id", Message: "required"})
	}
	errs = append(errs, validateOrderFields(i.Quantity, i.Status)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateSupplierInput holds the parameters for registering a supplier.
type CreateSupplierInput struct {
	CompanyName string
	ContactName *string
	Phone       *string
	Email       *string
}

// Validate checks all fields and collects all errors.
func (i CreateSupplierInput) Validate() error {
	var errs []domain.FieldError
	name := domain.CleanName(i.CompanyName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "company_name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "company_name", Message: "max 200 characters"})
	}
	if i.Email != nil && *i.Email != "" && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
