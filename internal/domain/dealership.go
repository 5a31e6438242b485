package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Make is a car manufacturer. Name is unique case-insensitively.
type Make struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Car is a vehicle in the dealership inventory.
type Car struct {
	ID          uuid.UUID
	MakeID      uuid.UUID
	Model       string
	Year        int
	Price       decimal.Decimal
	Color       *string
	VIN         string
	SupplierID  *uuid.UUID
	Status      CarStatus
	Condition   *CarCondition
	Mileage     *int
	BodyType    *string
	Description *string
	CreatedAt   time.Time
}

// Supplier delivers cars to the dealership.
type Supplier struct {
	ID          uuid.UUID
	CompanyName string
	ContactName *string
	Phone       *string
	Email       *string
	CreatedAt   time.Time
}

// Order is a purchase of cars from a supplier.
type Order struct {
	ID         uuid.UUID
	SupplierID uuid.UUID
	CarID      uuid.UUID
	Quantity   int
	OrderDate  time.Time
	Status     OrderStatus
	CreatedAt  time.Time
}
