package domain

// CarStatus is the inventory state of a car.
type CarStatus string

const (
	CarStatusInStock CarStatus = "In stock"
	CarStatusPending CarStatus = "Pending"
	CarStatusSold    CarStatus = "Sold"
)

func (s CarStatus) String() string { return string(s) }

func (s CarStatus) IsValid() bool {
	switch s {
	case CarStatusInStock, CarStatusPending, CarStatusSold:
		return true
	}
	return false
}

// CarCondition distinguishes new and used cars.
type CarCondition string

const (
	CarConditionNew  CarCondition = "New"
	CarConditionUsed CarCondition = "Used"
)

func (c CarCondition) String() string { return string(c) }

func (c CarCondition) IsValid() bool {
	switch c {
	case CarConditionNew, CarConditionUsed:
		return true
	}
	return false
}

// OrderStatus is the lifecycle state of a supplier order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// EntityType identifies the kind of record in the composite write log.
type EntityType string

const (
	EntityTypeMake  EntityType = "MAKE"
	EntityTypeCar   EntityType = "CAR"
	EntityTypeOrder EntityType = "ORDER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeMake, EntityTypeCar, EntityTypeOrder:
		return true
	}
	return false
}

// AuditAction is the outcome recorded for a compensating action.
type AuditAction string

const (
	AuditActionCompensated        AuditAction = "COMPENSATED"
	AuditActionCompensationFailed AuditAction = "COMPENSATION_FAILED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCompensated, AuditActionCompensationFailed:
		return true
	}
	return false
}
