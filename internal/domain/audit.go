package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an entry of the composite write log. It records what a saga
// compensation did to a persisted entity.
type AuditRecord struct {
	ID         uuid.UUID
	Operation  string
	Step       string
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
