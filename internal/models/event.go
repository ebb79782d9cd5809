package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event represents an event row. RequiredRoles and Budget are stored as
// JSONB documents; the ordered array form keeps role iteration deterministic.
type Event struct {
	EventID       string    `db:"event_id"`
	Title         string    `db:"title"`
	StartAt       time.Time `db:"start_at"`
	EndAt         time.Time `db:"end_at"`
	Location      string    `db:"location"`
	RequiredRoles []byte    `db:"required_roles"` // JSONB
	Budget        []byte    `db:"budget"`         // JSONB, nullable
	StaffAssigned int       `db:"staff_assigned"`
	Version       int64     `db:"version"`
	AuditFields
}

// RequiredRoleDoc is one element of the required_roles JSONB array.
type RequiredRoleDoc struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// BudgetDoc is the budget JSONB document.
type BudgetDoc struct {
	Total       decimal.Decimal       `json:"total"`
	Allocations []BudgetAllocationDoc `json:"allocations"`
}

// BudgetAllocationDoc is one category allocation inside BudgetDoc.
type BudgetAllocationDoc struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// EventAssignment represents one row of the event_assignments table. The
// table carries a unique constraint on (event_id, staff_id).
type EventAssignment struct {
	AssignmentID string           `db:"assignment_id"`
	EventID      string           `db:"event_id"`
	StaffID      string           `db:"staff_id"`
	Role         string           `db:"role"`
	Status       string           `db:"status"`
	AssignedAt   time.Time        `db:"assigned_at"`
	PaymentType  *string          `db:"payment_type"` // Nullable payment block
	PaymentRate  *decimal.Decimal `db:"payment_rate"`
	TotalPayment *decimal.Decimal `db:"total_payment"`
}
