package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssignmentStatus is the approval state of a staff assignment on an event.
type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "PENDING"
	AssignmentApproved AssignmentStatus = "APPROVED"
	AssignmentRejected AssignmentStatus = "REJECTED"
)

// PaymentType describes how an assignment's pay is computed.
type PaymentType string

const (
	PaymentHourly PaymentType = "HOURLY"
	PaymentFixed  PaymentType = "FIXED"
	PaymentDaily  PaymentType = "DAILY"
)

// Payment holds the agreed pay terms for a single assignment.
type Payment struct {
	Type         PaymentType     `json:"type"`
	Rate         decimal.Decimal `json:"rate"`
	TotalPayment decimal.Decimal `json:"totalPayment"`
}

// Assignment is a staffer's claim on a role within an event. Created only by
// the assignment orchestrator; status is mutated by the external approval
// workflow. At most one assignment may exist per (event, staff) pair.
type Assignment struct {
	AssignmentID string           `json:"assignmentID"` // Primary key (UUID)
	EventID      string           `json:"eventID"`
	StaffID      string           `json:"staffID"` // Reference, not owning
	Role         string           `json:"role"`
	Status       AssignmentStatus `json:"status"`
	AssignedAt   time.Time        `json:"assignedAt"`
	Payment      *Payment         `json:"payment,omitempty"`
}

// RoleRequirement is one entry of an event's required headcount. Kept as an
// ordered slice rather than a map so iteration order is deterministic.
type RoleRequirement struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// BudgetAllocation is a per-category slice of an event budget.
type BudgetAllocation struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Budget is an event's total budget plus category allocations. The sum of
// allocations may legally exceed the total; the recommendation reporter
// flags that case.
type Budget struct {
	Total       decimal.Decimal    `json:"total"`
	Allocations []BudgetAllocation `json:"allocations"`
}

// Allocated returns the sum of all category allocations.
func (b Budget) Allocated() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range b.Allocations {
		sum = sum.Add(a.Amount)
	}
	return sum
}

// Event is a bookable engagement with role requirements and embedded
// assignments. StaffAssigned caches the approved-assignment count and must be
// re-established by every mutating operation. Version backs the optimistic
// concurrency check at save time.
type Event struct {
	EventID       string            `json:"eventID"` // Primary key (UUID)
	Title         string            `json:"title"`
	StartAt       time.Time         `json:"startAt"`
	EndAt         time.Time         `json:"endAt"` // Invariant: StartAt < EndAt
	Location      string            `json:"location"`
	RequiredRoles []RoleRequirement `json:"requiredRoles"`
	Assignments   []Assignment      `json:"assignments"`
	StaffAssigned int               `json:"staffAssigned"`
	Budget        *Budget           `json:"budget,omitempty"`
	Version       int64             `json:"version"`
	AuditFields
}

// ApprovedAssignmentCount returns the number of approved assignments.
func (e *Event) ApprovedAssignmentCount() int {
	n := 0
	for _, a := range e.Assignments {
		if a.Status == AssignmentApproved {
			n++
		}
	}
	return n
}

// ApprovedCountForRole returns the number of approved assignments for role.
func (e *Event) ApprovedCountForRole(role string) int {
	n := 0
	for _, a := range e.Assignments {
		if a.Status == AssignmentApproved && a.Role == role {
			n++
		}
	}
	return n
}

// HasActiveAssignment reports whether staffID already holds a non-rejected
// assignment on this event, for any role.
func (e *Event) HasActiveAssignment(staffID string) bool {
	for _, a := range e.Assignments {
		if a.StaffID == staffID && a.Status != AssignmentRejected {
			return true
		}
	}
	return false
}

// TotalRequiredStaff returns the sum of required headcounts across roles.
func (e *Event) TotalRequiredStaff() int {
	n := 0
	for _, r := range e.RequiredRoles {
		n += r.Count
	}
	return n
}

// AssignmentForStaff returns the assignment held by staffID, if any.
func (e *Event) AssignmentForStaff(staffID string) *Assignment {
	for i := range e.Assignments {
		if e.Assignments[i].StaffID == staffID {
			return &e.Assignments[i]
		}
	}
	return nil
}
