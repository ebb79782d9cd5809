package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// AutoAssignRequest tunes a single auto-assignment run.
type AutoAssignRequest struct {
	AutoCreateShifts      bool `json:"autoCreateShifts"`
	NotifyStaff           bool `json:"notifyStaff"`
	MaxAssignmentsPerRole int  `json:"maxAssignmentsPerRole" binding:"omitempty,min=1"`
}

// PaymentResponse mirrors domain.Payment.
type PaymentResponse struct {
	Type         domain.PaymentType `json:"type"`
	Rate         decimal.Decimal    `json:"rate"`
	TotalPayment decimal.Decimal    `json:"totalPayment"`
}

// AssignmentResponse mirrors domain.Assignment.
type AssignmentResponse struct {
	AssignmentID string                  `json:"assignmentID"`
	EventID      string                  `json:"eventID"`
	StaffID      string                  `json:"staffID"`
	Role         string                  `json:"role"`
	Status       domain.AssignmentStatus `json:"status"`
	AssignedAt   time.Time               `json:"assignedAt"`
	Payment      *PaymentResponse        `json:"payment,omitempty"`
}

// EventSummary is the event slice returned from mutating operations.
type EventSummary struct {
	EventID       string                   `json:"eventID"`
	Title         string                   `json:"title"`
	StartAt       time.Time                `json:"startAt"`
	EndAt         time.Time                `json:"endAt"`
	Location      string                   `json:"location"`
	RequiredRoles []domain.RoleRequirement `json:"requiredRoles"`
	StaffAssigned int                      `json:"staffAssigned"`
}

// AutoAssignResponse is the outcome of an auto-assignment run.
type AutoAssignResponse struct {
	Assigned    int                  `json:"assigned"`
	Assignments []AssignmentResponse `json:"assignments"`
	Event       EventSummary         `json:"event"`
}

// ToAssignmentResponse converts a domain.Assignment to its DTO.
func ToAssignmentResponse(a domain.Assignment) AssignmentResponse {
	res := AssignmentResponse{
		AssignmentID: a.AssignmentID,
		EventID:      a.EventID,
		StaffID:      a.StaffID,
		Role:         a.Role,
		Status:       a.Status,
		AssignedAt:   a.AssignedAt,
	}
	if a.Payment != nil {
		res.Payment = &PaymentResponse{
			Type:         a.Payment.Type,
			Rate:         a.Payment.Rate,
			TotalPayment: a.Payment.TotalPayment,
		}
	}
	return res
}

// ToAutoAssignResponse converts a domain.AutoAssignResult to its DTO.
func ToAutoAssignResponse(r *domain.AutoAssignResult) AutoAssignResponse {
	res := AutoAssignResponse{
		Assigned:    r.Assigned,
		Assignments: make([]AssignmentResponse, len(r.Assignments)),
		Event: EventSummary{
			EventID:       r.Event.EventID,
			Title:         r.Event.Title,
			StartAt:       r.Event.StartAt,
			EndAt:         r.Event.EndAt,
			Location:      r.Event.Location,
			RequiredRoles: r.Event.RequiredRoles,
			StaffAssigned: r.Event.StaffAssigned,
		},
	}
	for i, a := range r.Assignments {
		res.Assignments[i] = ToAssignmentResponse(a)
	}
	return res
}
