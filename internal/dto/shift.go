package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// CreateShiftsRequest defines the body for shift materialization. A nil
// StaffIDs derives the staffer set from the event's approved assignments.
type CreateShiftsRequest struct {
	StaffIDs []string `json:"staffIDs"`
}

// ShiftResponse mirrors domain.Shift.
type ShiftResponse struct {
	ShiftID   string             `json:"shiftID"`
	EventID   string             `json:"eventID"`
	StaffID   string             `json:"staffID"`
	Role      string             `json:"role"`
	StartTime time.Time          `json:"startTime"`
	EndTime   time.Time          `json:"endTime"`
	Status    domain.ShiftStatus `json:"status"`
	Wage      decimal.Decimal    `json:"wage"`
	Date      string             `json:"date"`
}

// CreateShiftsResponse is the outcome of a materialization run.
type CreateShiftsResponse struct {
	Created int             `json:"created"`
	Shifts  []ShiftResponse `json:"shifts"`
}

// ToCreateShiftsResponse converts a domain.ShiftCreationResult to its DTO.
func ToCreateShiftsResponse(r *domain.ShiftCreationResult) CreateShiftsResponse {
	res := CreateShiftsResponse{Created: r.Created, Shifts: make([]ShiftResponse, len(r.Shifts))}
	for i, s := range r.Shifts {
		res.Shifts[i] = ShiftResponse{
			ShiftID:   s.ShiftID,
			EventID:   s.EventID,
			StaffID:   s.StaffID,
			Role:      s.Role,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Status:    s.Status,
			Wage:      s.Wage,
			Date:      s.Date,
		}
	}
	return res
}
