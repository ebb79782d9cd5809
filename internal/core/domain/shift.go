package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus is the lifecycle state of a work shift. Scheduled and Live
// shifts count as active commitments for conflict detection.
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "SCHEDULED"
	ShiftLive      ShiftStatus = "LIVE"
	ShiftCompleted ShiftStatus = "COMPLETED"
	ShiftCancelled ShiftStatus = "CANCELLED"
)

// ActiveShiftStatuses are the statuses that make a shift count as an active
// commitment.
var ActiveShiftStatuses = []ShiftStatus{ShiftScheduled, ShiftLive}

// Shift is a concrete, time-bounded work commitment derived from an approved
// assignment. At most one shift exists per (event, staff) pair.
type Shift struct {
	ShiftID    string          `json:"shiftID"` // Primary key (UUID)
	EventID    string          `json:"eventID"`
	EventTitle string          `json:"eventTitle"` // Denormalized for conflict reporting
	StaffID    string          `json:"staffID"`
	Role       string          `json:"role"`
	StartTime  time.Time       `json:"startTime"`
	EndTime    time.Time       `json:"endTime"`
	Status     ShiftStatus     `json:"status"`
	Wage       decimal.Decimal `json:"wage"`
	Date       string          `json:"date"` // Calendar date (YYYY-MM-DD) of StartTime
	AuditFields
}
