package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift represents a shift row. The table carries a unique constraint on
// (event_id, staff_id) so the materializer's check-then-act sequence cannot
// produce duplicates.
type Shift struct {
	ShiftID    string          `db:"shift_id"`
	EventID    string          `db:"event_id"`
	EventTitle string          `db:"event_title"`
	StaffID    string          `db:"staff_id"`
	Role       string          `db:"role"`
	StartTime  time.Time       `db:"start_time"`
	EndTime    time.Time       `db:"end_time"`
	Status     string          `db:"status"`
	Wage       decimal.Decimal `db:"wage"`
	Date       string          `db:"date"`
	AuditFields
}
