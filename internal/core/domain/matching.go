package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factor weights for candidate scoring. Each factor is computed independently
// and summed onto a 100-point scale.
const (
	MaxAvailabilityScore  = 30.0
	MaxLocationScore      = 20.0
	MaxPerformanceScore   = 25.0
	MaxExperienceScore    = 15.0
	MaxSkillScore         = 5.0
	MaxCertificationScore = 5.0

	// AvailabilityConflictPenalty is deducted per conflicting active shift,
	// regardless of how large the overlap is.
	AvailabilityConflictPenalty = 10.0
)

// ScoreFactors breaks a candidate's score down by factor.
type ScoreFactors struct {
	Availability   float64 `json:"availability"`
	Location       float64 `json:"location"`
	Performance    float64 `json:"performance"`
	Experience     float64 `json:"experience"`
	Skills         float64 `json:"skills"`
	Certifications float64 `json:"certifications"`
}

// Total sums all factors.
func (f ScoreFactors) Total() float64 {
	return f.Availability + f.Location + f.Performance + f.Experience + f.Skills + f.Certifications
}

// StaffMatch is one ranked candidate for a role on an event.
type StaffMatch struct {
	Staff           StaffProfile `json:"staff"`
	Score           float64      `json:"score"`
	Factors         ScoreFactors `json:"factors"`
	MatchPercentage float64      `json:"matchPercentage"` // Equal to Score on the 100-point scale
}

// ShiftConflict describes an active shift overlapping a candidate interval.
// OverlapPct is relative to the candidate interval's duration, not the
// existing shift's.
type ShiftConflict struct {
	ShiftID       string    `json:"shiftID"`
	EventTitle    string    `json:"eventTitle"`
	ConflictStart time.Time `json:"conflictStart"`
	ConflictEnd   time.Time `json:"conflictEnd"`
	OverlapPct    int       `json:"overlapPct"`
}

// AutoAssignOptions tunes a single orchestration run.
type AutoAssignOptions struct {
	AutoCreateShifts      bool
	NotifyStaff           bool
	MaxAssignmentsPerRole int // 0 means no cap beyond the role's shortfall
}

// AutoAssignResult is the outcome of one orchestration run.
type AutoAssignResult struct {
	Assigned    int          `json:"assigned"`
	Assignments []Assignment `json:"assignments"`
	Event       *Event       `json:"event"`
}

// ShiftCreationResult is the outcome of one materialization run.
type ShiftCreationResult struct {
	Created int     `json:"created"`
	Shifts  []Shift `json:"shifts"`
}

// StaffingGap is a role with unmet headcount, with up to five suggested
// candidates.
type StaffingGap struct {
	Role        string       `json:"role"`
	Required    int          `json:"required"`
	Assigned    int          `json:"assigned"`
	Shortfall   int          `json:"shortfall"`
	Suggestions []StaffMatch `json:"suggestions"`
}

// SchedulingHint flags partial staffing ahead of an event.
type SchedulingHint struct {
	Message       string    `json:"message"`
	StaffAssigned int       `json:"staffAssigned"`
	StaffRequired int       `json:"staffRequired"`
	EventStart    time.Time `json:"eventStart"`
}

// BudgetSnapshot summarizes an event budget against its allocations.
type BudgetSnapshot struct {
	Total         decimal.Decimal `json:"total"`
	Allocated     decimal.Decimal `json:"allocated"`
	OverAllocated bool            `json:"overAllocated"`
}

// WarningBudgetOverallocation is emitted when allocations exceed the total.
const WarningBudgetOverallocation = "budget_overallocation"

// RecommendationWarning is a typed advisory surfaced by the reporter.
type RecommendationWarning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// EventRecommendations is the reporter's read-only payload.
type EventRecommendations struct {
	Staffing   []StaffingGap           `json:"staffing"`
	Scheduling []SchedulingHint        `json:"scheduling"`
	Budget     *BudgetSnapshot         `json:"budget,omitempty"`
	Warnings   []RecommendationWarning `json:"warnings"`
}
