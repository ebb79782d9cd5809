package services

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// ConflictDetector reports scheduling overlaps between a candidate time range
// and a staffer's active commitments.
type ConflictDetector interface {
	DetectConflicts(ctx context.Context, staffID string, start, end time.Time, excludeShiftID string) ([]domain.ShiftConflict, error)
}

// StaffMatcher scores and ranks eligible staff for a role on an event.
type StaffMatcher interface {
	// FindBestStaffMatches returns at most count candidates, highest score
	// first. Staff already holding a non-rejected assignment on the event are
	// never returned.
	FindBestStaffMatches(ctx context.Context, eventID, role string, count int) ([]domain.StaffMatch, error)
}

// AssignmentOrchestrator fills an event's role shortfalls with the best
// available candidates.
type AssignmentOrchestrator interface {
	AutoAssignStaffToEvent(ctx context.Context, eventID string, opts domain.AutoAssignOptions) (*domain.AutoAssignResult, error)
}

// ShiftMaterializer derives work shifts from an event's approved assignments.
type ShiftMaterializer interface {
	// AutoCreateShiftsForEvent creates one shift per staffer. When staffIDs is
	// nil the staffer set is derived from the event's approved assignments.
	AutoCreateShiftsForEvent(ctx context.Context, eventID string, staffIDs []string) (*domain.ShiftCreationResult, error)
}

// RecommendationReporter produces a read-only staffing/scheduling/budget
// report for an event. It never mutates state.
type RecommendationReporter interface {
	GetEventRecommendations(ctx context.Context, eventID string) (*domain.EventRecommendations, error)
}
