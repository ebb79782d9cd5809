package repositories

import (
	"context"

	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// EventReader defines read operations for event data.
type EventReader interface {
	// FindEventByID retrieves an event with its embedded assignments.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
}

// EventWriter defines write operations for event data.
type EventWriter interface {
	// AddAssignment persists a new assignment. Returns apperrors.ErrDuplicate
	// when the (event, staff) pair already holds an assignment.
	AddAssignment(ctx context.Context, assignment domain.Assignment) error

	// UpdateStaffingCounters persists the recomputed staffAssigned count with
	// an optimistic version check. Returns apperrors.ErrConflict when the
	// stored version no longer matches expectedVersion.
	UpdateStaffingCounters(ctx context.Context, eventID string, staffAssigned int, expectedVersion int64) error
}

// EventRepository combines all event-related repository operations.
type EventRepository interface {
	EventReader
	EventWriter
}
