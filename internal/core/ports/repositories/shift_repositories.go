package repositories

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// ShiftReader defines read operations for shift data.
type ShiftReader interface {
	// ListActiveShiftsForStaff retrieves the staffer's Scheduled and Live
	// shifts whose interval intersects [start, end). excludeShiftID, when
	// non-empty, removes that shift from consideration (used when re-checking
	// a shift being edited).
	ListActiveShiftsForStaff(ctx context.Context, staffID string, start, end time.Time, excludeShiftID string) ([]domain.Shift, error)

	// ShiftExists reports whether a shift already exists for the
	// (event, staff) pair.
	ShiftExists(ctx context.Context, eventID, staffID string) (bool, error)
}

// ShiftWriter defines write operations for shift data.
type ShiftWriter interface {
	// SaveShift persists a new shift. Returns apperrors.ErrDuplicate when a
	// shift for the (event, staff) pair already exists; the store enforces
	// that uniqueness, the caller's existence check is only an optimization.
	SaveShift(ctx context.Context, shift domain.Shift) error
}

// ShiftRepository combines all shift-related repository operations.
type ShiftRepository interface {
	ShiftReader
	ShiftWriter
}
