package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portsrepo "github.com/staffhub/staffhub-backend/internal/core/ports/repositories"
	"github.com/staffhub/staffhub-backend/internal/middleware"
	"github.com/staffhub/staffhub-backend/internal/utils/timeinterval"
)

// ConflictService detects scheduling overlaps between a candidate time range
// and a staffer's active shifts.
type ConflictService struct {
	ShiftRepository portsrepo.ShiftReader
}

func NewConflictService(shiftRepo portsrepo.ShiftReader) *ConflictService {
	return &ConflictService{ShiftRepository: shiftRepo}
}

// DetectConflicts returns the staffer's active shifts overlapping
// [start, end), each with the overlap percentage relative to the candidate
// interval's duration. excludeShiftID removes one shift from consideration.
func (s *ConflictService) DetectConflicts(ctx context.Context, staffID string, start, end time.Time, excludeShiftID string) ([]domain.ShiftConflict, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !end.After(start) {
		return nil, fmt.Errorf("%w: candidate interval must have positive duration", apperrors.ErrValidation)
	}

	shifts, err := s.ShiftRepository.ListActiveShiftsForStaff(ctx, staffID, start, end, excludeShiftID)
	if err != nil {
		logger.Error("Failed to list active shifts for conflict check", slog.String("error", err.Error()), slog.String("staff_id", staffID))
		return nil, fmt.Errorf("failed to list active shifts for staff %s: %w", staffID, err)
	}

	conflicts := make([]domain.ShiftConflict, 0, len(shifts))
	for _, shift := range shifts {
		// The repository already filters on intersection, but a defensive
		// re-check keeps the half-open semantics independent of the store.
		if !timeinterval.Intersects(start, end, shift.StartTime, shift.EndTime) {
			continue
		}
		pct, err := timeinterval.OverlapPercentage(start, end, shift.StartTime, shift.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		conflicts = append(conflicts, domain.ShiftConflict{
			ShiftID:       shift.ShiftID,
			EventTitle:    shift.EventTitle,
			ConflictStart: shift.StartTime,
			ConflictEnd:   shift.EndTime,
			OverlapPct:    pct,
		})
	}

	logger.Debug("Conflict detection completed", slog.String("staff_id", staffID), slog.Int("conflicts", len(conflicts)))
	return conflicts, nil
}
