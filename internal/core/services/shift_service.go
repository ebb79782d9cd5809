package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portsrepo "github.com/staffhub/staffhub-backend/internal/core/ports/repositories"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
	"github.com/staffhub/staffhub-backend/internal/middleware"
)

// defaultShiftRole is used when a staffer has no matching assignment on the
// event. Call sites derive staffers from assignments, so this should not
// occur in practice.
const defaultShiftRole = "General Staff"

// ShiftService materializes work shifts from an event's approved assignments.
type ShiftService struct {
	EventRepository portsrepo.EventReader
	ShiftRepository portsrepo.ShiftRepository
	StaffRepository portsrepo.StaffReader
	Notifier        portssvc.NotificationPort

	now func() time.Time
}

func NewShiftService(eventRepo portsrepo.EventReader, shiftRepo portsrepo.ShiftRepository, staffRepo portsrepo.StaffReader, notifier portssvc.NotificationPort) *ShiftService {
	return &ShiftService{
		EventRepository: eventRepo,
		ShiftRepository: shiftRepo,
		StaffRepository: staffRepo,
		Notifier:        notifier,
		now:             time.Now,
	}
}

// AutoCreateShiftsForEvent creates one shift per staffer spanning the event's
// full time range. Staffers who already have a shift for the event are
// skipped, so the operation is idempotent; the store additionally enforces
// (event, staff) uniqueness, turning races into absorbed duplicates.
func (s *ShiftService) AutoCreateShiftsForEvent(ctx context.Context, eventID string, staffIDs []string) (*domain.ShiftCreationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("event_id", eventID))

	event, err := s.EventRepository.FindEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load event for shift creation", slog.String("error", err.Error()))
		}
		return nil, err
	}

	if staffIDs == nil {
		staffIDs = approvedStaffIDs(event)
	}

	created := make([]domain.Shift, 0, len(staffIDs))
	for _, staffID := range staffIDs {
		shift, err := s.createShiftForStaff(ctx, logger, event, staffID)
		if err != nil {
			return nil, err
		}
		if shift != nil {
			created = append(created, *shift)
		}
	}

	logger.Info("Shift materialization completed", slog.Int("created", len(created)))
	return &domain.ShiftCreationResult{Created: len(created), Shifts: created}, nil
}

// createShiftForStaff returns nil without error when the staffer already has
// a shift for the event.
func (s *ShiftService) createShiftForStaff(ctx context.Context, logger *slog.Logger, event *domain.Event, staffID string) (*domain.Shift, error) {
	exists, err := s.ShiftRepository.ShiftExists(ctx, event.EventID, staffID)
	if err != nil {
		logger.Error("Failed to check for existing shift", slog.String("staff_id", staffID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check existing shift for staff %s: %w", staffID, err)
	}
	if exists {
		logger.Debug("Shift already exists, skipping", slog.String("staff_id", staffID))
		return nil, nil
	}

	role := defaultShiftRole
	wage := decimal.Zero
	if assignment := event.AssignmentForStaff(staffID); assignment != nil {
		role = assignment.Role
		if assignment.Payment != nil {
			wage = assignment.Payment.TotalPayment
		}
	}

	now := s.now()
	shift := domain.Shift{
		ShiftID:    uuid.NewString(),
		EventID:    event.EventID,
		EventTitle: event.Title,
		StaffID:    staffID,
		Role:       role,
		StartTime:  event.StartAt,
		EndTime:    event.EndAt,
		Status:     domain.ShiftScheduled,
		Wage:       wage,
		Date:       event.StartAt.Format("2006-01-02"),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.ShiftRepository.SaveShift(ctx, shift); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the check-then-act race to a concurrent creator; the
			// shift exists, which is all this operation guarantees.
			logger.Warn("Shift already created concurrently, skipping", slog.String("staff_id", staffID))
			return nil, nil
		}
		logger.Error("Failed to save shift", slog.String("staff_id", staffID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save shift for staff %s: %w", staffID, err)
	}

	s.notifyShift(ctx, logger, *event, shift)
	return &shift, nil
}

func (s *ShiftService) notifyShift(ctx context.Context, logger *slog.Logger, event domain.Event, shift domain.Shift) {
	staff, err := s.StaffRepository.FindStaffByID(ctx, shift.StaffID)
	if err != nil {
		logger.Warn("Could not load staff profile for shift notification", slog.String("staff_id", shift.StaffID), slog.String("error", err.Error()))
		return
	}
	if err := s.Notifier.NotifyShiftAssignment(ctx, *staff, shift, event); err != nil {
		// Fire-and-forget: transport failures never affect the created count.
		logger.Warn("Shift notification failed", slog.String("staff_id", shift.StaffID), slog.String("error", err.Error()))
	}
}

func approvedStaffIDs(event *domain.Event) []string {
	ids := make([]string, 0, len(event.Assignments))
	seen := make(map[string]struct{}, len(event.Assignments))
	for _, a := range event.Assignments {
		if a.Status != domain.AssignmentApproved {
			continue
		}
		if _, ok := seen[a.StaffID]; ok {
			continue
		}
		seen[a.StaffID] = struct{}{}
		ids = append(ids, a.StaffID)
	}
	return ids
}
