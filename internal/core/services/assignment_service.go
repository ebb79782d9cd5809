package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portsrepo "github.com/staffhub/staffhub-backend/internal/core/ports/repositories"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
	"github.com/staffhub/staffhub-backend/internal/middleware"
)

// AssignmentService fills an event's role shortfalls by committing the
// matcher's top candidates as approved assignments.
type AssignmentService struct {
	EventRepository portsrepo.EventRepository
	StaffRepository portsrepo.StaffReader
	Matcher         portssvc.StaffMatcher
	Materializer    portssvc.ShiftMaterializer
	Notifier        portssvc.NotificationPort

	// Per-event serialization of orchestration runs within this process.
	// Cross-process writers are caught by the version check at save time.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	now func() time.Time
}

func NewAssignmentService(eventRepo portsrepo.EventRepository, staffRepo portsrepo.StaffReader, matcher portssvc.StaffMatcher, materializer portssvc.ShiftMaterializer, notifier portssvc.NotificationPort) *AssignmentService {
	return &AssignmentService{
		EventRepository: eventRepo,
		StaffRepository: staffRepo,
		Matcher:         matcher,
		Materializer:    materializer,
		Notifier:        notifier,
		locks:           make(map[string]*sync.Mutex),
		now:             time.Now,
	}
}

func (s *AssignmentService) eventLock(eventID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[eventID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[eventID] = mu
	}
	return mu
}

// AutoAssignStaffToEvent resolves the shortfall for every required role,
// commits the best candidates as approved assignments and re-establishes the
// staffAssigned counter. Per-candidate failures (duplicates from races) are
// absorbed so one collision cannot abort the whole batch; the run is
// idempotent with respect to headcount and safe to retry.
func (s *AssignmentService) AutoAssignStaffToEvent(ctx context.Context, eventID string, opts domain.AutoAssignOptions) (*domain.AutoAssignResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("event_id", eventID))

	mu := s.eventLock(eventID)
	mu.Lock()
	defer mu.Unlock()

	event, err := s.EventRepository.FindEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load event for auto-assignment", slog.String("error", err.Error()))
		}
		return nil, err
	}
	if len(event.RequiredRoles) == 0 {
		return nil, fmt.Errorf("%w: event %s has no required roles", apperrors.ErrValidation, eventID)
	}

	newAssignments := make([]domain.Assignment, 0)
	for _, requirement := range event.RequiredRoles {
		made, err := s.fillRole(ctx, logger, event, requirement, opts)
		if err != nil {
			return nil, err
		}
		newAssignments = append(newAssignments, made...)
	}

	event.StaffAssigned = event.ApprovedAssignmentCount()
	if err := s.EventRepository.UpdateStaffingCounters(ctx, event.EventID, event.StaffAssigned, event.Version); err != nil {
		logger.Error("Failed to persist staffing counters", slog.String("error", err.Error()))
		return nil, err
	}
	event.Version++

	if opts.AutoCreateShifts && len(newAssignments) > 0 {
		staffIDs := make([]string, 0, len(newAssignments))
		for _, a := range newAssignments {
			staffIDs = append(staffIDs, a.StaffID)
		}
		if _, err := s.Materializer.AutoCreateShiftsForEvent(ctx, eventID, staffIDs); err != nil {
			// Shifts can be re-derived on retry; the assignments stand.
			logger.Warn("Shift materialization after auto-assignment failed", slog.String("error", err.Error()))
		}
	}

	if opts.NotifyStaff {
		s.notifyAssignments(ctx, logger, *event, newAssignments)
	}

	logger.Info("Auto-assignment completed",
		slog.Int("assigned", len(newAssignments)),
		slog.Int("staff_assigned", event.StaffAssigned),
	)
	return &domain.AutoAssignResult{
		Assigned:    len(newAssignments),
		Assignments: newAssignments,
		Event:       event,
	}, nil
}

// fillRole commits candidates for a single role requirement, stopping once
// the shortfall is covered. Appends committed assignments onto the event.
func (s *AssignmentService) fillRole(ctx context.Context, logger *slog.Logger, event *domain.Event, requirement domain.RoleRequirement, opts domain.AutoAssignOptions) ([]domain.Assignment, error) {
	alreadyAssigned := event.ApprovedCountForRole(requirement.Role)
	needed := requirement.Count - alreadyAssigned
	if needed <= 0 {
		return nil, nil
	}

	requested := needed
	if opts.MaxAssignmentsPerRole > 0 && opts.MaxAssignmentsPerRole < requested {
		requested = opts.MaxAssignmentsPerRole
	}

	matches, err := s.Matcher.FindBestStaffMatches(ctx, event.EventID, requirement.Role, requested)
	if err != nil {
		logger.Error("Candidate matching failed", slog.String("role", requirement.Role), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find candidates for role %s: %w", requirement.Role, err)
	}

	committed := make([]domain.Assignment, 0, len(matches))
	for _, match := range matches {
		if len(committed) >= needed {
			break
		}
		assignment := domain.Assignment{
			AssignmentID: uuid.NewString(),
			EventID:      event.EventID,
			StaffID:      match.Staff.StaffID,
			Role:         requirement.Role,
			Status:       domain.AssignmentApproved,
			AssignedAt:   s.now(),
		}
		if err := s.EventRepository.AddAssignment(ctx, assignment); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				logger.Warn("Skipping candidate already assigned to event",
					slog.String("staff_id", match.Staff.StaffID),
					slog.String("role", requirement.Role),
				)
				continue
			}
			// Best-effort per candidate: a single failed commit must not
			// abort the rest of the batch.
			logger.Error("Failed to commit assignment, skipping candidate",
				slog.String("staff_id", match.Staff.StaffID),
				slog.String("error", err.Error()),
			)
			continue
		}
		event.Assignments = append(event.Assignments, assignment)
		committed = append(committed, assignment)
	}

	logger.Debug("Role shortfall processed",
		slog.String("role", requirement.Role),
		slog.Int("needed", needed),
		slog.Int("committed", len(committed)),
	)
	return committed, nil
}

func (s *AssignmentService) notifyAssignments(ctx context.Context, logger *slog.Logger, event domain.Event, assignments []domain.Assignment) {
	for _, assignment := range assignments {
		staff, err := s.StaffRepository.FindStaffByID(ctx, assignment.StaffID)
		if err != nil {
			logger.Warn("Could not load staff profile for notification", slog.String("staff_id", assignment.StaffID), slog.String("error", err.Error()))
			continue
		}
		if err := s.Notifier.NotifyEventAssignment(ctx, *staff, event, assignment.Role); err != nil {
			// Notification transport failures never affect the assignment.
			logger.Warn("Assignment notification failed", slog.String("staff_id", assignment.StaffID), slog.String("error", err.Error()))
		}
	}
}
