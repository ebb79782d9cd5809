package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portsrepo "github.com/staffhub/staffhub-backend/internal/core/ports/repositories"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
	"github.com/staffhub/staffhub-backend/internal/middleware"
)

// maxSuggestionsPerRole caps the candidates surfaced per understaffed role.
const maxSuggestionsPerRole = 5

// RecommendationService aggregates staffing gaps, candidate suggestions and
// budget warnings for an event. Strictly read-only: it never commits
// assignments or shifts.
type RecommendationService struct {
	EventRepository portsrepo.EventReader
	Matcher         portssvc.StaffMatcher
}

func NewRecommendationService(eventRepo portsrepo.EventReader, matcher portssvc.StaffMatcher) *RecommendationService {
	return &RecommendationService{EventRepository: eventRepo, Matcher: matcher}
}

// GetEventRecommendations reports shortfalls per required role with suggested
// candidates, a scheduling hint when the event is partially staffed, and a
// budget snapshot with an over-allocation warning when the category
// allocations exceed the total.
func (s *RecommendationService) GetEventRecommendations(ctx context.Context, eventID string) (*domain.EventRecommendations, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("event_id", eventID))

	event, err := s.EventRepository.FindEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load event for recommendations", slog.String("error", err.Error()))
		}
		return nil, err
	}

	recs := &domain.EventRecommendations{
		Staffing:   make([]domain.StaffingGap, 0, len(event.RequiredRoles)),
		Scheduling: []domain.SchedulingHint{},
		Warnings:   []domain.RecommendationWarning{},
	}

	for _, requirement := range event.RequiredRoles {
		assigned := event.ApprovedCountForRole(requirement.Role)
		shortfall := requirement.Count - assigned
		if shortfall <= 0 {
			continue
		}
		suggestions, err := s.Matcher.FindBestStaffMatches(ctx, eventID, requirement.Role, maxSuggestionsPerRole)
		if err != nil {
			// The gap is still worth reporting without suggestions.
			logger.Warn("Could not compute suggestions for role", slog.String("role", requirement.Role), slog.String("error", err.Error()))
			suggestions = []domain.StaffMatch{}
		}
		recs.Staffing = append(recs.Staffing, domain.StaffingGap{
			Role:        requirement.Role,
			Required:    requirement.Count,
			Assigned:    assigned,
			Shortfall:   shortfall,
			Suggestions: suggestions,
		})
	}

	totalRequired := event.TotalRequiredStaff()
	totalAssigned := event.ApprovedAssignmentCount()
	if totalAssigned > 0 && totalAssigned < totalRequired {
		recs.Scheduling = append(recs.Scheduling, domain.SchedulingHint{
			Message:       fmt.Sprintf("Event is partially staffed: %d of %d required staff assigned", totalAssigned, totalRequired),
			StaffAssigned: totalAssigned,
			StaffRequired: totalRequired,
			EventStart:    event.StartAt,
		})
	}

	if event.Budget != nil {
		allocated := event.Budget.Allocated()
		snapshot := domain.BudgetSnapshot{
			Total:         event.Budget.Total,
			Allocated:     allocated,
			OverAllocated: allocated.GreaterThan(event.Budget.Total),
		}
		recs.Budget = &snapshot
		if snapshot.OverAllocated {
			recs.Warnings = append(recs.Warnings, domain.RecommendationWarning{
				Type:    domain.WarningBudgetOverallocation,
				Message: fmt.Sprintf("Category allocations (%s) exceed the total budget (%s)", allocated.String(), event.Budget.Total.String()),
			})
		}
	}

	logger.Debug("Recommendations computed",
		slog.Int("staffing_gaps", len(recs.Staffing)),
		slog.Int("warnings", len(recs.Warnings)),
	)
	return recs, nil
}
