package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portsrepo "github.com/staffhub/staffhub-backend/internal/core/ports/repositories"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
	"github.com/staffhub/staffhub-backend/internal/middleware"
)

// matchEligibleStatuses are the staff statuses considered for matching.
var matchEligibleStatuses = []domain.StaffStatus{domain.StaffAvailable, domain.StaffOnShift}

// MatchingService scores and ranks eligible staff against an event's role
// requirements.
type MatchingService struct {
	EventRepository  portsrepo.EventReader
	StaffRepository  portsrepo.StaffReader
	ConflictDetector portssvc.ConflictDetector
	now              func() time.Time
}

func NewMatchingService(eventRepo portsrepo.EventReader, staffRepo portsrepo.StaffReader, detector portssvc.ConflictDetector) *MatchingService {
	return &MatchingService{
		EventRepository:  eventRepo,
		StaffRepository:  staffRepo,
		ConflictDetector: detector,
		now:              time.Now,
	}
}

// FindBestStaffMatches returns at most count candidates for role on the
// event, highest score first. Staff holding a non-rejected assignment on the
// event are excluded outright so repeated orchestration runs cannot assign
// the same person twice.
func (s *MatchingService) FindBestStaffMatches(ctx context.Context, eventID, role string, count int) ([]domain.StaffMatch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", apperrors.ErrValidation)
	}

	event, err := s.EventRepository.FindEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load event for matching", slog.String("error", err.Error()), slog.String("event_id", eventID))
		}
		return nil, err
	}

	candidates, err := s.StaffRepository.ListStaffByRoleAndStatus(ctx, role, matchEligibleStatuses)
	if err != nil {
		logger.Error("Failed to list candidate staff", slog.String("error", err.Error()), slog.String("role", role))
		return nil, fmt.Errorf("failed to list staff for role %s: %w", role, err)
	}

	matches := make([]domain.StaffMatch, 0, len(candidates))
	for _, staff := range candidates {
		if event.HasActiveAssignment(staff.StaffID) {
			continue
		}
		factors, err := s.scoreCandidate(ctx, staff, event)
		if err != nil {
			return nil, err
		}
		score := factors.Total()
		matches = append(matches, domain.StaffMatch{
			Staff:           staff,
			Score:           score,
			Factors:         factors,
			MatchPercentage: score,
		})
	}

	// Stable sort keeps the repository's enumeration order as tie-break.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > count {
		matches = matches[:count]
	}

	logger.Debug("Staff matching completed",
		slog.String("event_id", eventID),
		slog.String("role", role),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
	)
	return matches, nil
}

func (s *MatchingService) scoreCandidate(ctx context.Context, staff domain.StaffProfile, event *domain.Event) (domain.ScoreFactors, error) {
	availability, err := s.availabilityScore(ctx, staff.StaffID, event)
	if err != nil {
		return domain.ScoreFactors{}, err
	}

	skills := float64(staff.VerifiedSkillCount())
	if skills > domain.MaxSkillScore {
		skills = domain.MaxSkillScore
	}

	certs := float64(staff.ValidCertificationCount(s.now()))
	if certs > domain.MaxCertificationScore {
		certs = domain.MaxCertificationScore
	}

	return domain.ScoreFactors{
		Availability:   availability,
		Location:       locationScore(event.Location, staff.Location),
		Performance:    staff.Rating / 5.0 * domain.MaxPerformanceScore,
		Experience:     experienceScore(staff.CompletedShifts),
		Skills:         skills,
		Certifications: certs,
	}, nil
}

// availabilityScore starts at the maximum and deducts a flat penalty per
// conflicting active shift, floored at zero. The penalty is count-based on
// purpose: a one-minute collision costs as much as a full-day one.
func (s *MatchingService) availabilityScore(ctx context.Context, staffID string, event *domain.Event) (float64, error) {
	conflicts, err := s.ConflictDetector.DetectConflicts(ctx, staffID, event.StartAt, event.EndAt, "")
	if err != nil {
		return 0, fmt.Errorf("failed to check availability for staff %s: %w", staffID, err)
	}
	score := domain.MaxAvailabilityScore - float64(len(conflicts))*domain.AvailabilityConflictPenalty
	if score < 0 {
		score = 0
	}
	return score, nil
}

// locationScore gives full points when the event and staff locations are
// reciprocal case-insensitive substrings, half points when both are present
// but differ, and nothing when either is missing.
func locationScore(eventLocation, staffLocation string) float64 {
	ev := strings.ToLower(strings.TrimSpace(eventLocation))
	st := strings.ToLower(strings.TrimSpace(staffLocation))
	if ev == "" || st == "" {
		return 0
	}
	if strings.Contains(ev, st) || strings.Contains(st, ev) {
		return domain.MaxLocationScore
	}
	return domain.MaxLocationScore / 2
}

// experienceScore is a step function over completed shift count.
func experienceScore(completedShifts int) float64 {
	switch {
	case completedShifts >= 50:
		return 15
	case completedShifts >= 20:
		return 10
	case completedShifts >= 10:
		return 5
	default:
		return 0
	}
}
