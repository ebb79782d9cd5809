package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	"github.com/staffhub/staffhub-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MatchingServiceTestSuite struct {
	suite.Suite
	mockEventRepo *MockEventRepository
	mockStaffRepo *MockStaffRepository
	mockDetector  *MockConflictDetector
	service       *services.MatchingService
	event         *domain.Event
}

func (suite *MatchingServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockDetector = new(MockConflictDetector)
	suite.service = services.NewMatchingService(suite.mockEventRepo, suite.mockStaffRepo, suite.mockDetector)
	suite.event = &domain.Event{
		EventID:  "event-1",
		Title:    "Corporate Gala",
		StartAt:  time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC),
		EndAt:    time.Date(2025, time.June, 2, 23, 0, 0, 0, time.UTC),
		Location: "Lagos",
		RequiredRoles: []domain.RoleRequirement{
			{Role: "Hostess", Count: 2},
		},
	}
}

func (suite *MatchingServiceTestSuite) expectNoConflicts(staffID string) {
	suite.mockDetector.On("DetectConflicts", mock.Anything, staffID, suite.event.StartAt, suite.event.EndAt, "").
		Return([]domain.ShiftConflict{}, nil)
}

func hostess(id string, rating float64, completed int) domain.StaffProfile {
	return domain.StaffProfile{
		StaffID:         id,
		Role:            "Hostess",
		Status:          domain.StaffAvailable,
		Location:        "Lagos",
		Rating:          rating,
		CompletedShifts: completed,
	}
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_RanksByScore() {
	ctx := context.Background()
	// Same location and no conflicts for all; rating and experience split them.
	weak := hostess("staff-weak", 2.0, 0)
	mid := hostess("staff-mid", 4.0, 25)
	strong := hostess("staff-strong", 5.0, 60)

	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockStaffRepo.On("ListStaffByRoleAndStatus", ctx, "Hostess", mock.Anything).
		Return([]domain.StaffProfile{weak, mid, strong}, nil).Once()
	suite.expectNoConflicts("staff-weak")
	suite.expectNoConflicts("staff-mid")
	suite.expectNoConflicts("staff-strong")

	matches, err := suite.service.FindBestStaffMatches(ctx, "event-1", "Hostess", 3)

	suite.Require().NoError(err)
	suite.Require().Len(matches, 3)
	suite.Equal("staff-strong", matches[0].Staff.StaffID)
	suite.Equal("staff-mid", matches[1].Staff.StaffID)
	suite.Equal("staff-weak", matches[2].Staff.StaffID)

	// Full marks for the strongest: 30 + 20 + 25 + 15 + 0 + 0.
	suite.InDelta(90.0, matches[0].Score, 0.001)
	suite.Equal(matches[0].Score, matches[0].MatchPercentage)
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_TruncatesToCount() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockStaffRepo.On("ListStaffByRoleAndStatus", ctx, "Hostess", mock.Anything).
		Return([]domain.StaffProfile{hostess("a", 3, 0), hostess("b", 4, 0), hostess("c", 5, 0)}, nil).Once()
	suite.expectNoConflicts("a")
	suite.expectNoConflicts("b")
	suite.expectNoConflicts("c")

	matches, err := suite.service.FindBestStaffMatches(ctx, "event-1", "Hostess", 2)

	suite.Require().NoError(err)
	suite.Len(matches, 2)
	suite.Equal("c", matches[0].Staff.StaffID)
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_ExcludesAlreadyAssigned() {
	ctx := context.Background()
	// staff-assigned has a pending (non-rejected) assignment for another
	// role on this event and must never be returned.
	suite.event.Assignments = []domain.Assignment{
		{StaffID: "staff-assigned", Role: "Protocol", Status: domain.AssignmentPending},
		{StaffID: "staff-rejected", Role: "Hostess", Status: domain.AssignmentRejected},
	}
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockStaffRepo.On("ListStaffByRoleAndStatus", ctx, "Hostess", mock.Anything).
		Return([]domain.StaffProfile{hostess("staff-assigned", 5, 60), hostess("staff-rejected", 3, 0)}, nil).Once()
	suite.expectNoConflicts("staff-rejected")

	matches, err := suite.service.FindBestStaffMatches(ctx, "event-1", "Hostess", 5)

	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.Equal("staff-rejected", matches[0].Staff.StaffID, "a rejected assignment must not exclude the staffer")
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_AvailabilityPenalty() {
	ctx := context.Background()
	staff := hostess("staff-busy", 0, 0)
	staff.Location = ""
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockStaffRepo.On("ListStaffByRoleAndStatus", ctx, "Hostess", mock.Anything).
		Return([]domain.StaffProfile{staff}, nil).Once()
	// Two conflicting shifts cost 10 points each.
	suite.mockDetector.On("DetectConflicts", mock.Anything, "staff-busy", suite.event.StartAt, suite.event.EndAt, "").
		Return([]domain.ShiftConflict{{ShiftID: "s1", OverlapPct: 3}, {ShiftID: "s2", OverlapPct: 97}}, nil).Once()

	matches, err := suite.service.FindBestStaffMatches(ctx, "event-1", "Hostess", 1)

	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.InDelta(10.0, matches[0].Factors.Availability, 0.001)
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_AvailabilityFloorsAtZero() {
	ctx := context.Background()
	staff := hostess("staff-overbooked", 0, 0)
	staff.Location = ""
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockStaffRepo.On("ListStaffByRoleAndStatus", ctx, "Hostess", mock.Anything).
		Return([]domain.StaffProfile{staff}, nil).Once()
	conflicts := make([]domain.ShiftConflict, 4)
	suite.mockDetector.On("DetectConflicts", mock.Anything, "staff-overbooked", suite.event.StartAt, suite.event.EndAt, "").
		Return(conflicts, nil).Once()

	matches, err := suite.service.FindBestStaffMatches(ctx, "event-1", "Hostess", 1)

	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.Zero(matches[0].Factors.Availability, "availability must never go negative")
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_LocationScoring() {
	ctx := context.Background()
	sameArea := hostess("staff-same", 0, 0)
	sameArea.Location = "Victoria Island, LAGOS"
	elsewhere := hostess("staff-far", 0, 0)
	elsewhere.Location = "Abuja"
	unknown := hostess("staff-unknown", 0, 0)
	unknown.Location = ""
	blank := hostess("staff-blank", 0, 0)
	blank.Location = "   "

	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockStaffRepo.On("ListStaffByRoleAndStatus", ctx, "Hostess", mock.Anything).
		Return([]domain.StaffProfile{sameArea, elsewhere, unknown, blank}, nil).Once()
	suite.expectNoConflicts("staff-same")
	suite.expectNoConflicts("staff-far")
	suite.expectNoConflicts("staff-unknown")
	suite.expectNoConflicts("staff-blank")

	matches, err := suite.service.FindBestStaffMatches(ctx, "event-1", "Hostess", 4)

	suite.Require().NoError(err)
	suite.Require().Len(matches, 4)
	byID := map[string]domain.StaffMatch{}
	for _, m := range matches {
		byID[m.Staff.StaffID] = m
	}
	suite.InDelta(20.0, byID["staff-same"].Factors.Location, 0.001, "event location containing the staff location scores full points")
	suite.InDelta(10.0, byID["staff-far"].Factors.Location, 0.001)
	suite.Zero(byID["staff-unknown"].Factors.Location)
	suite.Zero(byID["staff-blank"].Factors.Location, "whitespace-only location counts as absent")
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_SkillAndCertificationCaps() {
	ctx := context.Background()
	expired := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	staff := hostess("staff-skilled", 0, 0)
	staff.Location = ""
	for i := 0; i < 8; i++ {
		staff.Skills = append(staff.Skills, domain.Skill{Name: "skill", Status: domain.SkillVerified})
	}
	staff.Skills = append(staff.Skills, domain.Skill{Name: "pending", Status: domain.SkillPending})
	staff.Certifications = []domain.Certification{
		{Name: "first-aid"}, // never expires
		{Name: "lapsed", ExpiryDate: &expired},
	}

	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockStaffRepo.On("ListStaffByRoleAndStatus", ctx, "Hostess", mock.Anything).
		Return([]domain.StaffProfile{staff}, nil).Once()
	suite.expectNoConflicts("staff-skilled")

	matches, err := suite.service.FindBestStaffMatches(ctx, "event-1", "Hostess", 1)

	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.InDelta(5.0, matches[0].Factors.Skills, 0.001, "verified skills cap at 5")
	suite.InDelta(1.0, matches[0].Factors.Certifications, 0.001, "expired certifications do not count")
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_EventNotFound() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.FindBestStaffMatches(ctx, "missing", "Hostess", 2)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MatchingServiceTestSuite) TestFindBestStaffMatches_InvalidCount() {
	ctx := context.Background()

	_, err := suite.service.FindBestStaffMatches(ctx, "event-1", "Hostess", 0)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestMatchingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchingServiceTestSuite))
}
