package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	"github.com/staffhub/staffhub-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ShiftServiceTestSuite struct {
	suite.Suite
	mockEventRepo *MockEventRepository
	mockShiftRepo *MockShiftRepository
	mockStaffRepo *MockStaffRepository
	mockNotifier  *MockNotifier
	service       *services.ShiftService
	event         *domain.Event
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewShiftService(suite.mockEventRepo, suite.mockShiftRepo, suite.mockStaffRepo, suite.mockNotifier)
	suite.event = &domain.Event{
		EventID: "event-1",
		Title:   "Corporate Gala",
		StartAt: time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, time.June, 2, 23, 0, 0, 0, time.UTC),
		Assignments: []domain.Assignment{
			{AssignmentID: "a1", EventID: "event-1", StaffID: "staff-1", Role: "Hostess", Status: domain.AssignmentApproved},
			{AssignmentID: "a2", EventID: "event-1", StaffID: "staff-2", Role: "Protocol", Status: domain.AssignmentApproved,
				Payment: &domain.Payment{Type: domain.PaymentFixed, Rate: decimal.NewFromInt(150), TotalPayment: decimal.NewFromInt(150)}},
			{AssignmentID: "a3", EventID: "event-1", StaffID: "staff-3", Role: "Hostess", Status: domain.AssignmentRejected},
		},
	}
}

func (suite *ShiftServiceTestSuite) expectStaffLookup(staffID string) {
	staff := domain.StaffProfile{StaffID: staffID}
	suite.mockStaffRepo.On("FindStaffByID", mock.Anything, staffID).Return(&staff, nil)
	suite.mockNotifier.On("NotifyShiftAssignment", mock.Anything, staff, mock.AnythingOfType("domain.Shift"), mock.AnythingOfType("domain.Event")).Return(nil)
}

func (suite *ShiftServiceTestSuite) TestAutoCreateShifts_DerivesStaffFromApprovedAssignments() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockShiftRepo.On("ShiftExists", ctx, "event-1", "staff-1").Return(false, nil).Once()
	suite.mockShiftRepo.On("ShiftExists", ctx, "event-1", "staff-2").Return(false, nil).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(nil).Twice()
	suite.expectStaffLookup("staff-1")
	suite.expectStaffLookup("staff-2")

	result, err := suite.service.AutoCreateShiftsForEvent(ctx, "event-1", nil)

	suite.Require().NoError(err)
	suite.Equal(2, result.Created)
	suite.Require().Len(result.Shifts, 2)

	first := result.Shifts[0]
	suite.Equal("staff-1", first.StaffID)
	suite.Equal("Hostess", first.Role)
	suite.Equal(suite.event.StartAt, first.StartTime)
	suite.Equal(suite.event.EndAt, first.EndTime)
	suite.Equal(domain.ShiftScheduled, first.Status)
	suite.Equal("2025-06-02", first.Date)
	suite.True(first.Wage.IsZero())

	second := result.Shifts[1]
	suite.Equal("Protocol", second.Role)
	suite.True(second.Wage.Equal(decimal.NewFromInt(150)), "wage derives from the assignment payment")
}

func (suite *ShiftServiceTestSuite) TestAutoCreateShifts_SkipsExistingShift() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockShiftRepo.On("ShiftExists", ctx, "event-1", "staff-1").Return(true, nil).Once()
	suite.mockShiftRepo.On("ShiftExists", ctx, "event-1", "staff-2").Return(false, nil).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(nil).Once()
	suite.expectStaffLookup("staff-2")

	result, err := suite.service.AutoCreateShiftsForEvent(ctx, "event-1", nil)

	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
	suite.Equal("staff-2", result.Shifts[0].StaffID)
}

func (suite *ShiftServiceTestSuite) TestAutoCreateShifts_DuplicateOnSaveAbsorbed() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	// Existence check passes but a concurrent creator wins the insert race.
	suite.mockShiftRepo.On("ShiftExists", ctx, "event-1", "staff-1").Return(false, nil).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(apperrors.ErrDuplicate).Once()

	result, err := suite.service.AutoCreateShiftsForEvent(ctx, "event-1", []string{"staff-1"})

	suite.Require().NoError(err)
	suite.Zero(result.Created)
}

func (suite *ShiftServiceTestSuite) TestAutoCreateShifts_ExplicitStaffIDsBypassDerivation() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockShiftRepo.On("ShiftExists", ctx, "event-1", "staff-unassigned").Return(false, nil).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.MatchedBy(func(s domain.Shift) bool {
		return s.StaffID == "staff-unassigned" && s.Role == "General Staff"
	})).Return(nil).Once()
	suite.expectStaffLookup("staff-unassigned")

	result, err := suite.service.AutoCreateShiftsForEvent(ctx, "event-1", []string{"staff-unassigned"})

	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
}

func (suite *ShiftServiceTestSuite) TestAutoCreateShifts_NotificationFailureKeepsCount() {
	ctx := context.Background()
	staff := domain.StaffProfile{StaffID: "staff-1"}
	suite.mockEventRepo.On("FindEventByID", ctx, "event-1").Return(suite.event, nil).Once()
	suite.mockShiftRepo.On("ShiftExists", ctx, "event-1", "staff-1").Return(false, nil).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(nil).Once()
	suite.mockStaffRepo.On("FindStaffByID", ctx, "staff-1").Return(&staff, nil).Once()
	suite.mockNotifier.On("NotifyShiftAssignment", ctx, staff, mock.AnythingOfType("domain.Shift"), mock.AnythingOfType("domain.Event")).
		Return(errors.New("push gateway down")).Once()

	result, err := suite.service.AutoCreateShiftsForEvent(ctx, "event-1", []string{"staff-1"})

	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
}

func (suite *ShiftServiceTestSuite) TestAutoCreateShifts_EventNotFound() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AutoCreateShiftsForEvent(ctx, "missing", nil)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
