package services_test

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockEventRepository is a mock type for the EventRepository interface.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) AddAssignment(ctx context.Context, assignment domain.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateStaffingCounters(ctx context.Context, eventID string, staffAssigned int, expectedVersion int64) error {
	args := m.Called(ctx, eventID, staffAssigned, expectedVersion)
	return args.Error(0)
}

// MockStaffRepository is a mock type for the StaffRepository interface.
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffProfile, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffProfile), args.Error(1)
}

func (m *MockStaffRepository) ListStaffByRoleAndStatus(ctx context.Context, role string, statuses []domain.StaffStatus) ([]domain.StaffProfile, error) {
	args := m.Called(ctx, role, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffProfile), args.Error(1)
}

// MockShiftRepository is a mock type for the ShiftRepository interface.
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) ListActiveShiftsForStaff(ctx context.Context, staffID string, start, end time.Time, excludeShiftID string) ([]domain.Shift, error) {
	args := m.Called(ctx, staffID, start, end, excludeShiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ShiftExists(ctx context.Context, eventID, staffID string) (bool, error) {
	args := m.Called(ctx, eventID, staffID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

// MockStaffMatcher is a mock type for the StaffMatcher interface.
type MockStaffMatcher struct {
	mock.Mock
}

func (m *MockStaffMatcher) FindBestStaffMatches(ctx context.Context, eventID, role string, count int) ([]domain.StaffMatch, error) {
	args := m.Called(ctx, eventID, role, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffMatch), args.Error(1)
}

// MockShiftMaterializer is a mock type for the ShiftMaterializer interface.
type MockShiftMaterializer struct {
	mock.Mock
}

func (m *MockShiftMaterializer) AutoCreateShiftsForEvent(ctx context.Context, eventID string, staffIDs []string) (*domain.ShiftCreationResult, error) {
	args := m.Called(ctx, eventID, staffIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftCreationResult), args.Error(1)
}

// MockConflictDetector is a mock type for the ConflictDetector interface.
type MockConflictDetector struct {
	mock.Mock
}

func (m *MockConflictDetector) DetectConflicts(ctx context.Context, staffID string, start, end time.Time, excludeShiftID string) ([]domain.ShiftConflict, error) {
	args := m.Called(ctx, staffID, start, end, excludeShiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftConflict), args.Error(1)
}

// MockNotifier is a mock type for the NotificationPort interface.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyEventAssignment(ctx context.Context, staff domain.StaffProfile, event domain.Event, role string) error {
	args := m.Called(ctx, staff, event, role)
	return args.Error(0)
}

func (m *MockNotifier) NotifyShiftAssignment(ctx context.Context, staff domain.StaffProfile, shift domain.Shift, event domain.Event) error {
	args := m.Called(ctx, staff, shift, event)
	return args.Error(0)
}
