package repositories

import (
	"context"

	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// StaffReader defines read operations for staff profile data. This core
// never writes staff profiles; HR workflows own them.
type StaffReader interface {
	// FindStaffByID retrieves a staff profile with skills and certifications.
	FindStaffByID(ctx context.Context, staffID string) (*domain.StaffProfile, error)

	// ListStaffByRoleAndStatus retrieves profiles whose primary role matches
	// and whose status is one of the given values. Results are returned in a
	// stable order so ranking ties stay deterministic.
	ListStaffByRoleAndStatus(ctx context.Context, role string, statuses []domain.StaffStatus) ([]domain.StaffProfile, error)
}

// StaffRepository is the full staff data contract of this core.
type StaffRepository interface {
	StaffReader
}
