package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portsrepo "github.com/staffhub/staffhub-backend/internal/core/ports/repositories"
	"github.com/staffhub/staffhub-backend/internal/models"
)

type PgxStaffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository creates a new repository for staff profile data.
func NewStaffRepository(pool *pgxpool.Pool) *PgxStaffRepository {
	return &PgxStaffRepository{pool: pool}
}

var _ portsrepo.StaffRepository = (*PgxStaffRepository)(nil)

const staffColumns = `staff_id, name, role, status, COALESCE(location, ''), rating, completed_shifts,
       created_at, created_by, last_updated_at, last_updated_by`

// FindStaffByID retrieves a staff profile with skills and certifications.
func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffProfile, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1;`
	var m models.Staff
	err := r.pool.QueryRow(ctx, query, staffID).Scan(
		&m.StaffID,
		&m.Name,
		&m.Role,
		&m.Status,
		&m.Location,
		&m.Rating,
		&m.CompletedShifts,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: staff with ID %s", apperrors.ErrNotFound, staffID)
		}
		return nil, fmt.Errorf("failed to find staff %s: %w", staffID, err)
	}

	staff := toDomainStaff(m)
	if err := r.attachSkillsAndCertifications(ctx, []*domain.StaffProfile{&staff}); err != nil {
		return nil, err
	}
	return &staff, nil
}

// ListStaffByRoleAndStatus retrieves profiles matching role and any of the
// given statuses. Ordered by created_at then staff_id so ranking tie-breaks
// stay deterministic across calls.
func (r *PgxStaffRepository) ListStaffByRoleAndStatus(ctx context.Context, role string, statuses []domain.StaffStatus) ([]domain.StaffProfile, error) {
	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query := `SELECT ` + staffColumns + `
		FROM staff
		WHERE role = $1 AND status = ANY($2)
		ORDER BY created_at, staff_id;`
	rows, err := r.pool.Query(ctx, query, role, statusStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for role %s: %w", role, err)
	}
	defer rows.Close()

	var profiles []domain.StaffProfile
	for rows.Next() {
		var m models.Staff
		if err := rows.Scan(
			&m.StaffID,
			&m.Name,
			&m.Role,
			&m.Status,
			&m.Location,
			&m.Rating,
			&m.CompletedShifts,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		profiles = append(profiles, toDomainStaff(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff rows: %w", err)
	}

	refs := make([]*domain.StaffProfile, len(profiles))
	for i := range profiles {
		refs[i] = &profiles[i]
	}
	if err := r.attachSkillsAndCertifications(ctx, refs); err != nil {
		return nil, err
	}
	return profiles, nil
}

// attachSkillsAndCertifications loads the child tables for a set of profiles
// in two queries rather than one per profile.
func (r *PgxStaffRepository) attachSkillsAndCertifications(ctx context.Context, profiles []*domain.StaffProfile) error {
	if len(profiles) == 0 {
		return nil
	}
	byID := make(map[string]*domain.StaffProfile, len(profiles))
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		byID[p.StaffID] = p
		ids = append(ids, p.StaffID)
	}

	skillRows, err := r.pool.Query(ctx, `SELECT staff_id, name, status FROM staff_skills WHERE staff_id = ANY($1) ORDER BY name;`, ids)
	if err != nil {
		return fmt.Errorf("failed to load staff skills: %w", err)
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var m models.StaffSkill
		if err := skillRows.Scan(&m.StaffID, &m.Name, &m.Status); err != nil {
			return fmt.Errorf("failed to scan skill row: %w", err)
		}
		if p, ok := byID[m.StaffID]; ok {
			p.Skills = append(p.Skills, domain.Skill{Name: m.Name, Status: domain.SkillStatus(m.Status)})
		}
	}
	if err := skillRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate skill rows: %w", err)
	}

	certRows, err := r.pool.Query(ctx, `SELECT staff_id, name, expiry_date FROM staff_certifications WHERE staff_id = ANY($1) ORDER BY name;`, ids)
	if err != nil {
		return fmt.Errorf("failed to load staff certifications: %w", err)
	}
	defer certRows.Close()
	for certRows.Next() {
		var m models.StaffCertification
		if err := certRows.Scan(&m.StaffID, &m.Name, &m.ExpiryDate); err != nil {
			return fmt.Errorf("failed to scan certification row: %w", err)
		}
		if p, ok := byID[m.StaffID]; ok {
			p.Certifications = append(p.Certifications, domain.Certification{Name: m.Name, ExpiryDate: m.ExpiryDate})
		}
	}
	if err := certRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate certification rows: %w", err)
	}
	return nil
}

func toDomainStaff(m models.Staff) domain.StaffProfile {
	return domain.StaffProfile{
		StaffID:         m.StaffID,
		Name:            m.Name,
		Role:            m.Role,
		Status:          domain.StaffStatus(m.Status),
		Location:        m.Location,
		Rating:          m.Rating,
		CompletedShifts: m.CompletedShifts,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
