package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portsrepo "github.com/staffhub/staffhub-backend/internal/core/ports/repositories"
	"github.com/staffhub/staffhub-backend/internal/models"
)

type PgxShiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository creates a new repository for shift data.
func NewShiftRepository(pool *pgxpool.Pool) *PgxShiftRepository {
	return &PgxShiftRepository{pool: pool}
}

var _ portsrepo.ShiftRepository = (*PgxShiftRepository)(nil)

// ListActiveShiftsForStaff returns the staffer's Scheduled/Live shifts whose
// interval intersects [start, end). The strict inequalities keep half-open
// semantics: back-to-back shifts do not match.
func (r *PgxShiftRepository) ListActiveShiftsForStaff(ctx context.Context, staffID string, start, end time.Time, excludeShiftID string) ([]domain.Shift, error) {
	statuses := make([]string, len(domain.ActiveShiftStatuses))
	for i, s := range domain.ActiveShiftStatuses {
		statuses[i] = string(s)
	}

	query, args := activeShiftsQuery(staffID, statuses, start, end, excludeShiftID)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active shifts for staff %s: %w", staffID, err)
	}
	defer rows.Close()

	var shifts []domain.Shift
	for rows.Next() {
		var m models.Shift
		if err := rows.Scan(
			&m.ShiftID,
			&m.EventID,
			&m.EventTitle,
			&m.StaffID,
			&m.Role,
			&m.StartTime,
			&m.EndTime,
			&m.Status,
			&m.Wage,
			&m.Date,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, toDomainShift(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift rows: %w", err)
	}
	return shifts, nil
}

// activeShiftsQuery builds the active-shift intersection query. The
// exclusion predicate is appended only when an ID is given so the parameter
// is compared against the uuid column directly; guarding it with an
// empty-string sentinel would make the server infer the parameter as text,
// and uuid <> text has no operator, failing the statement at parse time.
func activeShiftsQuery(staffID string, statuses []string, start, end time.Time, excludeShiftID string) (string, []any) {
	query := `
		SELECT shift_id, event_id, event_title, staff_id, role, start_time, end_time, status, wage, date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM shifts
		WHERE staff_id = $1
		  AND status = ANY($2)
		  AND start_time < $3
		  AND end_time > $4`
	args := []any{staffID, statuses, end, start}
	if excludeShiftID != "" {
		query += `
		  AND shift_id <> $5`
		args = append(args, excludeShiftID)
	}
	query += `
		ORDER BY start_time, shift_id;`
	return query, args
}

// ShiftExists reports whether a shift exists for the (event, staff) pair.
func (r *PgxShiftRepository) ShiftExists(ctx context.Context, eventID, staffID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM shifts WHERE event_id = $1 AND staff_id = $2)`,
		eventID, staffID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check shift existence for event %s staff %s: %w", eventID, staffID, err)
	}
	return exists, nil
}

// SaveShift inserts a new shift. The unique index on (event_id, staff_id)
// turns creation races into ErrDuplicate.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := toModelShift(shift)
	query := `
		INSERT INTO shifts (shift_id, event_id, event_title, staff_id, role, start_time, end_time, status, wage, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ShiftID,
		m.EventID,
		m.EventTitle,
		m.StaffID,
		m.Role,
		m.StartTime,
		m.EndTime,
		m.Status,
		m.Wage,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: shift for event %s and staff %s already exists", apperrors.ErrDuplicate, m.EventID, m.StaffID)
		}
		return fmt.Errorf("failed to save shift %s: %w", m.ShiftID, err)
	}
	return nil
}

func toDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:    m.ShiftID,
		EventID:    m.EventID,
		EventTitle: m.EventTitle,
		StaffID:    m.StaffID,
		Role:       m.Role,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Status:     domain.ShiftStatus(m.Status),
		Wage:       m.Wage,
		Date:       m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:    d.ShiftID,
		EventID:    d.EventID,
		EventTitle: d.EventTitle,
		StaffID:    d.StaffID,
		Role:       d.Role,
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		Status:     string(d.Status),
		Wage:       d.Wage,
		Date:       d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}
