package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/staffhub/staffhub-backend/internal/apperrors"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portsrepo "github.com/staffhub/staffhub-backend/internal/core/ports/repositories"
	"github.com/staffhub/staffhub-backend/internal/models"
)

type PgxEventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new repository for event data.
func NewEventRepository(pool *pgxpool.Pool) *PgxEventRepository {
	return &PgxEventRepository{pool: pool}
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

// FindEventByID retrieves an event row plus its embedded assignments.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `
		SELECT event_id, title, start_at, end_at, location, required_roles, budget,
		       staff_assigned, version, created_at, created_by, last_updated_at, last_updated_by
		FROM events
		WHERE event_id = $1;
	`
	var m models.Event
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&m.EventID,
		&m.Title,
		&m.StartAt,
		&m.EndAt,
		&m.Location,
		&m.RequiredRoles,
		&m.Budget,
		&m.StaffAssigned,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: event with ID %s", apperrors.ErrNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	event, err := toDomainEvent(m)
	if err != nil {
		return nil, fmt.Errorf("failed to decode event %s: %w", eventID, err)
	}

	assignments, err := r.listAssignments(ctx, eventID)
	if err != nil {
		return nil, err
	}
	event.Assignments = assignments
	return event, nil
}

func (r *PgxEventRepository) listAssignments(ctx context.Context, eventID string) ([]domain.Assignment, error) {
	query := `
		SELECT assignment_id, event_id, staff_id, role, status, assigned_at,
		       payment_type, payment_rate, total_payment
		FROM event_assignments
		WHERE event_id = $1
		ORDER BY assigned_at, assignment_id;
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for event %s: %w", eventID, err)
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var m models.EventAssignment
		if err := rows.Scan(
			&m.AssignmentID,
			&m.EventID,
			&m.StaffID,
			&m.Role,
			&m.Status,
			&m.AssignedAt,
			&m.PaymentType,
			&m.PaymentRate,
			&m.TotalPayment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, toDomainAssignment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignment rows: %w", err)
	}
	return assignments, nil
}

// AddAssignment inserts a new assignment. The unique constraint on
// (event_id, staff_id) is the real duplicate guard; a violation comes back as
// apperrors.ErrDuplicate.
func (r *PgxEventRepository) AddAssignment(ctx context.Context, assignment domain.Assignment) error {
	m := toModelAssignment(assignment)
	query := `
		INSERT INTO event_assignments (assignment_id, event_id, staff_id, role, status, assigned_at, payment_type, payment_rate, total_payment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AssignmentID,
		m.EventID,
		m.StaffID,
		m.Role,
		m.Status,
		m.AssignedAt,
		m.PaymentType,
		m.PaymentRate,
		m.TotalPayment,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: staff %s already assigned to event %s", apperrors.ErrDuplicate, m.StaffID, m.EventID)
		}
		return fmt.Errorf("failed to add assignment for staff %s on event %s: %w", m.StaffID, m.EventID, err)
	}
	return nil
}

// UpdateStaffingCounters persists the recomputed staffAssigned count with an
// optimistic version check.
func (r *PgxEventRepository) UpdateStaffingCounters(ctx context.Context, eventID string, staffAssigned int, expectedVersion int64) error {
	query := `
		UPDATE events
		SET staff_assigned = $2, version = version + 1, last_updated_at = NOW()
		WHERE event_id = $1 AND version = $3;
	`
	tag, err := r.pool.Exec(ctx, query, eventID, staffAssigned, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update staffing counters for event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the event vanished or a concurrent writer bumped the
		// version; tell them apart so callers can retry on conflict.
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE event_id = $1)`, eventID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to verify event %s after stale update: %w", eventID, err)
		}
		if !exists {
			return fmt.Errorf("%w: event with ID %s", apperrors.ErrNotFound, eventID)
		}
		return fmt.Errorf("%w: event %s was modified concurrently", apperrors.ErrConflict, eventID)
	}
	return nil
}

// Helper to convert models.Event (without assignments) to domain.Event.
func toDomainEvent(m models.Event) (*domain.Event, error) {
	var roleDocs []models.RequiredRoleDoc
	if len(m.RequiredRoles) > 0 {
		if err := json.Unmarshal(m.RequiredRoles, &roleDocs); err != nil {
			return nil, fmt.Errorf("invalid required_roles document: %w", err)
		}
	}
	roles := make([]domain.RoleRequirement, len(roleDocs))
	for i, d := range roleDocs {
		roles[i] = domain.RoleRequirement{Role: d.Role, Count: d.Count}
	}

	var budget *domain.Budget
	if len(m.Budget) > 0 {
		var doc models.BudgetDoc
		if err := json.Unmarshal(m.Budget, &doc); err != nil {
			return nil, fmt.Errorf("invalid budget document: %w", err)
		}
		allocations := make([]domain.BudgetAllocation, len(doc.Allocations))
		for i, a := range doc.Allocations {
			allocations[i] = domain.BudgetAllocation{Category: a.Category, Amount: a.Amount}
		}
		budget = &domain.Budget{Total: doc.Total, Allocations: allocations}
	}

	return &domain.Event{
		EventID:       m.EventID,
		Title:         m.Title,
		StartAt:       m.StartAt,
		EndAt:         m.EndAt,
		Location:      m.Location,
		RequiredRoles: roles,
		StaffAssigned: m.StaffAssigned,
		Budget:        budget,
		Version:       m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

func toDomainAssignment(m models.EventAssignment) domain.Assignment {
	a := domain.Assignment{
		AssignmentID: m.AssignmentID,
		EventID:      m.EventID,
		StaffID:      m.StaffID,
		Role:         m.Role,
		Status:       domain.AssignmentStatus(m.Status),
		AssignedAt:   m.AssignedAt,
	}
	if m.PaymentType != nil {
		payment := domain.Payment{Type: domain.PaymentType(*m.PaymentType)}
		if m.PaymentRate != nil {
			payment.Rate = *m.PaymentRate
		}
		if m.TotalPayment != nil {
			payment.TotalPayment = *m.TotalPayment
		}
		a.Payment = &payment
	}
	return a
}

func toModelAssignment(a domain.Assignment) models.EventAssignment {
	m := models.EventAssignment{
		AssignmentID: a.AssignmentID,
		EventID:      a.EventID,
		StaffID:      a.StaffID,
		Role:         a.Role,
		Status:       string(a.Status),
		AssignedAt:   a.AssignedAt,
	}
	if a.Payment != nil {
		paymentType := string(a.Payment.Type)
		rate := a.Payment.Rate
		total := a.Payment.TotalPayment
		m.PaymentType = &paymentType
		m.PaymentRate = &rate
		m.TotalPayment = &total
	}
	return m
}
