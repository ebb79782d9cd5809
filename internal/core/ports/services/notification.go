package services

import (
	"context"

	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// NotificationPort is the outbound contract to the notification subsystem.
// Calls are fire-and-forget from this core's standpoint: callers log returned
// errors and never let them affect the operation's outcome.
type NotificationPort interface {
	NotifyEventAssignment(ctx context.Context, staff domain.StaffProfile, event domain.Event, role string) error
	NotifyShiftAssignment(ctx context.Context, staff domain.StaffProfile, shift domain.Shift, event domain.Event) error
}
