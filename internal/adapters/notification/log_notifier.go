// Package notification provides outbound adapters for the notification port.
package notification

import (
	"context"
	"log/slog"

	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
	"github.com/staffhub/staffhub-backend/internal/middleware"
)

// LogNotifier records notifications to the structured log. It stands in for
// the real delivery subsystem, which is owned by a separate service; the
// core only needs the port contract.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

var _ portssvc.NotificationPort = (*LogNotifier)(nil)

func (n *LogNotifier) NotifyEventAssignment(ctx context.Context, staff domain.StaffProfile, event domain.Event, role string) error {
	middleware.GetLoggerFromCtx(ctx).Info("Notification: staff assigned to event",
		slog.String("staff_id", staff.StaffID),
		slog.String("event_id", event.EventID),
		slog.String("event_title", event.Title),
		slog.String("role", role),
	)
	return nil
}

func (n *LogNotifier) NotifyShiftAssignment(ctx context.Context, staff domain.StaffProfile, shift domain.Shift, event domain.Event) error {
	middleware.GetLoggerFromCtx(ctx).Info("Notification: shift created for staff",
		slog.String("staff_id", staff.StaffID),
		slog.String("shift_id", shift.ShiftID),
		slog.String("event_id", event.EventID),
		slog.String("shift_date", shift.Date),
	)
	return nil
}
