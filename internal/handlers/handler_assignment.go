package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
	"github.com/staffhub/staffhub-backend/internal/dto"
	"github.com/staffhub/staffhub-backend/internal/middleware"
)

// assignmentHandler handles HTTP requests for auto-assignment and shift
// materialization.
type assignmentHandler struct {
	orchestrator portssvc.AssignmentOrchestrator
	materializer portssvc.ShiftMaterializer
}

func newAssignmentHandler(orchestrator portssvc.AssignmentOrchestrator, materializer portssvc.ShiftMaterializer) *assignmentHandler {
	return &assignmentHandler{orchestrator: orchestrator, materializer: materializer}
}

// autoAssign godoc
// @Summary Auto-assign staff to an event
// @Description Fills each required role's shortfall with the highest scoring candidates and recomputes the event's staffing counters
// @Tags assignments
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param options body dto.AutoAssignRequest false "Assignment options"
// @Success 200 {object} dto.AutoAssignResponse
// @Failure 400 {object} map[string]string "Event has no required roles"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event modified concurrently"
// @Router /events/{eventID}/auto-assign [post]
func (h *assignmentHandler) autoAssign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.AutoAssignRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for autoAssign", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	logger.Info("Received auto-assignment request",
		slog.String("event_id", eventID),
		slog.Bool("auto_create_shifts", req.AutoCreateShifts),
		slog.Bool("notify_staff", req.NotifyStaff),
	)

	result, err := h.orchestrator.AutoAssignStaffToEvent(c.Request.Context(), eventID, domain.AutoAssignOptions{
		AutoCreateShifts:      req.AutoCreateShifts,
		NotifyStaff:           req.NotifyStaff,
		MaxAssignmentsPerRole: req.MaxAssignmentsPerRole,
	})
	if err != nil {
		respondWithError(c, logger, err, "Failed to auto-assign staff")
		return
	}

	c.JSON(http.StatusOK, dto.ToAutoAssignResponse(result))
}

// createShifts godoc
// @Summary Create work shifts for an event's assigned staff
// @Description Derives one shift per staffer from the event's timing; staffers who already have a shift for the event are skipped
// @Tags shifts
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body dto.CreateShiftsRequest false "Optional explicit staff IDs"
// @Success 201 {object} dto.CreateShiftsResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{eventID}/shifts [post]
func (h *assignmentHandler) createShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.CreateShiftsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for createShifts", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	result, err := h.materializer.AutoCreateShiftsForEvent(c.Request.Context(), eventID, req.StaffIDs)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create shifts")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateShiftsResponse(result))
}
