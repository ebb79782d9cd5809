package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffhub/staffhub-backend/internal/apperrors"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
	"github.com/staffhub/staffhub-backend/internal/dto"
	"github.com/staffhub/staffhub-backend/internal/middleware"
)

// matchingHandler handles HTTP requests for candidate matching and conflict
// detection.
type matchingHandler struct {
	matcher  portssvc.StaffMatcher
	detector portssvc.ConflictDetector
}

func newMatchingHandler(matcher portssvc.StaffMatcher, detector portssvc.ConflictDetector) *matchingHandler {
	return &matchingHandler{matcher: matcher, detector: detector}
}

// findMatches godoc
// @Summary Find best staff matches for a role on an event
// @Description Scores eligible staff on availability, location, performance, experience, skills and certifications, and returns the top candidates
// @Tags matching
// @Produce json
// @Param eventID path string true "Event ID"
// @Param role query string true "Role name"
// @Param count query int false "Maximum candidates to return" default(5)
// @Success 200 {object} dto.FindMatchesResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{eventID}/matches [get]
func (h *matchingHandler) findMatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var params dto.FindMatchesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for findMatches", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	matches, err := h.matcher.FindBestStaffMatches(c.Request.Context(), eventID, params.Role, params.Count)
	if err != nil {
		respondWithError(c, logger, err, "Failed to find staff matches")
		return
	}

	c.JSON(http.StatusOK, dto.ToFindMatchesResponse(matches))
}

// detectConflicts godoc
// @Summary Detect scheduling conflicts for a staff member
// @Description Lists the staffer's active shifts overlapping the candidate time range, with overlap percentages relative to the candidate interval
// @Tags matching
// @Produce json
// @Param staffID path string true "Staff ID"
// @Param start query string true "Candidate interval start (RFC 3339)"
// @Param end query string true "Candidate interval end (RFC 3339)"
// @Param excludeShiftID query string false "Shift ID to exclude from the check"
// @Success 200 {object} dto.DetectConflictsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Router /staff/{staffID}/conflicts [get]
func (h *matchingHandler) detectConflicts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("staffID")

	var params dto.DetectConflictsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for detectConflicts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	conflicts, err := h.detector.DetectConflicts(c.Request.Context(), staffID, params.Start, params.End, params.ExcludeShiftID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to detect conflicts")
		return
	}

	c.JSON(http.StatusOK, dto.ToDetectConflictsResponse(conflicts))
}

// respondWithError maps core error sentinels onto HTTP status codes.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
