package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
	"github.com/staffhub/staffhub-backend/internal/dto"
	"github.com/staffhub/staffhub-backend/internal/middleware"
)

// recommendationHandler handles HTTP requests for the read-only event
// staffing report.
type recommendationHandler struct {
	reporter portssvc.RecommendationReporter
}

func newRecommendationHandler(reporter portssvc.RecommendationReporter) *recommendationHandler {
	return &recommendationHandler{reporter: reporter}
}

// getRecommendations godoc
// @Summary Get staffing recommendations for an event
// @Description Reports unmet role requirements with suggested candidates, partial-staffing hints, and budget over-allocation warnings
// @Tags recommendations
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{eventID}/recommendations [get]
func (h *recommendationHandler) getRecommendations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	recs, err := h.reporter.GetEventRecommendations(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute recommendations")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecommendationsResponse(recs))
}
