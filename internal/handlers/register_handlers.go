package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/staffhub/staffhub-backend/internal/core/ports/services"
)

// StaffingServices bundles the core services exposed over HTTP.
type StaffingServices struct {
	Matcher      portssvc.StaffMatcher
	Detector     portssvc.ConflictDetector
	Orchestrator portssvc.AssignmentOrchestrator
	Materializer portssvc.ShiftMaterializer
	Reporter     portssvc.RecommendationReporter
}

// RegisterStaffingRoutes wires the staffing endpoints onto the router group.
func RegisterStaffingRoutes(rg *gin.RouterGroup, svcs StaffingServices) {
	matching := newMatchingHandler(svcs.Matcher, svcs.Detector)
	assignment := newAssignmentHandler(svcs.Orchestrator, svcs.Materializer)
	recommendation := newRecommendationHandler(svcs.Reporter)

	events := rg.Group("/events")
	{
		events.GET("/:eventID/matches", matching.findMatches)
		events.POST("/:eventID/auto-assign", assignment.autoAssign)
		events.POST("/:eventID/shifts", assignment.createShifts)
		events.GET("/:eventID/recommendations", recommendation.getRecommendations)
	}

	staff := rg.Group("/staff")
	{
		staff.GET("/:staffID/conflicts", matching.detectConflicts)
	}
}

// GetHealth godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
