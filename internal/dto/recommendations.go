package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// StaffingGapResponse mirrors domain.StaffingGap.
type StaffingGapResponse struct {
	Role        string               `json:"role"`
	Required    int                  `json:"required"`
	Assigned    int                  `json:"assigned"`
	Shortfall   int                  `json:"shortfall"`
	Suggestions []StaffMatchResponse `json:"suggestions"`
}

// SchedulingHintResponse mirrors domain.SchedulingHint.
type SchedulingHintResponse struct {
	Message       string    `json:"message"`
	StaffAssigned int       `json:"staffAssigned"`
	StaffRequired int       `json:"staffRequired"`
	EventStart    time.Time `json:"eventStart"`
}

// BudgetSnapshotResponse mirrors domain.BudgetSnapshot.
type BudgetSnapshotResponse struct {
	Total         decimal.Decimal `json:"total"`
	Allocated     decimal.Decimal `json:"allocated"`
	OverAllocated bool            `json:"overAllocated"`
}

// WarningResponse mirrors domain.RecommendationWarning.
type WarningResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RecommendationsResponse is the reporter's HTTP payload.
type RecommendationsResponse struct {
	Staffing   []StaffingGapResponse    `json:"staffing"`
	Scheduling []SchedulingHintResponse `json:"scheduling"`
	Budget     *BudgetSnapshotResponse  `json:"budget,omitempty"`
	Warnings   []WarningResponse        `json:"warnings"`
}

// ToRecommendationsResponse converts domain.EventRecommendations to its DTO.
func ToRecommendationsResponse(r *domain.EventRecommendations) RecommendationsResponse {
	res := RecommendationsResponse{
		Staffing:   make([]StaffingGapResponse, len(r.Staffing)),
		Scheduling: make([]SchedulingHintResponse, len(r.Scheduling)),
		Warnings:   make([]WarningResponse, len(r.Warnings)),
	}
	for i, g := range r.Staffing {
		suggestions := make([]StaffMatchResponse, len(g.Suggestions))
		for j, s := range g.Suggestions {
			suggestions[j] = ToStaffMatchResponse(s)
		}
		res.Staffing[i] = StaffingGapResponse{
			Role:        g.Role,
			Required:    g.Required,
			Assigned:    g.Assigned,
			Shortfall:   g.Shortfall,
			Suggestions: suggestions,
		}
	}
	for i, h := range r.Scheduling {
		res.Scheduling[i] = SchedulingHintResponse{
			Message:       h.Message,
			StaffAssigned: h.StaffAssigned,
			StaffRequired: h.StaffRequired,
			EventStart:    h.EventStart,
		}
	}
	if r.Budget != nil {
		res.Budget = &BudgetSnapshotResponse{
			Total:         r.Budget.Total,
			Allocated:     r.Budget.Allocated,
			OverAllocated: r.Budget.OverAllocated,
		}
	}
	for i, w := range r.Warnings {
		res.Warnings[i] = WarningResponse{Type: w.Type, Message: w.Message}
	}
	return res
}
