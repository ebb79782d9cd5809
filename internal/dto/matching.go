package dto

import (
	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// FindMatchesParams defines query parameters for the candidate matching
// endpoint.
type FindMatchesParams struct {
	Role  string `form:"role" binding:"required"`
	Count int    `form:"count,default=5" binding:"omitempty,min=1,max=50"`
}

// StaffSummary is the candidate-facing slice of a staff profile.
type StaffSummary struct {
	StaffID         string             `json:"staffID"`
	Name            string             `json:"name"`
	Role            string             `json:"role"`
	Status          domain.StaffStatus `json:"status"`
	Location        string             `json:"location"`
	Rating          float64            `json:"rating"`
	CompletedShifts int                `json:"completedShifts"`
}

// ScoreFactorsResponse mirrors domain.ScoreFactors.
type ScoreFactorsResponse struct {
	Availability   float64 `json:"availability"`
	Location       float64 `json:"location"`
	Performance    float64 `json:"performance"`
	Experience     float64 `json:"experience"`
	Skills         float64 `json:"skills"`
	Certifications float64 `json:"certifications"`
}

// StaffMatchResponse is one ranked candidate.
type StaffMatchResponse struct {
	Staff           StaffSummary         `json:"staff"`
	Score           float64              `json:"score"`
	Factors         ScoreFactorsResponse `json:"factors"`
	MatchPercentage float64              `json:"matchPercentage"`
}

// FindMatchesResponse wraps the ranked candidate list.
type FindMatchesResponse struct {
	Matches []StaffMatchResponse `json:"matches"`
}

// ToStaffMatchResponse converts a domain.StaffMatch to its DTO.
func ToStaffMatchResponse(m domain.StaffMatch) StaffMatchResponse {
	return StaffMatchResponse{
		Staff: StaffSummary{
			StaffID:         m.Staff.StaffID,
			Name:            m.Staff.Name,
			Role:            m.Staff.Role,
			Status:          m.Staff.Status,
			Location:        m.Staff.Location,
			Rating:          m.Staff.Rating,
			CompletedShifts: m.Staff.CompletedShifts,
		},
		Score: m.Score,
		Factors: ScoreFactorsResponse{
			Availability:   m.Factors.Availability,
			Location:       m.Factors.Location,
			Performance:    m.Factors.Performance,
			Experience:     m.Factors.Experience,
			Skills:         m.Factors.Skills,
			Certifications: m.Factors.Certifications,
		},
		MatchPercentage: m.MatchPercentage,
	}
}

// ToFindMatchesResponse converts a ranked match list.
func ToFindMatchesResponse(matches []domain.StaffMatch) FindMatchesResponse {
	res := FindMatchesResponse{Matches: make([]StaffMatchResponse, len(matches))}
	for i, m := range matches {
		res.Matches[i] = ToStaffMatchResponse(m)
	}
	return res
}
