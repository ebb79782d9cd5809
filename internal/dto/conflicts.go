package dto

import (
	"time"

	"github.com/staffhub/staffhub-backend/internal/core/domain"
)

// DetectConflictsParams defines query parameters for the conflict endpoint.
// Start and End are RFC 3339 timestamps.
type DetectConflictsParams struct {
	Start          time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End            time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ExcludeShiftID string    `form:"excludeShiftID"`
}

// ShiftConflictResponse mirrors domain.ShiftConflict.
type ShiftConflictResponse struct {
	ShiftID       string    `json:"shiftID"`
	EventTitle    string    `json:"eventTitle"`
	ConflictStart time.Time `json:"conflictStart"`
	ConflictEnd   time.Time `json:"conflictEnd"`
	OverlapPct    int       `json:"overlapPct"`
}

// DetectConflictsResponse wraps the conflict list.
type DetectConflictsResponse struct {
	Conflicts []ShiftConflictResponse `json:"conflicts"`
}

// ToDetectConflictsResponse converts a domain conflict list.
func ToDetectConflictsResponse(conflicts []domain.ShiftConflict) DetectConflictsResponse {
	res := DetectConflictsResponse{Conflicts: make([]ShiftConflictResponse, len(conflicts))}
	for i, c := range conflicts {
		res.Conflicts[i] = ShiftConflictResponse{
			ShiftID:       c.ShiftID,
			EventTitle:    c.EventTitle,
			ConflictStart: c.ConflictStart,
			ConflictEnd:   c.ConflictEnd,
			OverlapPct:    c.OverlapPct,
		}
	}
	return res
}
