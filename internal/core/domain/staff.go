package domain

import "time"

// StaffStatus indicates whether a staff member can currently take work.
type StaffStatus string

const (
	StaffAvailable StaffStatus = "AVAILABLE"
	StaffOnShift   StaffStatus = "ON_SHIFT"
	StaffSuspended StaffStatus = "SUSPENDED"
	StaffOnLeave   StaffStatus = "ON_LEAVE"
)

// SkillStatus is the verification state of a declared skill.
type SkillStatus string

const (
	SkillVerified SkillStatus = "VERIFIED"
	SkillPending  SkillStatus = "PENDING"
	SkillRejected SkillStatus = "REJECTED"
)

// Skill is a named capability declared on a staff profile.
type Skill struct {
	Name   string      `json:"name"`
	Status SkillStatus `json:"status"`
}

// Certification is a credential held by a staff member. A nil ExpiryDate
// means the credential does not expire.
type Certification struct {
	Name       string     `json:"name"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

// IsValidAt reports whether the certification is usable at the given instant.
func (c Certification) IsValidAt(t time.Time) bool {
	return c.ExpiryDate == nil || c.ExpiryDate.After(t)
}

// StaffProfile represents a staffing resource. Profiles are owned by the HR
// roster; this core reads them but never mutates them.
type StaffProfile struct {
	StaffID         string          `json:"staffID"` // Primary key (UUID)
	Name            string          `json:"name"`
	Role            string          `json:"role"` // Primary role tag, e.g. "Hostess"
	Status          StaffStatus     `json:"status"`
	Location        string          `json:"location"` // Free-text city/area
	Rating          float64         `json:"rating"`   // 0.0-5.0
	CompletedShifts int             `json:"completedShifts"`
	Skills          []Skill         `json:"skills"`
	Certifications  []Certification `json:"certifications"`
	AuditFields
}

// VerifiedSkillCount returns the number of skills with verified status.
func (s StaffProfile) VerifiedSkillCount() int {
	n := 0
	for _, sk := range s.Skills {
		if sk.Status == SkillVerified {
			n++
		}
	}
	return n
}

// ValidCertificationCount returns the number of certifications valid at t.
func (s StaffProfile) ValidCertificationCount(t time.Time) int {
	n := 0
	for _, c := range s.Certifications {
		if c.IsValidAt(t) {
			n++
		}
	}
	return n
}
