package models

import "time"

// Staff represents a staff profile row.
type Staff struct {
	StaffID         string  `db:"staff_id"`
	Name            string  `db:"name"`
	Role            string  `db:"role"`
	Status          string  `db:"status"`
	Location        string  `db:"location"` // Nullable free text
	Rating          float64 `db:"rating"`
	CompletedShifts int     `db:"completed_shifts"`
	AuditFields
}

// StaffSkill represents one row of the staff_skills table.
type StaffSkill struct {
	StaffID string `db:"staff_id"`
	Name    string `db:"name"`
	Status  string `db:"status"`
}

// StaffCertification represents one row of the staff_certifications table.
// ExpiryDate is nullable; NULL means the credential never expires.
type StaffCertification struct {
	StaffID    string     `db:"staff_id"`
	Name       string     `db:"name"`
	ExpiryDate *time.Time `db:"expiry_date"`
}
