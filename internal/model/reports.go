package model

import (
	"github.com/spqrod/dr-watson-dashboard-server/pkg/bucket"
)

// AgeGroup is one fixed day-count band used to bucket patients by age.
// Windows are inclusive and use 365-day years without leap correction, the
// same approximation the reporting has always used.
type AgeGroup struct {
	Label   string `json:"label"`
	MinDays int    `json:"-"`
	MaxDays int    `json:"-"`
}

// AgeGroups returns the four fixed bands in display order. The 0-1 and 1-4
// windows share the 365-day edge; classification is first match wins, so a
// patient aged exactly 365 days lands in 0-1.
func AgeGroups() []AgeGroup {
	return []AgeGroup{
		{Label: "0-1", MinDays: 0, MaxDays: 365},
		{Label: "1-4", MinDays: 365, MaxDays: 365 * 4},
		{Label: "5-14", MinDays: 365 * 5, MaxDays: 365 * 14},
		{Label: "15-120", MinDays: 365 * 15, MaxDays: 365 * 120},
	}
}

// AttendanceRow is one raw appointment row feeding attendance counting.
// Filtering (no-shows, placeholder records, payment category) happens in the
// aggregator, not in the query.
type AttendanceRow struct {
	Date      string `db:"date"`
	FirstName string `db:"firstName"`
	LastName  string `db:"lastName"`
	Payment   string `db:"payment"`
	NoShow    bool   `db:"noShow"`
}

// IsPlaceholder reports whether the row blocks a slot rather than recording a
// real visit.
func (r *AttendanceRow) IsPlaceholder() bool {
	return isPlaceholderName(r.FirstName) || isPlaceholderName(r.LastName)
}

// AttendanceSummary is the dense attendance report for one year.
type AttendanceSummary struct {
	Year      int                      `json:"year"`
	Payment   string                   `json:"payment,omitempty"`
	ByMonth   []bucket.Entry[int, int] `json:"byMonth"`
	ByQuarter []bucket.Entry[int, int] `json:"byQuarter"`
	Total     int                      `json:"total"`
}

// TreatmentVisit is one qualifying (patient, treatment) appointment in a
// reporting period.
type TreatmentVisit struct {
	PatientFile string `db:"patientFile"`
	Treatment   string `db:"treatment"`
}

// TreatmentAgeGroupCount is one cell of the dense (age group, treatment)
// grid. Every cell of the cross join is present, zeros included.
type TreatmentAgeGroupCount struct {
	AgeGroup  string `json:"ageGroup"`
	Treatment string `json:"treatment"`
	Count     int    `json:"count"`
}
