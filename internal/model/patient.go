package model

// SentinelDateOfBirth replaces missing or unparsable dates of birth. Age-based
// reports tolerate the implausibly large age it produces; such patients fall
// outside every age band.
const SentinelDateOfBirth = "1000-01-01"

// Patient is a clinic patient record. File is the external identifier used as
// the primary lookup key across appointments and reports.
type Patient struct {
	ID          int64  `db:"id" json:"id"`
	FirstName   string `db:"firstName" json:"firstName"`
	LastName    string `db:"lastName" json:"lastName"`
	File        string `db:"file" json:"file"`
	NRC         string `db:"nrc" json:"nrc"`
	InsuranceID string `db:"insuranceId" json:"insuranceId"`
	Phone       string `db:"phone" json:"phone"`
	DateOfBirth string `db:"dateOfBirth" json:"dateOfBirth"`
	Sex         string `db:"sex" json:"sex"`
	Payment     string `db:"payment" json:"payment"`
	Marketing   string `db:"marketing" json:"marketing"`
	DateAdded   string `db:"dateAdded" json:"dateAdded"`
}

type CreatePatientRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	File        string `json:"file"`
	NRC         string `json:"nrc"`
	InsuranceID string `json:"insuranceId"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Sex         string `json:"sex"`
	Payment     string `json:"payment"`
	Marketing   string `json:"marketing"`
}

type UpdatePatientRequest struct {
	ID int64 `json:"id" binding:"required"`
	CreatePatientRequest
}
