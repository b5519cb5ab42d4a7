package model

// PlaceholderName marks blocked or administrative slots saved as appointments.
// Records carrying it in either name field are excluded from every report.
const PlaceholderName = "x"

// Appointment is one booked entry in the clinic day. Date is "2006-01-02",
// Time is "HH:MM" (truncated from HH:MM:SS at the repository boundary).
type Appointment struct {
	ID          int64   `db:"id" json:"id"`
	Date        string  `db:"date" json:"date"`
	Time        string  `db:"time" json:"time"`
	FirstName   string  `db:"firstName" json:"firstName"`
	LastName    string  `db:"lastName" json:"lastName"`
	Doctor      string  `db:"doctor" json:"doctor"`
	Treatment   string  `db:"treatment" json:"treatment"`
	Payment     string  `db:"payment" json:"payment"`
	Cost        float64 `db:"cost" json:"cost"`
	PatientFile string  `db:"patientFile" json:"patientFile"`
	Phone       string  `db:"phone" json:"phone"`
	Comments    string  `db:"comments" json:"comments"`
	NoShow      bool    `db:"noShow" json:"noShow"`
}

// IsPlaceholder reports whether the record blocks a slot rather than booking
// a real patient.
func (a *Appointment) IsPlaceholder() bool {
	return isPlaceholderName(a.FirstName) || isPlaceholderName(a.LastName)
}

func isPlaceholderName(name string) bool {
	return name == PlaceholderName || name == "X"
}

type CreateAppointmentRequest struct {
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Doctor      string  `json:"doctor"`
	Treatment   string  `json:"treatment"`
	Payment     string  `json:"payment"`
	Cost        float64 `json:"cost"`
	PatientFile string  `json:"patientFile"`
	Phone       string  `json:"phone"`
	Comments    string  `json:"comments"`
	NoShow      bool    `json:"noShow"`
}

type UpdateAppointmentRequest struct {
	ID int64 `json:"id" binding:"required"`
	CreateAppointmentRequest
}
