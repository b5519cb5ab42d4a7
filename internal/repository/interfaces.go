package repository

import (
	"context"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
)

// All repository interfaces in one file
type (
	// AppointmentRepository handles appointment rows.
	AppointmentRepository interface {
		Create(ctx context.Context, apt *model.Appointment) (int64, error)
		Update(ctx context.Context, apt *model.Appointment) error
		Delete(ctx context.Context, id int64) error
		ListForDate(ctx context.Context, date string) ([]model.Appointment, error)
		ListForPatient(ctx context.Context, patientFile string) ([]model.Appointment, error)
		Search(ctx context.Context, tokens []string) ([]model.Appointment, error)
		TakenTimes(ctx context.Context, date string) ([]string, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, p *model.Patient) (*model.Patient, error)
		Update(ctx context.Context, p *model.Patient) error
		Delete(ctx context.Context, id int64) error
		Search(ctx context.Context, term string) ([]model.Patient, error)
	}

	// SlotRepository serves the fixed grid of bookable time-of-day slots.
	SlotRepository interface {
		AllSlots(ctx context.Context) ([]model.TimeSlot, error)
	}

	// AnalyticsRepository returns SPARSE observations; densification happens
	// in the aggregators.
	AnalyticsRepository interface {
		YearlyTotalsByCategory(ctx context.Context, year int, category model.Category) ([]model.CategoryTotal, error)
		MonthlySumsForValue(ctx context.Context, year int, category model.Category, value string) (map[int]float64, error)
		MonthlyTotals(ctx context.Context, year int) (map[int]float64, error)
		DailyTotals(ctx context.Context, year, month int) (map[int]float64, error)
		YearTotal(ctx context.Context, year int) (float64, error)
	}

	ReportRepository interface {
		AppointmentsForYear(ctx context.Context, year int) ([]model.AttendanceRow, error)
		DistinctTreatments(ctx context.Context, year, month int) ([]string, error)
		PatientFilesByAgeWindow(ctx context.Context, minDays, maxDays int) ([]string, error)
		TreatmentVisits(ctx context.Context, year, month int) ([]model.TreatmentVisit, error)
	}

	// LookupRepository serves the small distinct-value lists the booking form
	// offers.
	LookupRepository interface {
		Doctors(ctx context.Context) ([]string, error)
		Treatments(ctx context.Context) ([]string, error)
		Payments(ctx context.Context) ([]string, error)
	}
)
