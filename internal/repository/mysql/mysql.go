package mysql

import (
	"github.com/jmoiron/sqlx"

	"github.com/spqrod/dr-watson-dashboard-server/internal/repository"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/metrics"
)

type appointmentRepository struct {
	db *sqlx.DB
	m  *metrics.Metrics
}

type patientRepository struct {
	db *sqlx.DB
	m  *metrics.Metrics
}

type slotRepository struct {
	db *sqlx.DB
	m  *metrics.Metrics
}

type analyticsRepository struct {
	db *sqlx.DB
	m  *metrics.Metrics
}

type reportRepository struct {
	db *sqlx.DB
	m  *metrics.Metrics
}

type lookupRepository struct {
	db *sqlx.DB
	m  *metrics.Metrics
}

func NewAppointmentRepository(db *sqlx.DB, m *metrics.Metrics) repository.AppointmentRepository {
	return &appointmentRepository{db: db, m: m}
}

func NewPatientRepository(db *sqlx.DB, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{db: db, m: m}
}

func NewSlotRepository(db *sqlx.DB, m *metrics.Metrics) repository.SlotRepository {
	return &slotRepository{db: db, m: m}
}

func NewAnalyticsRepository(db *sqlx.DB, m *metrics.Metrics) repository.AnalyticsRepository {
	return &analyticsRepository{db: db, m: m}
}

func NewReportRepository(db *sqlx.DB, m *metrics.Metrics) repository.ReportRepository {
	return &reportRepository{db: db, m: m}
}

func NewLookupRepository(db *sqlx.DB, m *metrics.Metrics) repository.LookupRepository {
	return &lookupRepository{db: db, m: m}
}
