package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
)

func (r *reportRepository) AppointmentsForYear(ctx context.Context, year int) ([]model.AttendanceRow, error) {
	query := `
		SELECT
			DATE_FORMAT(date, '%Y-%m-%d') AS date,
			firstName, lastName, payment, noShow
		FROM appointments
		WHERE YEAR(date) = ?
	`
	var rows []model.AttendanceRow
	start := time.Now()
	err := r.db.SelectContext(ctx, &rows, query, year)
	r.m.ObserveQuery("report_appointments_for_year", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments for year: %w", err)
	}
	return rows, nil
}

func (r *reportRepository) DistinctTreatments(ctx context.Context, year, month int) ([]string, error) {
	query := `
		SELECT DISTINCT treatment
		FROM appointments
		WHERE YEAR(date) = ? AND MONTH(date) = ? AND treatment != ''
		ORDER BY treatment
	`
	var treatments []string
	start := time.Now()
	err := r.db.SelectContext(ctx, &treatments, query, year, month)
	r.m.ObserveQuery("report_distinct_treatments", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct treatments: %w", err)
	}
	return treatments, nil
}

func (r *reportRepository) PatientFilesByAgeWindow(ctx context.Context, minDays, maxDays int) ([]string, error) {
	query := `
		SELECT file
		FROM patients
		WHERE file != ''
		AND DATEDIFF(CURRENT_DATE(), dateOfBirth) BETWEEN ? AND ?
	`
	var files []string
	start := time.Now()
	err := r.db.SelectContext(ctx, &files, query, minDays, maxDays)
	r.m.ObserveQuery("report_patients_by_age", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get patients by age window: %w", err)
	}
	return files, nil
}

func (r *reportRepository) TreatmentVisits(ctx context.Context, year, month int) ([]model.TreatmentVisit, error) {
	query := `
		SELECT patientFile, treatment
		FROM appointments
		WHERE YEAR(date) = ? AND MONTH(date) = ?
		AND firstName != 'x' AND firstName != 'X'
		AND treatment != '' AND patientFile != ''
	`
	var visits []model.TreatmentVisit
	start := time.Now()
	err := r.db.SelectContext(ctx, &visits, query, year, month)
	r.m.ObserveQuery("report_treatment_visits", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment visits: %w", err)
	}
	return visits, nil
}
