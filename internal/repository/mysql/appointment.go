package mysql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
)

// Dates and times are stored as DATE/TIME columns but travel through the
// service as strings; the queries normalize them here so no caller ever sees
// an HH:MM:SS time.
const appointmentColumns = `
	id,
	DATE_FORMAT(date, '%Y-%m-%d') AS date,
	TIME_FORMAT(time, '%H:%i') AS time,
	firstName, lastName, doctor, treatment, payment,
	cost, patientFile, phone, comments, noShow
`

func (r *appointmentRepository) Create(ctx context.Context, apt *model.Appointment) (int64, error) {
	query := `
		INSERT INTO appointments (
			date, time, firstName, lastName, doctor, treatment,
			payment, cost, patientFile, phone, comments, noShow
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		apt.Date,
		apt.Time,
		apt.FirstName,
		apt.LastName,
		apt.Doctor,
		apt.Treatment,
		apt.Payment,
		apt.Cost,
		apt.PatientFile,
		apt.Phone,
		apt.Comments,
		apt.NoShow,
	)
	r.m.ObserveQuery("appointment_create", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted appointment id: %w", err)
	}
	return id, nil
}

func (r *appointmentRepository) Update(ctx context.Context, apt *model.Appointment) error {
	query := `
		UPDATE appointments
		SET date=?, time=?, firstName=?, lastName=?, doctor=?, treatment=?,
			payment=?, cost=?, patientFile=?, phone=?, comments=?, noShow=?
		WHERE id = ?
	`
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		apt.Date,
		apt.Time,
		apt.FirstName,
		apt.LastName,
		apt.Doctor,
		apt.Treatment,
		apt.Payment,
		apt.Cost,
		apt.PatientFile,
		apt.Phone,
		apt.Comments,
		apt.NoShow,
		apt.ID,
	)
	r.m.ObserveQuery("appointment_update", start, err)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("appointment not found")
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	result, err := r.db.ExecContext(ctx, "DELETE FROM appointments WHERE id = ?", id)
	r.m.ObserveQuery("appointment_delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("appointment not found")
	}
	return nil
}

func (r *appointmentRepository) ListForDate(ctx context.Context, date string) ([]model.Appointment, error) {
	query := "SELECT " + appointmentColumns + " FROM appointments WHERE date = ? ORDER BY time ASC"

	var appointments []model.Appointment
	start := time.Now()
	err := r.db.SelectContext(ctx, &appointments, query, date)
	r.m.ObserveQuery("appointment_list_for_date", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for date: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientFile string) ([]model.Appointment, error) {
	query := "SELECT " + appointmentColumns + " FROM appointments WHERE patientFile = ? ORDER BY date, time"

	var appointments []model.Appointment
	start := time.Now()
	err := r.db.SelectContext(ctx, &appointments, query, patientFile)
	r.m.ObserveQuery("appointment_list_for_patient", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for patient: %w", err)
	}
	return appointments, nil
}

// Search matches every token against the searched columns. Each token gets its
// own anchored LIKE clause; a bare token can never match unconditionally.
func (r *appointmentRepository) Search(ctx context.Context, tokens []string) ([]model.Appointment, error) {
	if len(tokens) == 0 {
		return []model.Appointment{}, nil
	}

	haystack := "CONCAT_WS(' ', firstName, lastName, patientFile, doctor, treatment, phone, cost, date)"

	clauses := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens))
	for _, token := range tokens {
		clauses = append(clauses, haystack+" LIKE ?")
		args = append(args, "%"+token+"%")
	}

	query := "SELECT " + appointmentColumns + " FROM appointments WHERE " +
		strings.Join(clauses, " OR ") + " ORDER BY date, time"

	var appointments []model.Appointment
	start := time.Now()
	err := r.db.SelectContext(ctx, &appointments, query, args...)
	r.m.ObserveQuery("appointment_search", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to search appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) TakenTimes(ctx context.Context, date string) ([]string, error) {
	query := "SELECT TIME_FORMAT(time, '%H:%i') FROM appointments WHERE date = ? ORDER BY time"

	var times []string
	start := time.Now()
	err := r.db.SelectContext(ctx, &times, query, date)
	r.m.ObserveQuery("appointment_taken_times", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get taken time slots: %w", err)
	}
	return times, nil
}
