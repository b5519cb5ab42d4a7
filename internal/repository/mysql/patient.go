package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
)

const patientColumns = `
	id, firstName, lastName, file, nrc, insuranceId, phone,
	DATE_FORMAT(dateOfBirth, '%Y-%m-%d') AS dateOfBirth,
	sex, payment, marketing,
	DATE_FORMAT(dateAdded, '%Y-%m-%d %H:%i:%s') AS dateAdded
`

func (r *patientRepository) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	query := `
		INSERT INTO patients (
			firstName, lastName, file, nrc, phone, payment,
			insuranceId, dateOfBirth, sex, marketing
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		p.FirstName,
		p.LastName,
		p.File,
		p.NRC,
		p.Phone,
		p.Payment,
		p.InsuranceID,
		p.DateOfBirth,
		p.Sex,
		p.Marketing,
	)
	r.m.ObserveQuery("patient_create", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted patient id: %w", err)
	}

	var created model.Patient
	query = "SELECT " + patientColumns + " FROM patients WHERE id = ?"
	start = time.Now()
	err = r.db.GetContext(ctx, &created, query, id)
	r.m.ObserveQuery("patient_get", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get created patient: %w", err)
	}
	return &created, nil
}

func (r *patientRepository) Update(ctx context.Context, p *model.Patient) error {
	query := `
		UPDATE patients
		SET firstName=?, lastName=?, file=?, nrc=?, phone=?, payment=?,
			insuranceId=?, dateOfBirth=?, sex=?, marketing=?
		WHERE id = ?
	`
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		p.FirstName,
		p.LastName,
		p.File,
		p.NRC,
		p.Phone,
		p.Payment,
		p.InsuranceID,
		p.DateOfBirth,
		p.Sex,
		p.Marketing,
		p.ID,
	)
	r.m.ObserveQuery("patient_update", start, err)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("patient not found")
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	result, err := r.db.ExecContext(ctx, "DELETE FROM patients WHERE id = ?", id)
	r.m.ObserveQuery("patient_delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("patient not found")
	}
	return nil
}

func (r *patientRepository) Search(ctx context.Context, term string) ([]model.Patient, error) {
	query := "SELECT " + patientColumns + ` FROM patients
		WHERE CONCAT_WS(' ', firstName, lastName, file, nrc, phone, payment, insuranceId) LIKE ?
		ORDER BY lastName`

	var patients []model.Patient
	start := time.Now()
	err := r.db.SelectContext(ctx, &patients, query, "%"+term+"%")
	r.m.ObserveQuery("patient_search", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}
