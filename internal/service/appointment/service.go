package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/internal/repository"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	maxSearchTokens = 2
)

type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateAppointment(ctx context.Context, apt *model.Appointment) (int64, error) {
	if err := validateAppointment(apt); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, apt)
	if err != nil {
		return 0, apperror.Fetch("failed to create appointment", err)
	}
	return id, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, apt *model.Appointment) error {
	if apt.ID == 0 {
		return apperror.Input("appointment id is required")
	}
	if err := validateAppointment(apt); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		return apperror.Fetch("failed to update appointment", err)
	}
	return nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	if id == 0 {
		return apperror.Input("appointment id is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Fetch("failed to delete appointment", err)
	}
	return nil
}

// ListForPatient returns the full visit history for a patient file, ordered
// by date then time.
func (s *Service) ListForPatient(ctx context.Context, patientFile string) ([]model.Appointment, error) {
	if patientFile == "" {
		return nil, apperror.Input("patient file is required")
	}

	appointments, err := s.repo.ListForPatient(ctx, patientFile)
	if err != nil {
		return nil, apperror.Fetch("failed to list appointments", err)
	}
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	return appointments, nil
}

// Search splits the search string on whitespace and matches each token
// against the searched columns. At most two tokens are used, enough for a
// "first last" query.
func (s *Service) Search(ctx context.Context, searchString string) ([]model.Appointment, error) {
	tokens := strings.Fields(searchString)
	if len(tokens) == 0 {
		return nil, apperror.Input("search string is required")
	}
	if len(tokens) > maxSearchTokens {
		tokens = tokens[:maxSearchTokens]
	}

	appointments, err := s.repo.Search(ctx, tokens)
	if err != nil {
		return nil, apperror.Fetch("failed to search appointments", err)
	}
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	return appointments, nil
}

func validateAppointment(apt *model.Appointment) error {
	if _, err := time.Parse(dateLayout, apt.Date); err != nil {
		return apperror.Input("invalid date %q, expected YYYY-MM-DD", apt.Date)
	}
	if _, err := time.Parse(timeLayout, apt.Time); err != nil {
		return apperror.Input("invalid time %q, expected HH:MM", apt.Time)
	}
	if apt.Cost < 0 {
		return apperror.Input("cost must not be negative")
	}
	return nil
}
