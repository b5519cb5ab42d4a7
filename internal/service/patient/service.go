package patient

import (
	"context"
	"time"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/internal/repository"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	if p.FirstName == "" {
		return nil, apperror.Input("first name is required")
	}
	p.DateOfBirth = normalizeDateOfBirth(p.DateOfBirth)

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, apperror.Fetch("failed to create patient", err)
	}
	return created, nil
}

func (s *Service) UpdatePatient(ctx context.Context, p *model.Patient) error {
	if p.ID == 0 {
		return apperror.Input("patient id is required")
	}
	p.DateOfBirth = normalizeDateOfBirth(p.DateOfBirth)

	if err := s.repo.Update(ctx, p); err != nil {
		return apperror.Fetch("failed to update patient", err)
	}
	return nil
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	if id == 0 {
		return apperror.Input("patient id is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Fetch("failed to delete patient", err)
	}
	return nil
}

func (s *Service) Search(ctx context.Context, term string) ([]model.Patient, error) {
	if term == "" {
		return nil, apperror.Input("search term is required")
	}

	patients, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, apperror.Fetch("failed to search patients", err)
	}
	if patients == nil {
		patients = []model.Patient{}
	}
	return patients, nil
}

// normalizeDateOfBirth replaces a missing or unparsable date of birth with
// the sentinel minimum date so the column is never null.
func normalizeDateOfBirth(dob string) string {
	if dob == "" {
		return model.SentinelDateOfBirth
	}
	if _, err := time.Parse(dateLayout, dob); err != nil {
		return model.SentinelDateOfBirth
	}
	return dob
}
