package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

type fakeRepo struct {
	created *model.Patient
}

func (f *fakeRepo) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	f.created = p
	out := *p
	out.ID = 7
	return &out, nil
}
func (f *fakeRepo) Update(ctx context.Context, p *model.Patient) error { return nil }
func (f *fakeRepo) Delete(ctx context.Context, id int64) error         { return nil }
func (f *fakeRepo) Search(ctx context.Context, term string) ([]model.Patient, error) {
	return nil, nil
}

func TestCreatePatientNormalizesDateOfBirth(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	created, err := svc.CreatePatient(context.Background(), &model.Patient{FirstName: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, model.SentinelDateOfBirth, repo.created.DateOfBirth)
	assert.Equal(t, int64(7), created.ID)

	_, err = svc.CreatePatient(context.Background(), &model.Patient{FirstName: "Jane", DateOfBirth: "31/01/1990"})
	require.NoError(t, err)
	assert.Equal(t, model.SentinelDateOfBirth, repo.created.DateOfBirth)

	_, err = svc.CreatePatient(context.Background(), &model.Patient{FirstName: "Jane", DateOfBirth: "1990-01-31"})
	require.NoError(t, err)
	assert.Equal(t, "1990-01-31", repo.created.DateOfBirth)
}

func TestCreatePatientRequiresFirstName(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.CreatePatient(context.Background(), &model.Patient{})
	assert.True(t, apperror.IsKind(err, apperror.KindInput))
}

func TestSearchRequiresTerm(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Search(context.Background(), "")
	assert.True(t, apperror.IsKind(err, apperror.KindInput))

	patients, err := svc.Search(context.Background(), "banda")
	require.NoError(t, err)
	assert.NotNil(t, patients)
}
