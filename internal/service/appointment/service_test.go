package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

type fakeRepo struct {
	created      *model.Appointment
	searchTokens []string
}

func (f *fakeRepo) Create(ctx context.Context, apt *model.Appointment) (int64, error) {
	f.created = apt
	return 42, nil
}
func (f *fakeRepo) Update(ctx context.Context, apt *model.Appointment) error { return nil }
func (f *fakeRepo) Delete(ctx context.Context, id int64) error               { return nil }
func (f *fakeRepo) ListForDate(ctx context.Context, date string) ([]model.Appointment, error) {
	return nil, nil
}
func (f *fakeRepo) ListForPatient(ctx context.Context, file string) ([]model.Appointment, error) {
	return nil, nil
}
func (f *fakeRepo) TakenTimes(ctx context.Context, date string) ([]string, error) { return nil, nil }

func (f *fakeRepo) Search(ctx context.Context, tokens []string) ([]model.Appointment, error) {
	f.searchTokens = tokens
	return []model.Appointment{}, nil
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.CreateAppointment(context.Background(), &model.Appointment{Date: "not-a-date", Time: "09:00"})
	assert.True(t, apperror.IsKind(err, apperror.KindInput))

	_, err = svc.CreateAppointment(context.Background(), &model.Appointment{Date: "2024-06-01", Time: "9am"})
	assert.True(t, apperror.IsKind(err, apperror.KindInput))

	_, err = svc.CreateAppointment(context.Background(), &model.Appointment{Date: "2024-06-01", Time: "09:00", Cost: -5})
	assert.True(t, apperror.IsKind(err, apperror.KindInput))

	id, err := svc.CreateAppointment(context.Background(), &model.Appointment{Date: "2024-06-01", Time: "09:00", Cost: 150})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestSearchTokenization(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Search(context.Background(), "  jane   banda  extra ")
	require.NoError(t, err)
	assert.Equal(t, []string{"jane", "banda"}, repo.searchTokens)

	_, err = svc.Search(context.Background(), "   ")
	assert.True(t, apperror.IsKind(err, apperror.KindInput))
}

func TestListForPatientRequiresFile(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.ListForPatient(context.Background(), "")
	assert.True(t, apperror.IsKind(err, apperror.KindInput))

	appointments, err := svc.ListForPatient(context.Background(), "F100")
	require.NoError(t, err)
	assert.NotNil(t, appointments)
}
