package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

type fakeReportRepo struct {
	rows       []model.AttendanceRow
	treatments []string
	visits     []model.TreatmentVisit
	ageDays    map[string]int // patient file -> age in days
	err        error
}

func (f *fakeReportRepo) AppointmentsForYear(ctx context.Context, year int) ([]model.AttendanceRow, error) {
	return f.rows, f.err
}

func (f *fakeReportRepo) DistinctTreatments(ctx context.Context, year, month int) ([]string, error) {
	return f.treatments, f.err
}

func (f *fakeReportRepo) PatientFilesByAgeWindow(ctx context.Context, minDays, maxDays int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var files []string
	for file, age := range f.ageDays {
		if age >= minDays && age <= maxDays {
			files = append(files, file)
		}
	}
	return files, nil
}

func (f *fakeReportRepo) TreatmentVisits(ctx context.Context, year, month int) ([]model.TreatmentVisit, error) {
	return f.visits, f.err
}

func attendanceFixture() []model.AttendanceRow {
	return []model.AttendanceRow{
		{Date: "2024-01-10", FirstName: "Jane", LastName: "Banda", Payment: "Cash"},
		{Date: "2024-01-20", FirstName: "John", LastName: "Phiri", Payment: "Nhima"},
		{Date: "2024-02-05", FirstName: "Mary", LastName: "Zulu", Payment: "Nhima"},
		{Date: "2024-02-06", FirstName: "Mark", LastName: "Mwale", Payment: "Cash", NoShow: true},
		{Date: "2024-04-01", FirstName: "x", LastName: "x", Payment: "Cash"},
		{Date: "2024-07-15", FirstName: "Grace", LastName: "Tembo", Payment: "Cash"},
		{Date: "2024-12-31", FirstName: "Peter", LastName: "Sakala", Payment: "Nhima"},
	}
}

func TestAggregateAttendance(t *testing.T) {
	svc := NewService(&fakeReportRepo{rows: attendanceFixture()}, nil)

	summary, err := svc.AggregateAttendance(context.Background(), 2024, "")
	require.NoError(t, err)

	// No-show and placeholder rows fall out: 5 left.
	assert.Equal(t, 5, summary.Total)

	require.Len(t, summary.ByMonth, 12)
	assert.Equal(t, 2, summary.ByMonth[0].Value)  // January
	assert.Equal(t, 1, summary.ByMonth[1].Value)  // February
	assert.Equal(t, 0, summary.ByMonth[3].Value)  // April (placeholder only)
	assert.Equal(t, 1, summary.ByMonth[6].Value)  // July
	assert.Equal(t, 1, summary.ByMonth[11].Value) // December

	require.Len(t, summary.ByQuarter, 4)
	assert.Equal(t, 3, summary.ByQuarter[0].Value)
	assert.Equal(t, 0, summary.ByQuarter[1].Value)
	assert.Equal(t, 1, summary.ByQuarter[2].Value)
	assert.Equal(t, 1, summary.ByQuarter[3].Value)

	var monthSum, quarterSum int
	for _, e := range summary.ByMonth {
		monthSum += e.Value
	}
	for _, e := range summary.ByQuarter {
		quarterSum += e.Value
	}
	assert.Equal(t, summary.Total, monthSum)
	assert.Equal(t, summary.Total, quarterSum)
}

func TestAggregateAttendancePaymentFilter(t *testing.T) {
	svc := NewService(&fakeReportRepo{rows: attendanceFixture()}, nil)

	summary, err := svc.AggregateAttendance(context.Background(), 2024, "Nhima")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.ByMonth[0].Value)
	assert.Equal(t, 1, summary.ByMonth[1].Value)
	assert.Equal(t, 2, summary.ByQuarter[0].Value)
	assert.Equal(t, 1, summary.ByQuarter[3].Value)
}

func TestAggregateAttendanceEmptyYear(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nil)

	summary, err := svc.AggregateAttendance(context.Background(), 2024, "")
	require.NoError(t, err)

	assert.Zero(t, summary.Total)
	require.Len(t, summary.ByMonth, 12)
	require.Len(t, summary.ByQuarter, 4)
	for _, e := range summary.ByMonth {
		assert.Zero(t, e.Value)
	}
}

func TestAggregateAttendanceErrors(t *testing.T) {
	svc := NewService(&fakeReportRepo{err: errors.New("connection refused")}, nil)

	_, err := svc.AggregateAttendance(context.Background(), 2024, "")
	assert.True(t, apperror.IsKind(err, apperror.KindFetch))

	svc = NewService(&fakeReportRepo{}, nil)
	_, err = svc.AggregateAttendance(context.Background(), 24, "")
	assert.True(t, apperror.IsKind(err, apperror.KindInput))
}

func TestCountTreatmentsByAgeGroup(t *testing.T) {
	repo := &fakeReportRepo{
		treatments: []string{"Cleaning", "Extraction"},
		visits: []model.TreatmentVisit{
			{PatientFile: "F100", Treatment: "Cleaning"},
			{PatientFile: "F200", Treatment: "Extraction"},
			{PatientFile: "F200", Treatment: "Extraction"},
			{PatientFile: "F999", Treatment: "Cleaning"}, // unknown patient, no band
		},
		ageDays: map[string]int{
			"F100": 366,   // one year and a day old -> band 1-4
			"F200": 12000, // adult -> band 15-120
		},
	}
	svc := NewService(repo, nil)

	grid, err := svc.CountTreatmentsByAgeGroup(context.Background(), 2024, 6)
	require.NoError(t, err)

	// 4 bands x 2 treatments, every cell present.
	require.Len(t, grid, 8)

	byCell := make(map[string]int)
	for _, c := range grid {
		byCell[c.AgeGroup+"/"+c.Treatment] = c.Count
	}
	assert.Equal(t, 1, byCell["1-4/Cleaning"])
	assert.Equal(t, 2, byCell["15-120/Extraction"])
	assert.Equal(t, 0, byCell["0-1/Cleaning"])
	assert.Equal(t, 0, byCell["5-14/Extraction"])
	assert.Equal(t, 0, byCell["1-4/Extraction"])

	// Ordered by treatment, bands in fixed order within each treatment.
	assert.Equal(t, "Cleaning", grid[0].Treatment)
	assert.Equal(t, "0-1", grid[0].AgeGroup)
	assert.Equal(t, "15-120", grid[3].AgeGroup)
	assert.Equal(t, "Extraction", grid[4].Treatment)
}

func TestCountTreatmentsSharedBandEdge(t *testing.T) {
	// Exactly 365 days old matches both the 0-1 and 1-4 windows; the younger
	// band wins.
	repo := &fakeReportRepo{
		treatments: []string{"Cleaning"},
		visits:     []model.TreatmentVisit{{PatientFile: "F1", Treatment: "Cleaning"}},
		ageDays:    map[string]int{"F1": 365},
	}
	svc := NewService(repo, nil)

	grid, err := svc.CountTreatmentsByAgeGroup(context.Background(), 2024, 6)
	require.NoError(t, err)

	byCell := make(map[string]int)
	for _, c := range grid {
		byCell[c.AgeGroup+"/"+c.Treatment] = c.Count
	}
	assert.Equal(t, 1, byCell["0-1/Cleaning"])
	assert.Equal(t, 0, byCell["1-4/Cleaning"])
}

func TestCountTreatmentsNoTreatments(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nil)

	grid, err := svc.CountTreatmentsByAgeGroup(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestCountTreatmentsInvalidInput(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nil)

	_, err := svc.CountTreatmentsByAgeGroup(context.Background(), 2024, 0)
	assert.True(t, apperror.IsKind(err, apperror.KindInput))

	_, err = svc.CountTreatmentsByAgeGroup(context.Background(), 99999, 6)
	assert.True(t, apperror.IsKind(err, apperror.KindInput))
}
