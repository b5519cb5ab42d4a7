// Package reports counts attendance: qualifying appointments by month,
// quarter and year, and treatments cross-joined against the fixed age bands.
package reports

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/internal/repository"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/bucket"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/metrics"
)

const (
	dateLayout = "2006-01-02"

	minYear = 1900
	maxYear = 2100
)

type Service struct {
	repo repository.ReportRepository
	m    *metrics.Metrics
}

func NewService(repo repository.ReportRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, m: m}
}

// AggregateAttendance counts qualifying appointments for a year, densely by
// month and quarter plus a yearly total. No-shows and placeholder records
// never qualify; a non-empty payment narrows the count to that category.
func (s *Service) AggregateAttendance(ctx context.Context, year int, payment string) (*model.AttendanceSummary, error) {
	if year < minYear || year > maxYear {
		return nil, apperror.Input("invalid year %d", year)
	}

	started := time.Now()

	rows, err := s.repo.AppointmentsForYear(ctx, year)
	if err != nil {
		return nil, apperror.Fetch("failed to fetch appointments", err)
	}

	byMonth := make(map[int]int)
	byQuarter := make(map[int]int)
	total := 0

	for i := range rows {
		row := &rows[i]
		if row.NoShow || row.IsPlaceholder() {
			continue
		}
		if payment != "" && !strings.EqualFold(row.Payment, payment) {
			continue
		}

		date, err := time.Parse(dateLayout, row.Date)
		if err != nil {
			continue
		}
		month := int(date.Month())
		byMonth[month]++
		byQuarter[(month-1)/3+1]++
		total++
	}

	if s.m != nil {
		s.m.AggregationLatency.WithLabelValues("attendance").Observe(time.Since(started).Seconds())
	}

	return &model.AttendanceSummary{
		Year:      year,
		Payment:   payment,
		ByMonth:   bucket.Fill(bucket.Months(), byMonth, 0),
		ByQuarter: bucket.Fill(bucket.Quarters(), byQuarter, 0),
		Total:     total,
	}, nil
}

// CountTreatmentsByAgeGroup builds the dense (age band, treatment) grid for
// one month: every band crossed with every treatment observed in the period,
// zero cells included. Rows are ordered by treatment, bands in fixed order
// within each treatment.
func (s *Service) CountTreatmentsByAgeGroup(ctx context.Context, year, month int) ([]model.TreatmentAgeGroupCount, error) {
	if year < minYear || year > maxYear {
		return nil, apperror.Input("invalid year %d", year)
	}
	if month < 1 || month > 12 {
		return nil, apperror.Input("invalid month %d, expected 1-12", month)
	}

	started := time.Now()
	bands := model.AgeGroups()

	var (
		treatments []string
		visits     []model.TreatmentVisit
		bandFiles  = make([][]string, len(bands))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		treatments, err = s.repo.DistinctTreatments(gctx, year, month)
		if err != nil {
			return apperror.Fetch("failed to fetch treatments", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		visits, err = s.repo.TreatmentVisits(gctx, year, month)
		if err != nil {
			return apperror.Fetch("failed to fetch treatment visits", err)
		}
		return nil
	})
	for i := range bands {
		i := i
		g.Go(func() error {
			files, err := s.repo.PatientFilesByAgeWindow(gctx, bands[i].MinDays, bands[i].MaxDays)
			if err != nil {
				return apperror.Fetch("failed to fetch patients by age", err)
			}
			bandFiles[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The 0-1 and 1-4 windows meet at day 365; assigning in band order keeps
	// a patient on the shared edge in the younger band only.
	bandOf := make(map[string]int)
	for i, files := range bandFiles {
		for _, file := range files {
			if _, assigned := bandOf[file]; !assigned {
				bandOf[file] = i
			}
		}
	}

	type cell struct {
		band      int
		treatment string
	}
	counts := make(map[cell]int)
	for _, v := range visits {
		band, ok := bandOf[v.PatientFile]
		if !ok {
			continue
		}
		counts[cell{band, v.Treatment}]++
	}

	grid := make([]model.TreatmentAgeGroupCount, 0, len(bands)*len(treatments))
	for _, treatment := range treatments {
		for i, band := range bands {
			grid = append(grid, model.TreatmentAgeGroupCount{
				AgeGroup:  band.Label,
				Treatment: treatment,
				Count:     counts[cell{i, treatment}],
			})
		}
	}

	if s.m != nil {
		s.m.AggregationLatency.WithLabelValues("treatments_by_age").Observe(time.Since(started).Seconds())
	}
	return grid, nil
}
