// Package analytics composes the revenue reports: dense monthly breakdowns
// per category value, grand monthly totals and the yearly total.
package analytics

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/internal/repository"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/bucket"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/format"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/metrics"
)

const (
	minYear = 1900
	maxYear = 2100

	// Source data is float-summed in two independent ways; anything beyond
	// this is a real inconsistency, not rounding.
	consistencyTolerance = 0.01
)

type Service struct {
	repo repository.AnalyticsRepository
	m    *metrics.Metrics
}

func NewService(repo repository.AnalyticsRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, m: m}
}

// AggregateRevenue builds the revenue summary for one year grouped by
// category. Yearly totals, grand monthly totals and the grand total are
// fetched concurrently; the per-value monthly breakdowns fan out once the
// category values are known.
func (s *Service) AggregateRevenue(ctx context.Context, year int, category model.Category) (*model.RevenueSummary, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, apperror.Input("invalid category %q, expected one of doctor, treatment, payment", category)
	}

	started := time.Now()

	var (
		totals       []model.CategoryTotal
		grandMonthly map[int]float64
		grandTotal   float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.repo.YearlyTotalsByCategory(gctx, year, category)
		if err != nil {
			return apperror.Fetch("failed to fetch yearly totals", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		grandMonthly, err = s.repo.MonthlyTotals(gctx, year)
		if err != nil {
			return apperror.Fetch("failed to fetch monthly totals", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		grandTotal, err = s.repo.YearTotal(gctx, year)
		if err != nil {
			return apperror.Fetch("failed to fetch year total", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	perValue := make([]model.CategoryMonthly, len(totals))
	g, gctx = errgroup.WithContext(ctx)
	for i := range totals {
		i := i
		value := totals[i].Value
		g.Go(func() error {
			sums, err := s.repo.MonthlySumsForValue(gctx, year, category, value)
			if err != nil {
				return apperror.Fetch("failed to fetch monthly sums", err)
			}
			perValue[i] = model.CategoryMonthly{
				Value:  value,
				Months: bucket.Fill(bucket.Months(), sums, 0),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &model.RevenueSummary{
		Year:               year,
		Category:           category,
		CategoryTotals:     totals,
		PerCategoryMonthly: perValue,
		GrandMonthly:       bucket.Fill(bucket.Months(), grandMonthly, 0),
		GrandTotal:         grandTotal,
		GrandTotalDisplay:  format.Thousands(grandTotal),
	}

	s.checkConsistency(summary)
	if s.m != nil {
		s.m.AggregationLatency.WithLabelValues("revenue").Observe(time.Since(started).Seconds())
	}
	return summary, nil
}

// DailyRevenue builds the dense per-day cost breakdown for one month.
func (s *Service) DailyRevenue(ctx context.Context, year, month int) (*model.DailyRevenue, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, apperror.Input("invalid month %d, expected 1-12", month)
	}

	totals, err := s.repo.DailyTotals(ctx, year, month)
	if err != nil {
		return nil, apperror.Fetch("failed to fetch daily totals", err)
	}

	return &model.DailyRevenue{
		Year:  year,
		Month: month,
		Days:  bucket.Fill(bucket.DaysOfMonth(), totals, 0),
	}, nil
}

// checkConsistency verifies that the grand monthly series sums to the grand
// total. Concurrent writes during aggregation can legitimately break this, so
// a violation is logged and counted, never fatal.
func (s *Service) checkConsistency(summary *model.RevenueSummary) {
	var monthlySum float64
	for _, e := range summary.GrandMonthly {
		monthlySum += e.Value
	}

	if math.Abs(monthlySum-summary.GrandTotal) > consistencyTolerance {
		log.Warn().
			Int("year", summary.Year).
			Str("category", string(summary.Category)).
			Float64("monthly_sum", monthlySum).
			Float64("grand_total", summary.GrandTotal).
			Msg("revenue aggregation inconsistency")
		if s.m != nil {
			s.m.DataInconsistency.Inc()
		}
	}
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return apperror.Input("invalid year %d", year)
	}
	return nil
}
