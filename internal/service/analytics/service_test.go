package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

// fakeAnalyticsRepo serves the fixture: three appointments on 2024-06-01 with
// costs 100, 200 for doctor A and 300 for doctor B.
type fakeAnalyticsRepo struct {
	failYearly  bool
	failMonthly bool
}

func (f *fakeAnalyticsRepo) YearlyTotalsByCategory(ctx context.Context, year int, category model.Category) ([]model.CategoryTotal, error) {
	if f.failYearly {
		return nil, errors.New("connection refused")
	}
	if year != 2024 {
		return nil, nil
	}
	// total DESC, value ASC: A and B tie on 300.
	return []model.CategoryTotal{
		{Value: "A", Total: 300},
		{Value: "B", Total: 300},
	}, nil
}

func (f *fakeAnalyticsRepo) MonthlySumsForValue(ctx context.Context, year int, category model.Category, value string) (map[int]float64, error) {
	if f.failMonthly {
		return nil, errors.New("connection refused")
	}
	if year != 2024 {
		return nil, nil
	}
	switch value {
	case "A":
		return map[int]float64{6: 300}, nil
	case "B":
		return map[int]float64{6: 300}, nil
	}
	return nil, nil
}

func (f *fakeAnalyticsRepo) MonthlyTotals(ctx context.Context, year int) (map[int]float64, error) {
	if year != 2024 {
		return nil, nil
	}
	return map[int]float64{6: 600}, nil
}

func (f *fakeAnalyticsRepo) DailyTotals(ctx context.Context, year, month int) (map[int]float64, error) {
	if year == 2024 && month == 6 {
		return map[int]float64{1: 600}, nil
	}
	return nil, nil
}

func (f *fakeAnalyticsRepo) YearTotal(ctx context.Context, year int) (float64, error) {
	if year != 2024 {
		return 0, nil
	}
	return 600, nil
}

func TestAggregateRevenue(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{}, nil)

	summary, err := svc.AggregateRevenue(context.Background(), 2024, model.CategoryDoctor)
	require.NoError(t, err)

	// Tied totals come back in value order.
	require.Len(t, summary.CategoryTotals, 2)
	assert.Equal(t, model.CategoryTotal{Value: "A", Total: 300}, summary.CategoryTotals[0])
	assert.Equal(t, model.CategoryTotal{Value: "B", Total: 300}, summary.CategoryTotals[1])

	// Breakdowns follow the step-1 order and are dense.
	require.Len(t, summary.PerCategoryMonthly, 2)
	assert.Equal(t, "A", summary.PerCategoryMonthly[0].Value)
	assert.Equal(t, "B", summary.PerCategoryMonthly[1].Value)
	for _, cm := range summary.PerCategoryMonthly {
		require.Len(t, cm.Months, 12)
	}

	require.Len(t, summary.GrandMonthly, 12)
	assert.Equal(t, 600.0, summary.GrandMonthly[5].Value)
	assert.Equal(t, 600.0, summary.GrandTotal)
	assert.Equal(t, "600", summary.GrandTotalDisplay)
}

func TestAggregateRevenueColumnSums(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{}, nil)

	summary, err := svc.AggregateRevenue(context.Background(), 2024, model.CategoryDoctor)
	require.NoError(t, err)

	// Per-value monthly sums must add up to the grand monthly value for every
	// month, and the grand monthly series to the grand total.
	for m := 0; m < 12; m++ {
		var sum float64
		for _, cm := range summary.PerCategoryMonthly {
			sum += cm.Months[m].Value
		}
		assert.Equal(t, summary.GrandMonthly[m].Value, sum, "month %d", m+1)
	}

	var grand float64
	for _, e := range summary.GrandMonthly {
		grand += e.Value
	}
	assert.Equal(t, summary.GrandTotal, grand)
}

func TestAggregateRevenueEmptyYear(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{}, nil)

	summary, err := svc.AggregateRevenue(context.Background(), 2019, model.CategoryDoctor)
	require.NoError(t, err)

	assert.Empty(t, summary.CategoryTotals)
	assert.Empty(t, summary.PerCategoryMonthly)
	require.Len(t, summary.GrandMonthly, 12)
	for _, e := range summary.GrandMonthly {
		assert.Zero(t, e.Value)
	}
	assert.Zero(t, summary.GrandTotal)
}

func TestAggregateRevenueIdempotent(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{}, nil)

	first, err := svc.AggregateRevenue(context.Background(), 2024, model.CategoryDoctor)
	require.NoError(t, err)
	second, err := svc.AggregateRevenue(context.Background(), 2024, model.CategoryDoctor)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregateRevenueInvalidInput(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{}, nil)

	_, err := svc.AggregateRevenue(context.Background(), 24, model.CategoryDoctor)
	assert.True(t, apperror.IsKind(err, apperror.KindInput))

	_, err = svc.AggregateRevenue(context.Background(), 2024, model.Category("cost; DROP TABLE appointments"))
	assert.True(t, apperror.IsKind(err, apperror.KindInput))
}

func TestAggregateRevenueFetchError(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{failYearly: true}, nil)

	summary, err := svc.AggregateRevenue(context.Background(), 2024, model.CategoryDoctor)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindFetch))
	assert.Nil(t, summary, "a failed fetch must not produce a zero-filled summary")
}

func TestAggregateRevenueFanOutFetchError(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{failMonthly: true}, nil)

	summary, err := svc.AggregateRevenue(context.Background(), 2024, model.CategoryDoctor)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindFetch))
	assert.Nil(t, summary)
}

func TestDailyRevenue(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{}, nil)

	daily, err := svc.DailyRevenue(context.Background(), 2024, 6)
	require.NoError(t, err)

	require.Len(t, daily.Days, 31)
	assert.Equal(t, 600.0, daily.Days[0].Value)
	for _, e := range daily.Days[1:] {
		assert.Zero(t, e.Value)
	}

	_, err = svc.DailyRevenue(context.Background(), 2024, 13)
	assert.True(t, apperror.IsKind(err, apperror.KindInput))
}
