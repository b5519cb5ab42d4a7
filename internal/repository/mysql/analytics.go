package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
)

// The analytics queries return sparse rows only; months, days and quarters
// with no data never appear here. The aggregators fill the gaps.

func (r *analyticsRepository) YearlyTotalsByCategory(ctx context.Context, year int, category model.Category) ([]model.CategoryTotal, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("invalid category %q", category)
	}

	// Ties on the total are broken by value so the ordering is deterministic.
	col := category.Column()
	query := fmt.Sprintf(`
		SELECT %s AS value, SUM(cost) AS total
		FROM appointments
		WHERE YEAR(date) = ?
		GROUP BY %s
		ORDER BY total DESC, value ASC
	`, col, col)

	var totals []model.CategoryTotal
	start := time.Now()
	err := r.db.SelectContext(ctx, &totals, query, year)
	r.m.ObserveQuery("analytics_yearly_totals", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get yearly totals by %s: %w", col, err)
	}
	return totals, nil
}

func (r *analyticsRepository) MonthlySumsForValue(ctx context.Context, year int, category model.Category, value string) (map[int]float64, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("invalid category %q", category)
	}

	query := fmt.Sprintf(`
		SELECT MONTH(date) AS k, SUM(cost) AS v
		FROM appointments
		WHERE YEAR(date) = ? AND %s = ?
		GROUP BY MONTH(date)
	`, category.Column())

	start := time.Now()
	sums, err := r.selectSparse(ctx, query, year, value)
	r.m.ObserveQuery("analytics_monthly_sums_for_value", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly sums for %s %q: %w", category.Column(), value, err)
	}
	return sums, nil
}

func (r *analyticsRepository) MonthlyTotals(ctx context.Context, year int) (map[int]float64, error) {
	query := `
		SELECT MONTH(date) AS k, SUM(cost) AS v
		FROM appointments
		WHERE YEAR(date) = ?
		GROUP BY MONTH(date)
	`
	start := time.Now()
	totals, err := r.selectSparse(ctx, query, year)
	r.m.ObserveQuery("analytics_monthly_totals", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}
	return totals, nil
}

func (r *analyticsRepository) DailyTotals(ctx context.Context, year, month int) (map[int]float64, error) {
	query := `
		SELECT DAY(date) AS k, SUM(cost) AS v
		FROM appointments
		WHERE YEAR(date) = ? AND MONTH(date) = ?
		GROUP BY DAY(date)
	`
	start := time.Now()
	totals, err := r.selectSparse(ctx, query, year, month)
	r.m.ObserveQuery("analytics_daily_totals", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}
	return totals, nil
}

func (r *analyticsRepository) YearTotal(ctx context.Context, year int) (float64, error) {
	query := "SELECT IFNULL(SUM(cost), 0) FROM appointments WHERE YEAR(date) = ?"

	var total float64
	start := time.Now()
	err := r.db.GetContext(ctx, &total, query, year)
	r.m.ObserveQuery("analytics_year_total", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to get year total: %w", err)
	}
	return total, nil
}

func (r *analyticsRepository) selectSparse(ctx context.Context, query string, args ...interface{}) (map[int]float64, error) {
	rows := []struct {
		K int     `db:"k"`
		V float64 `db:"v"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make(map[int]float64, len(rows))
	for _, row := range rows {
		out[row.K] = row.V
	}
	return out, nil
}
