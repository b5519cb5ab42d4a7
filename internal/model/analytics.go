package model

import (
	"github.com/spqrod/dr-watson-dashboard-server/pkg/bucket"
)

// Category is a closed grouping dimension for revenue analytics. Only values
// from this set ever reach query construction; caller input never does.
type Category string

const (
	CategoryDoctor    Category = "doctor"
	CategoryTreatment Category = "treatment"
	CategoryPayment   Category = "payment"
)

// Valid reports whether the category belongs to the permitted set.
func (c Category) Valid() bool {
	switch c {
	case CategoryDoctor, CategoryTreatment, CategoryPayment:
		return true
	}
	return false
}

// Column returns the whitelisted column name for query construction. It must
// only be called on a validated category.
func (c Category) Column() string { return string(c) }

// CategoryTotal is one category value with its yearly cost total.
type CategoryTotal struct {
	Value string  `db:"value" json:"value"`
	Total float64 `db:"total" json:"total"`
}

// CategoryMonthly is the dense 12-month cost breakdown of one category value.
type CategoryMonthly struct {
	Value  string                       `json:"value"`
	Months []bucket.Entry[int, float64] `json:"months"`
}

// RevenueSummary is the composed revenue report for one year and category.
type RevenueSummary struct {
	Year               int                          `json:"year"`
	Category           Category                     `json:"category"`
	CategoryTotals     []CategoryTotal              `json:"categoryTotals"`
	PerCategoryMonthly []CategoryMonthly            `json:"perCategoryMonthly"`
	GrandMonthly       []bucket.Entry[int, float64] `json:"grandMonthly"`
	GrandTotal         float64                      `json:"grandTotal"`
	GrandTotalDisplay  string                       `json:"grandTotalDisplay"`
}

// DailyRevenue is the dense per-day cost breakdown of one month.
type DailyRevenue struct {
	Year  int                          `json:"year"`
	Month int                          `json:"month"`
	Days  []bucket.Entry[int, float64] `json:"days"`
}
