// Package format holds display transforms applied after aggregation. Sums are
// computed on raw values and only formatted at the edge, so rounding never
// leaks into totals.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Thousands rounds v to the nearest integer and inserts a separator every
// three digits from the right, e.g. 1234567.8 -> "1,234,568".
func Thousands(v float64) string {
	n := int64(math.Round(v))

	neg := n < 0
	if neg {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
