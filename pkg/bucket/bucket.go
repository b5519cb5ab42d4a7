// Package bucket turns sparse observations into dense, ordered series over a
// fixed key domain. Every reporting surface (monthly revenue, quarterly
// attendance, daily totals, age bands) goes through the same mechanism.
package bucket

// Number covers the value types the aggregators produce.
type Number interface {
	~int | ~int64 | ~float64
}

// Entry is one (key, value) pair of a filled series.
type Entry[K comparable, V Number] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Fill produces exactly one entry per domain key, in domain order. Keys absent
// from obs get def. It never fails, including on nil obs or an empty domain.
func Fill[K comparable, V Number](domain []K, obs map[K]V, def V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(domain))
	for _, k := range domain {
		v, ok := obs[k]
		if !ok {
			v = def
		}
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// Months returns the 1..12 key domain.
func Months() []int { return intRange(1, 12) }

// Quarters returns the 1..4 key domain.
func Quarters() []int { return intRange(1, 4) }

// DaysOfMonth returns the 1..31 key domain. Months with fewer days simply
// report zero for the trailing keys.
func DaysOfMonth() []int { return intRange(1, 31) }

func intRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
