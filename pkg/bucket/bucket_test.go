package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillDenseOutput(t *testing.T) {
	obs := map[int]float64{3: 150, 7: 42.6}

	filled := Fill(Months(), obs, 0)

	require.Len(t, filled, 12)
	for i, e := range filled {
		assert.Equal(t, i+1, e.Key, "domain order must be preserved")
	}
	assert.Equal(t, 150.0, filled[2].Value)
	assert.Equal(t, 42.6, filled[6].Value)
	for _, e := range filled {
		if e.Key != 3 && e.Key != 7 {
			assert.Zero(t, e.Value, "month %d should default to zero", e.Key)
		}
	}
}

func TestFillEmptyObservations(t *testing.T) {
	filled := Fill(Quarters(), nil, 0)

	require.Len(t, filled, 4)
	for i, e := range filled {
		assert.Equal(t, i+1, e.Key)
		assert.Zero(t, e.Value)
	}
}

func TestFillEmptyDomain(t *testing.T) {
	filled := Fill(nil, map[int]int{1: 5}, 0)
	assert.Empty(t, filled)
}

func TestFillIgnoresKeysOutsideDomain(t *testing.T) {
	obs := map[int]int{13: 99, 2: 7}

	filled := Fill(Months(), obs, 0)

	require.Len(t, filled, 12)
	assert.Equal(t, 7, filled[1].Value)
	for _, e := range filled {
		assert.NotEqual(t, 13, e.Key)
	}
}

func TestFillStringDomain(t *testing.T) {
	domain := []string{"0-1", "1-4", "5-14", "15-120"}
	obs := map[string]int{"1-4": 3}

	filled := Fill(domain, obs, 0)

	require.Len(t, filled, 4)
	assert.Equal(t, "0-1", filled[0].Key)
	assert.Equal(t, 3, filled[1].Value)
	assert.Zero(t, filled[3].Value)
}

func TestDomains(t *testing.T) {
	assert.Len(t, Months(), 12)
	assert.Len(t, Quarters(), 4)
	assert.Len(t, DaysOfMonth(), 31)
	assert.Equal(t, 1, Months()[0])
	assert.Equal(t, 31, DaysOfMonth()[30])
}
