package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{42.6, "43"},
		{42.4, "42"},
		{1234567.8, "1,234,568"},
		{1000000, "1,000,000"},
		{-1234.5, "-1,235"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Thousands(tt.in), "Thousands(%v)", tt.in)
	}
}
