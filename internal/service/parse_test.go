package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"$1,234.50", 1234.50},
		{"$12,345.67", 12345.67},
		{" 23.10 ", 23.10},
		{"€ 1 000,00", 100000},
		{"40,000", 40000},
		{"-15.5", -15.5},
		{"", 0},
		{"$", 0},
		{"N/A", 0},
		{"abc", 0},
		{"12.3.4", 0},
		{"1e400", 0},
		{"-1e400", 0},
		{"1e3", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.InDelta(t, tt.want, parseAmount(tt.raw), 1e-9)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100", formatAmount(100))
	assert.Equal(t, "200.5", formatAmount(200.5))
	assert.Equal(t, "0", formatAmount(0))
}
