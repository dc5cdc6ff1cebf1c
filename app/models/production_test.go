package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalcTotal(t *testing.T) {
	tests := []struct {
		name  string
		ps    string
		rate  string
		total string
	}{
		{"whole numbers", "100", "5", "500"},
		{"fractional rate", "3", "2.50", "7.50"},
		{"fractional quantity", "1.5", "4", "6"},
		{"exact decimal product", "0.1", "0.2", "0.02"},
		{"zero quantity", "0", "10", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Production{
				PS:   decimal.RequireFromString(tt.ps),
				Rate: decimal.RequireFromString(tt.rate),
			}
			p.CalcTotal()
			assert.True(t, p.Total.Equal(decimal.RequireFromString(tt.total)),
				"expected %s, got %s", tt.total, p.Total)
		})
	}
}

func TestCalcTotalOverwritesStaleValue(t *testing.T) {
	p := &Production{
		PS:    decimal.NewFromInt(10),
		Rate:  decimal.NewFromInt(3),
		Total: decimal.NewFromInt(999),
	}
	p.CalcTotal()
	assert.True(t, p.Total.Equal(decimal.NewFromInt(30)))
}
