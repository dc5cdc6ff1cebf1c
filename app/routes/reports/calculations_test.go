package reports

import (
	"testing"
	"time"

	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDateRange(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"both empty", "", "", false},
		{"valid range", "2026-03-01", "2026-03-10", false},
		{"start only", "2026-03-01", "", false},
		{"end only", "", "2026-03-10", false},
		{"same day", "2026-03-10", "2026-03-10", false},
		{"today is allowed", "2026-03-15", "2026-03-15", false},
		{"start after end", "2026-03-10", "2026-03-01", true},
		{"start in future", "2026-03-16", "", true},
		{"end in future", "", "2026-04-01", true},
		{"garbage start", "soon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateDateRange(tt.start, tt.end, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func entry(ps, total string, date time.Time) *models.Production {
	return &models.Production{
		PS:    decimal.RequireFromString(ps),
		Total: decimal.RequireFromString(total),
		Date:  date,
	}
}

func TestSummarizeTotals(t *testing.T) {
	march := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	entries := []*models.Production{
		entry("100", "500", march),
		entry("40", "200", march.AddDate(0, 0, 3)),
	}

	summary := Summarize(entries)

	assert.True(t, summary.TotalPS.Equal(decimal.NewFromInt(140)))
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, 2, summary.TotalEntries)
}

func TestSummarizeGrowthBucketsByMonthChronologically(t *testing.T) {
	jan := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	// entries arrive newest first, the way the query returns them
	entries := []*models.Production{
		entry("30", "150", feb),
		entry("10", "50", jan),
		entry("20", "100", jan),
	}

	summary := Summarize(entries)
	require.Len(t, summary.Growth, 2)

	assert.Equal(t, "2026-01", summary.Growth[0].Month)
	assert.True(t, summary.Growth[0].TotalPS.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "2026-02", summary.Growth[1].Month)
	assert.True(t, summary.Growth[1].TotalPS.Equal(decimal.NewFromInt(30)))
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.TotalPS.IsZero())
	assert.True(t, summary.TotalAmount.IsZero())
	assert.Equal(t, 0, summary.TotalEntries)
	assert.NotNil(t, summary.Entries)
	assert.Empty(t, summary.Growth)
}
