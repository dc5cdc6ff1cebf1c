package payments

import (
	"testing"
	"time"

	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func payment(amount string, status models.PaymentStatus, date time.Time) *models.Payment {
	return &models.Payment{
		Amount: decimal.RequireFromString(amount),
		Status: status,
		Date:   date,
	}
}

func TestComputeSummaryPartition(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	lastMonth := now.AddDate(0, -1, 0)

	payments := []*models.Payment{
		payment("1000", models.PaymentPaid, now),
		payment("500", models.PaymentPaid, lastMonth),
		payment("300", models.PaymentPending, now),
		payment("200", models.PaymentPending, yesterday),
	}

	summary := ComputeSummary(payments, now)

	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(1500)))
	assert.True(t, summary.TotalPending.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.TodayPending.Equal(decimal.NewFromInt(300)),
		"yesterday's pending payment is outside the today window")
	assert.True(t, summary.MonthlyPaid.Equal(decimal.NewFromInt(1000)),
		"last month's paid payment is outside the month window")
	assert.Equal(t, 4, summary.TotalRecords)
}

func TestComputeSummaryEmpty(t *testing.T) {
	summary := ComputeSummary(nil, time.Now())

	assert.True(t, summary.TotalPaid.IsZero())
	assert.True(t, summary.TotalPending.IsZero())
	assert.True(t, summary.TodayPending.IsZero())
	assert.True(t, summary.MonthlyPaid.IsZero())
	assert.Equal(t, 0, summary.TotalRecords)
}

func TestComputeSummaryStartOfDayBoundary(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	startOfToday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	payments := []*models.Payment{
		payment("50", models.PaymentPending, startOfToday),
		payment("70", models.PaymentPending, startOfToday.Add(-time.Second)),
	}

	summary := ComputeSummary(payments, now)
	assert.True(t, summary.TodayPending.Equal(decimal.NewFromInt(50)),
		"midnight itself counts, one second before does not")
}
