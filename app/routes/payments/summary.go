package payments

import (
	"time"

	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
)

// ComputeSummary partitions the payment ledger into paid and pending
// buckets and adds the two windowed figures the summary cards show. Pure
// function over an already-fetched snapshot; underlying records are never
// touched.
func ComputeSummary(payments []*models.Payment, now time.Time) *models.PaymentSummary {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	summary := &models.PaymentSummary{
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
		TodayPending: decimal.Zero,
		MonthlyPaid:  decimal.Zero,
		TotalRecords: len(payments),
	}

	for _, pm := range payments {
		if pm.Status == models.PaymentPaid {
			summary.TotalPaid = summary.TotalPaid.Add(pm.Amount)
			if !pm.Date.Before(startOfMonth) {
				summary.MonthlyPaid = summary.MonthlyPaid.Add(pm.Amount)
			}
		} else {
			summary.TotalPending = summary.TotalPending.Add(pm.Amount)
			if !pm.Date.Before(startOfToday) {
				summary.TodayPending = summary.TodayPending.Add(pm.Amount)
			}
		}
	}

	return summary
}
