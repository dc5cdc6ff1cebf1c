package models

import "github.com/shopspring/decimal"

// ProductionTotals is a windowed roll-up of approved production.
type ProductionTotals struct {
	TotalPS     decimal.Decimal `json:"totalPS"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// DashboardStats is the combined payload for the admin dashboard.
type DashboardStats struct {
	TotalEmployees        int              `json:"totalEmployees"`
	TodayProduction       ProductionTotals `json:"todayProduction"`
	MonthlyProduction     ProductionTotals `json:"monthlyProduction"`
	PendingPayments       decimal.Decimal  `json:"pendingPayments"`
	RecentProduction      []*Production    `json:"recentProduction"`
	RecentPendingPayments []*Payment       `json:"recentPendingPayments"`
}

// PaymentSummary partitions the payment ledger into paid and pending buckets.
type PaymentSummary struct {
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalPending decimal.Decimal `json:"totalPending"`
	TodayPending decimal.Decimal `json:"todayPending"`
	MonthlyPaid  decimal.Decimal `json:"monthlyPaid"`
	TotalRecords int             `json:"totalRecords"`
}

// MonthlyGrowth is one point of the report chart: ps summed per calendar month.
type MonthlyGrowth struct {
	Month   string          `json:"month"` // YYYY-MM
	TotalPS decimal.Decimal `json:"totalPS"`
}

// ReportSummary is the server-side report aggregation over approved entries.
type ReportSummary struct {
	TotalPS      decimal.Decimal `json:"totalPS"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	TotalEntries int             `json:"totalEntries"`
	Entries      []*Production   `json:"entries"`
	Growth       []MonthlyGrowth `json:"growth"`
}
