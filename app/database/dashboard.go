package database

import (
	"database/sql"
	"time"

	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
)

// GetDashboardStats builds the combined dashboard payload. Production sums
// count approved entries only, the same rule the reports use.
func GetDashboardStats(db *sql.DB, now time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	// 1. Total employees
	total, err := CountEmployees(db)
	if err != nil {
		return nil, err
	}
	stats.TotalEmployees = total

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// 2. Production totals for today and the current month
	stats.TodayProduction, err = getProductionTotalsSince(db, startOfToday)
	if err != nil {
		return nil, err
	}
	stats.MonthlyProduction, err = getProductionTotalsSince(db, startOfMonth)
	if err != nil {
		return nil, err
	}

	// 3. Outstanding pending payment amount, no date filter
	stats.PendingPayments, err = getPendingPaymentTotal(db)
	if err != nil {
		return nil, err
	}

	// 4. Five most recent production entries
	stats.RecentProduction, err = getRecentProduction(db, 5)
	if err != nil {
		return nil, err
	}

	// 5. Five most recent pending payments
	stats.RecentPendingPayments, err = getRecentPendingPayments(db, 5)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func getProductionTotalsSince(db *sql.DB, since time.Time) (models.ProductionTotals, error) {
	totals := models.ProductionTotals{TotalPS: decimal.Zero, TotalAmount: decimal.Zero}
	query := `SELECT COALESCE(SUM(ps), 0), COALESCE(SUM(total), 0)
	          FROM production
	          WHERE status = $1 AND date >= $2`
	err := db.QueryRow(query, models.ProductionApproved, since).
		Scan(&totals.TotalPS, &totals.TotalAmount)
	return totals, err
}

func getPendingPaymentTotal(db *sql.DB) (decimal.Decimal, error) {
	total := decimal.Zero
	query := `SELECT COALESCE(SUM(amount), 0)
	          FROM payments
	          WHERE status = $1`
	err := db.QueryRow(query, models.PaymentPending).Scan(&total)
	return total, err
}

func getRecentProduction(db *sql.DB, limit int) ([]*models.Production, error) {
	query := `SELECT ` + productionColumns + `, e.name
	          FROM production p
	          LEFT JOIN employees e ON e.id = p.employee_id
	          ORDER BY p.created_at DESC
	          LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var productions []*models.Production
	for rows.Next() {
		p, err := scanProduction(rows)
		if err != nil {
			return nil, err
		}
		productions = append(productions, p)
	}
	return productions, rows.Err()
}

func getRecentPendingPayments(db *sql.DB, limit int) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + `, e.name
	          FROM payments pm
	          LEFT JOIN employees e ON e.id = pm.employee_id
	          WHERE pm.status = $1
	          ORDER BY pm.date DESC
	          LIMIT $2`

	rows, err := db.Query(query, models.PaymentPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		pm, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, pm)
	}
	return payments, rows.Err()
}
