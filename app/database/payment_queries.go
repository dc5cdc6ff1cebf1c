package database

import (
	"database/sql"

	"github.com/shanfullstackdev/factory-management-system/app/models"
)

const paymentColumns = `pm.id, pm.employee_id, pm.amount, pm.status, pm.date,
	COALESCE(pm.notes, ''), pm.period_start, pm.period_end, pm.created_at, pm.updated_at`

func scanPayment(scanner interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	pm := &models.Payment{}
	var name sql.NullString
	err := scanner.Scan(
		&pm.ID, &pm.EmployeeID, &pm.Amount, &pm.Status, &pm.Date,
		&pm.Notes, &pm.PeriodStart, &pm.PeriodEnd, &pm.CreatedAt, &pm.UpdatedAt,
		&name,
	)
	if err != nil {
		return nil, err
	}
	pm.EmployeeName = name.String
	return pm, nil
}

// CreatePayment records a manually entered payment.
func CreatePayment(db *sql.DB, pm *models.Payment) error {
	query := `INSERT INTO payments (employee_id, amount, status, date, notes, period_start, period_end)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		pm.EmployeeID, pm.Amount, pm.Status, pm.Date, pm.Notes, pm.PeriodStart, pm.PeriodEnd,
	).Scan(&pm.ID, &pm.CreatedAt, &pm.UpdatedAt)
}

// GetPayments retrieves the whole ledger, newest first, with employee names
// resolved for display.
func GetPayments(db *sql.DB) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + `, e.name
	          FROM payments pm
	          LEFT JOIN employees e ON e.id = pm.employee_id
	          ORDER BY pm.date DESC`

	rows, err := db.Query(query)
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

// GetPaymentByID returns sql.ErrNoRows when the id is unknown.
func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	if !validUUID(id) {
		return nil, sql.ErrNoRows
	}
	query := `SELECT ` + paymentColumns + `, e.name
	          FROM payments pm
	          LEFT JOIN employees e ON e.id = pm.employee_id
	          WHERE pm.id = $1`
	return scanPayment(db.QueryRow(query, id))
}

// GetPaymentsByEmployee lists one employee's payments, newest first.
func GetPaymentsByEmployee(db *sql.DB, employeeID string) ([]*models.Payment, error) {
	if !validUUID(employeeID) {
		return nil, nil
	}
	query := `SELECT ` + paymentColumns + `, e.name
	          FROM payments pm
	          LEFT JOIN employees e ON e.id = pm.employee_id
	          WHERE pm.employee_id = $1
	          ORDER BY pm.date DESC`

	rows, err := db.Query(query, employeeID)
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

// UpdatePayment writes the mutable fields back.
func UpdatePayment(db *sql.DB, pm *models.Payment) error {
	query := `UPDATE payments
	          SET employee_id = $1, amount = $2, status = $3, date = $4,
	              notes = $5, period_start = $6, period_end = $7, updated_at = NOW()
	          WHERE id = $8
	          RETURNING updated_at`
	return db.QueryRow(query,
		pm.EmployeeID, pm.Amount, pm.Status, pm.Date, pm.Notes,
		pm.PeriodStart, pm.PeriodEnd, pm.ID,
	).Scan(&pm.UpdatedAt)
}

// DeletePayment removes a payment record.
func DeletePayment(db *sql.DB, id string) error {
	if !validUUID(id) {
		return sql.ErrNoRows
	}
	result, err := db.Exec("DELETE FROM payments WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
