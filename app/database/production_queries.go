package database

import (
	"database/sql"

	"github.com/shanfullstackdev/factory-management-system/app/models"
)

const productionColumns = `p.id, p.employee_id, p.ps, COALESCE(p.design_name, ''), p.rate,
	p.total, p.date, p.status, p.submitted_by, p.created_at, p.updated_at`

// scanProduction reads one production row joined with the employee name.
// The join is a LEFT JOIN on purpose: entries survive employee deletion and
// then resolve to an empty name.
func scanProduction(scanner interface{ Scan(...interface{}) error }) (*models.Production, error) {
	p := &models.Production{}
	var name sql.NullString
	err := scanner.Scan(
		&p.ID, &p.EmployeeID, &p.PS, &p.DesignName, &p.Rate,
		&p.Total, &p.Date, &p.Status, &p.SubmittedBy, &p.CreatedAt, &p.UpdatedAt,
		&name,
	)
	if err != nil {
		return nil, err
	}
	p.EmployeeName = name.String
	return p, nil
}

// CreateProduction inserts a new entry. The caller has already stamped total
// and decided the initial status and submitter.
func CreateProduction(db *sql.DB, p *models.Production) error {
	query := `INSERT INTO production (employee_id, ps, design_name, rate, total, date, status, submitted_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		p.EmployeeID, p.PS, p.DesignName, p.Rate, p.Total, p.Date, p.Status, p.SubmittedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// GetProductionsByStatus lists entries in one workflow state, newest first,
// with the employee name resolved for display.
func GetProductionsByStatus(db *sql.DB, status models.ProductionStatus) ([]*models.Production, error) {
	query := `SELECT ` + productionColumns + `, e.name
	          FROM production p
	          LEFT JOIN employees e ON e.id = p.employee_id
	          WHERE p.status = $1
	          ORDER BY p.created_at DESC`

	rows, err := db.Query(query, status)
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

// GetProductionsByEmployee lists one employee's own entries, newest first.
func GetProductionsByEmployee(db *sql.DB, employeeID string) ([]*models.Production, error) {
	if !validUUID(employeeID) {
		return nil, nil
	}
	query := `SELECT ` + productionColumns + `, e.name
	          FROM production p
	          LEFT JOIN employees e ON e.id = p.employee_id
	          WHERE p.employee_id = $1
	          ORDER BY p.created_at DESC`

	rows, err := db.Query(query, employeeID)
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

// GetProductionByID returns sql.ErrNoRows when the id is unknown.
func GetProductionByID(db *sql.DB, id string) (*models.Production, error) {
	if !validUUID(id) {
		return nil, sql.ErrNoRows
	}
	query := `SELECT ` + productionColumns + `, e.name
	          FROM production p
	          LEFT JOIN employees e ON e.id = p.employee_id
	          WHERE p.id = $1`
	return scanProduction(db.QueryRow(query, id))
}

// UpdateProduction writes the mutable fields back. Status is deliberately not
// part of the statement: edits are not state transitions.
func UpdateProduction(db *sql.DB, p *models.Production) error {
	query := `UPDATE production
	          SET employee_id = $1, ps = $2, design_name = $3, rate = $4,
	              total = $5, date = $6, updated_at = NOW()
	          WHERE id = $7
	          RETURNING updated_at`
	return db.QueryRow(query,
		p.EmployeeID, p.PS, p.DesignName, p.Rate, p.Total, p.Date, p.ID,
	).Scan(&p.UpdatedAt)
}

// ApproveProduction transitions a pending entry to approved and returns the
// updated row. sql.ErrNoRows means the id does not exist.
func ApproveProduction(db *sql.DB, id string) (*models.Production, error) {
	if !validUUID(id) {
		return nil, sql.ErrNoRows
	}
	query := `UPDATE production
	          SET status = $1, updated_at = NOW()
	          WHERE id = $2
	          RETURNING id`
	var updatedID string
	if err := db.QueryRow(query, models.ProductionApproved, id).Scan(&updatedID); err != nil {
		return nil, err
	}
	return GetProductionByID(db, updatedID)
}

// DeleteProduction removes an entry unconditionally, whatever its status.
// Reject and plain delete both land here.
func DeleteProduction(db *sql.DB, id string) error {
	if !validUUID(id) {
		return sql.ErrNoRows
	}
	result, err := db.Exec("DELETE FROM production WHERE id = $1", id)
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
