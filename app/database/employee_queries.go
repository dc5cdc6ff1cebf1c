package database

import (
	"database/sql"

	"github.com/shanfullstackdev/factory-management-system/app/models"
)

// CreateEmployee inserts a new employee. A duplicate mobile number surfaces
// as a unique violation from the database.
func CreateEmployee(db *sql.DB, employee *models.Employee) error {
	query := `INSERT INTO employees (name, mobile, address, rate)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	return db.QueryRow(query,
		employee.Name,
		employee.Mobile,
		employee.Address,
		employee.Rate,
	).Scan(&employee.ID)
}

// GetEmployees retrieves all employees ordered by name.
func GetEmployees(db *sql.DB) ([]*models.Employee, error) {
	query := `SELECT id, name, mobile, COALESCE(address, ''), rate
	          FROM employees
	          ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e := &models.Employee{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Mobile, &e.Address, &e.Rate); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// GetEmployeeByMobile looks an employee up by login mobile number.
func GetEmployeeByMobile(db *sql.DB, mobile string) (*models.Employee, error) {
	e := &models.Employee{}
	query := `SELECT id, name, mobile, COALESCE(address, ''), rate
	          FROM employees
	          WHERE mobile = $1`
	err := db.QueryRow(query, mobile).
		Scan(&e.ID, &e.Name, &e.Mobile, &e.Address, &e.Rate)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEmployee removes the employee row only. Production and payment
// records that reference it are left untouched; their employee name simply
// stops resolving.
func DeleteEmployee(db *sql.DB, id string) error {
	if !validUUID(id) {
		return sql.ErrNoRows
	}
	result, err := db.Exec("DELETE FROM employees WHERE id = $1", id)
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

// CountEmployees returns the total number of employees for the dashboard.
func CountEmployees(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM employees").Scan(&count)
	return count, err
}
