package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shanfullstackdev/factory-management-system/app/models"
)

// ReportFilters narrows the report query. Zero values mean "no filter"; End
// is inclusive through the end of that day.
type ReportFilters struct {
	EmployeeID string
	Start      time.Time
	End        time.Time
}

// GetApprovedProductions fetches approved entries matching the filters,
// newest first. Totals and the growth series are computed by the caller.
func GetApprovedProductions(db *sql.DB, filters ReportFilters) ([]*models.Production, error) {
	query := `SELECT ` + productionColumns + `, e.name
	          FROM production p
	          LEFT JOIN employees e ON e.id = p.employee_id
	          WHERE p.status = $1`
	args := []interface{}{models.ProductionApproved}

	if filters.EmployeeID != "" && !validUUID(filters.EmployeeID) {
		return nil, nil
	}
	if filters.EmployeeID != "" {
		args = append(args, filters.EmployeeID)
		query += fmt.Sprintf(" AND p.employee_id = $%d", len(args))
	}
	if !filters.Start.IsZero() {
		args = append(args, filters.Start)
		query += fmt.Sprintf(" AND p.date >= $%d", len(args))
	}
	if !filters.End.IsZero() {
		// inclusive range: everything before the start of the next day
		args = append(args, filters.End.AddDate(0, 0, 1))
		query += fmt.Sprintf(" AND p.date < $%d", len(args))
	}
	query += " ORDER BY p.date DESC"

	rows, err := db.Query(query, args...)
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
