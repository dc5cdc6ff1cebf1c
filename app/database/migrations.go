package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it is missing. Statements are
// idempotent so the server can run them on every start.
//
// Note: production and payments reference employees by id only. There is
// deliberately no foreign key, so deleting an employee leaves its entries in
// place with a reference that no longer resolves to a name.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS admins (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			username varchar(100) NOT NULL UNIQUE,
			password text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS employees (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			name varchar(200) NOT NULL,
			mobile varchar(20) NOT NULL UNIQUE,
			address text,
			rate numeric(12,2) NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS production (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id uuid NOT NULL,
			ps numeric(12,2) NOT NULL,
			design_name varchar(200),
			rate numeric(12,2) NOT NULL,
			total numeric(14,2) NOT NULL,
			date timestamptz NOT NULL DEFAULT NOW(),
			status varchar(20) NOT NULL DEFAULT 'pending',
			submitted_by varchar(20) NOT NULL DEFAULT 'employee',
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_production_status ON production (status)`,
		`CREATE INDEX IF NOT EXISTS idx_production_employee ON production (employee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_production_date ON production (date)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id uuid NOT NULL,
			amount numeric(14,2) NOT NULL,
			status varchar(20) NOT NULL DEFAULT 'Pending',
			date timestamptz NOT NULL DEFAULT NOW(),
			notes text,
			period_start date,
			period_end date,
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments (status)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_employee ON payments (employee_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
