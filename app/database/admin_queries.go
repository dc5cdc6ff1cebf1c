package database

import (
	"database/sql"

	"github.com/shanfullstackdev/factory-management-system/app/models"
)

// CreateAdmin inserts a new admin account. The caller hashes the password.
func CreateAdmin(db *sql.DB, admin *models.Admin) error {
	query := `INSERT INTO admins (username, password)
	          VALUES ($1, $2)
	          RETURNING id, created_at`
	return db.QueryRow(query, admin.Username, admin.Password).
		Scan(&admin.ID, &admin.CreatedAt)
}

// GetAdminByUsername returns sql.ErrNoRows when the username is unknown.
func GetAdminByUsername(db *sql.DB, username string) (*models.Admin, error) {
	admin := &models.Admin{}
	query := `SELECT id, username, password, created_at
	          FROM admins
	          WHERE username = $1`
	err := db.QueryRow(query, username).
		Scan(&admin.ID, &admin.Username, &admin.Password, &admin.CreatedAt)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// AdminExists reports whether any admin account has been registered yet.
func AdminExists(db *sql.DB, username string) (bool, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM admins WHERE username = $1", username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
