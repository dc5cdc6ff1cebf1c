package main

import (
	"flag"
	"fmt"

	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shanfullstackdev/factory-management-system/app/routes/auth"
)

// Bootstrap tool for creating the admin account from the command line,
// for setups where the one-time /api/auth/register call is not convenient.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		fmt.Println("password is required")
		return
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	exists, err := database.AdminExists(db, *username)
	if err != nil {
		fmt.Printf("Error checking admin: %v\n", err)
		return
	}
	if exists {
		fmt.Printf("Admin %q already exists\n", *username)
		return
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	admin := &models.Admin{Username: *username, Password: hashed}
	if err := database.CreateAdmin(db, admin); err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
		return
	}

	fmt.Printf("Admin created successfully: %s\n", admin.Username)
}
