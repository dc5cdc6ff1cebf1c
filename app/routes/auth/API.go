package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
	"github.com/shanfullstackdev/factory-management-system/app/models"
)

// RegisterAPI creates the admin account. Registration is one-time: an
// existing username is a conflict, not an update.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Username and password required"})
	}

	db := config.GetDB()

	exists, err := database.AdminExists(db, req.Username)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Database error"})
	}
	if exists {
		return c.Status(400).JSON(fiber.Map{"message": "Admin already exists"})
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Error creating admin"})
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: hashedPassword,
	}
	if err := database.CreateAdmin(db, admin); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Error creating admin"})
	}

	return c.JSON(fiber.Map{"message": "Admin created successfully"})
}

// LoginAPI checks the password and issues a JWT valid for one day.
func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}

	admin, err := database.GetAdminByUsername(config.GetDB(), req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid username"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Login failed"})
	}

	if !CheckPasswordHash(req.Password, admin.Password) {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid password"})
	}

	token, err := GenerateJWT(admin.ID, admin.Username)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Login failed"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
