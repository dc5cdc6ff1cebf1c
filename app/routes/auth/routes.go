package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", RegisterAPI)
	authGroup.Post("/login", LoginAPI)
}

// AdminMiddleware validates the Bearer token and sets the admin context.
func AdminMiddleware(c *fiber.Ctx) error {
	var tokenString string
	header := c.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"message": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid token"})
	}

	c.Locals("admin_id", claims.AdminID)
	c.Locals("admin_username", claims.Username)

	return c.Next()
}
