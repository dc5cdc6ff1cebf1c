package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
)

// GetDashboardAPI returns the combined summary payload for the admin
// dashboard. Read-only snapshot; a write racing the queries may show a
// partially updated picture, which is accepted.
func GetDashboardAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB(), time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to fetch dashboard statistics"})
	}
	return c.JSON(stats)
}
