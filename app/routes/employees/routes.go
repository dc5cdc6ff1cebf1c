package employees

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/routes/auth"
)

func SetupEmployeeRoutes(app *fiber.App) {
	group := app.Group("/api/employees")

	group.Get("/", GetEmployeesAPI)

	// Admin only
	group.Post("/", auth.AdminMiddleware, CreateEmployeeAPI)
	group.Delete("/:id", auth.AdminMiddleware, DeleteEmployeeAPI)
}
