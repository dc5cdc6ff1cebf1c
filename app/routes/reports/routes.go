package reports

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/routes/auth"
)

func SetupReportRoutes(app *fiber.App) {
	group := app.Group("/api/reports", auth.AdminMiddleware)

	group.Get("/", GetReportAPI)
	group.Get("/export", ExportReportAPI)
}
