package payments

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/routes/auth"
)

func SetupPaymentRoutes(app *fiber.App) {
	group := app.Group("/api/payments")

	// /summary must be registered before /:id
	group.Get("/summary", GetSummaryAPI)
	group.Get("/my/:employeeId", GetMyPaymentsAPI)
	group.Get("/", GetPaymentsAPI)
	group.Get("/:id", GetPaymentAPI)

	// Admin only
	group.Post("/", auth.AdminMiddleware, CreatePaymentAPI)
	group.Put("/:id", auth.AdminMiddleware, UpdatePaymentAPI)
	group.Delete("/:id", auth.AdminMiddleware, DeletePaymentAPI)
}
