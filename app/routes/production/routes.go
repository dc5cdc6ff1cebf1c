package production

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/routes/auth"
)

func SetupProductionRoutes(app *fiber.App) {
	group := app.Group("/api/production")

	// Employee self-submission goes through OTP login on the client side;
	// the entry always lands in pending.
	group.Post("/employee-submit", EmployeeSubmitAPI)

	group.Get("/approved", GetApprovedAPI)
	group.Get("/pending", GetPendingAPI)
	group.Get("/my/:employeeId", GetMyProductionsAPI)
	group.Get("/:id", GetProductionAPI)

	// Admin only
	group.Post("/", auth.AdminMiddleware, AdminAddAPI)
	group.Put("/:id/approve", auth.AdminMiddleware, ApproveAPI)
	group.Put("/:id", auth.AdminMiddleware, UpdateProductionAPI)
	group.Delete("/:id/reject", auth.AdminMiddleware, RejectAPI)
	group.Delete("/:id", auth.AdminMiddleware, DeleteProductionAPI)
}
