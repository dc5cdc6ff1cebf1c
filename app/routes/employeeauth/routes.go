package employeeauth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/services"
)

// otpStore is installed once at startup; Redis when configured, in-process
// memory otherwise.
var otpStore services.OTPStore

func SetupEmployeeAuthRoutes(app *fiber.App, store services.OTPStore) {
	otpStore = store

	group := app.Group("/api/employee-auth")
	group.Post("/send-otp", SendOTPAPI)
	group.Post("/verify-otp", VerifyOTPAPI)
}
