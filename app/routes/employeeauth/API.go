package employeeauth

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
	"github.com/shanfullstackdev/factory-management-system/app/services"
)

// SendOTPAPI generates a login code for a registered mobile number. The code
// is logged for development; SMS delivery is an external concern.
func SendOTPAPI(c *fiber.Ctx) error {
	type SendOTPRequest struct {
		Mobile string `json:"mobile"`
	}

	var req SendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.Mobile == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Mobile number required"})
	}

	_, err := database.GetEmployeeByMobile(config.GetDB(), req.Mobile)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Failed to send OTP"})
	}

	code := services.GenerateOTP()
	if err := otpStore.Put(req.Mobile, code); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to send OTP"})
	}

	// development delivery channel
	log.Printf("OTP for %s: %s", req.Mobile, code)

	return c.JSON(fiber.Map{"message": "OTP sent successfully"})
}

// VerifyOTPAPI consumes the code on success; a second verify with the same
// pair fails.
func VerifyOTPAPI(c *fiber.Ctx) error {
	type VerifyOTPRequest struct {
		Mobile string `json:"mobile"`
		OTP    string `json:"otp"`
	}

	var req VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.Mobile == "" || req.OTP == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Mobile and OTP required"})
	}

	ok, err := otpStore.Verify(req.Mobile, req.OTP)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "OTP verification failed"})
	}
	if !ok {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid OTP"})
	}

	employee, err := database.GetEmployeeByMobile(config.GetDB(), req.Mobile)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "OTP verification failed"})
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"employeeId": employee.ID,
		"name":       employee.Name,
	})
}
