package payments

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
)

// CreatePaymentAPI records a manually entered payment. Amounts are not
// derived from production totals.
func CreatePaymentAPI(c *fiber.Ctx) error {
	type CreatePaymentRequest struct {
		EmployeeID  string          `json:"employeeId"`
		Amount      decimal.Decimal `json:"amount"`
		Status      string          `json:"status"`
		Date        string          `json:"date"`
		Notes       string          `json:"notes"`
		PeriodStart string          `json:"periodStart"`
		PeriodEnd   string          `json:"periodEnd"`
	}

	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.EmployeeID == "" || !req.Amount.IsPositive() {
		return c.Status(400).JSON(fiber.Map{"message": "Employee and amount required"})
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid employee reference"})
	}

	pm := &models.Payment{
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Status:     models.PaymentPending,
		Date:       time.Now(),
		Notes:      req.Notes,
	}
	if req.Status == string(models.PaymentPaid) {
		pm.Status = models.PaymentPaid
	}
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid date"})
		}
		pm.Date = parsed
	}
	if req.PeriodStart != "" {
		parsed, err := parseDate(req.PeriodStart)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid period start"})
		}
		pm.PeriodStart = &parsed
	}
	if req.PeriodEnd != "" {
		parsed, err := parseDate(req.PeriodEnd)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid period end"})
		}
		pm.PeriodEnd = &parsed
	}

	if err := database.CreatePayment(config.GetDB(), pm); err != nil {
		log.Printf("create payment failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(201).JSON(pm)
}

// GetPaymentsAPI returns the full ledger, newest first.
func GetPaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetPayments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return c.JSON(payments)
}

// GetPaymentAPI returns a single payment with the employee name resolved.
func GetPaymentAPI(c *fiber.Ctx) error {
	pm, err := database.GetPaymentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(pm)
}

// GetMyPaymentsAPI lists one employee's payments for the employee pages.
func GetMyPaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetPaymentsByEmployee(config.GetDB(), c.Params("employeeId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return c.JSON(payments)
}

// UpdatePaymentAPI edits the mutable fields of a payment.
func UpdatePaymentAPI(c *fiber.Ctx) error {
	type UpdatePaymentRequest struct {
		EmployeeID  *string          `json:"employeeId"`
		Amount      *decimal.Decimal `json:"amount"`
		Status      *string          `json:"status"`
		Date        *string          `json:"date"`
		Notes       *string          `json:"notes"`
		PeriodStart *string          `json:"periodStart"`
		PeriodEnd   *string          `json:"periodEnd"`
	}

	var req UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}

	db := config.GetDB()
	pm, err := database.GetPaymentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	if req.EmployeeID != nil && *req.EmployeeID != "" {
		if _, err := uuid.Parse(*req.EmployeeID); err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid employee reference"})
		}
		pm.EmployeeID = *req.EmployeeID
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return c.Status(400).JSON(fiber.Map{"message": "Amount must be positive"})
		}
		pm.Amount = *req.Amount
	}
	if req.Status != nil && *req.Status != "" {
		switch models.PaymentStatus(*req.Status) {
		case models.PaymentPending, models.PaymentPaid:
			pm.Status = models.PaymentStatus(*req.Status)
		default:
			return c.Status(400).JSON(fiber.Map{"message": "Invalid status"})
		}
	}
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid date"})
		}
		pm.Date = parsed
	}
	if req.Notes != nil {
		pm.Notes = *req.Notes
	}
	if req.PeriodStart != nil && *req.PeriodStart != "" {
		parsed, err := parseDate(*req.PeriodStart)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid period start"})
		}
		pm.PeriodStart = &parsed
	}
	if req.PeriodEnd != nil && *req.PeriodEnd != "" {
		parsed, err := parseDate(*req.PeriodEnd)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid period end"})
		}
		pm.PeriodEnd = &parsed
	}

	if err := database.UpdatePayment(db, pm); err != nil {
		log.Printf("update payment failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message": "Payment updated",
		"payment": pm,
	})
}

// DeletePaymentAPI removes a payment record.
func DeletePaymentAPI(c *fiber.Ctx) error {
	err := database.DeletePayment(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "Payment deleted"})
}

// GetSummaryAPI partitions the ledger in memory; the window math lives in
// ComputeSummary where it can be tested.
func GetSummaryAPI(c *fiber.Ctx) error {
	payments, err := database.GetPayments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(ComputeSummary(payments, time.Now()))
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
