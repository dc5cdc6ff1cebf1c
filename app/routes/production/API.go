package production

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
	"github.com/shanfullstackdev/factory-management-system/app/models"
)

// EmployeeSubmitAPI records an employee's own entry; it always starts
// pending and waits for admin review.
func EmployeeSubmitAPI(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}

	p, err := NewProduction(req, models.SubmittedByEmployee, time.Now())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	if err := database.CreateProduction(config.GetDB(), p); err != nil {
		log.Printf("employee submit failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Production submitted for admin approval",
		"production": p,
	})
}

// AdminAddAPI records a direct admin entry; it bypasses review and starts
// approved.
func AdminAddAPI(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}

	p, err := NewProduction(req, models.SubmittedByAdmin, time.Now())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	if err := database.CreateProduction(config.GetDB(), p); err != nil {
		log.Printf("admin add failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Production added successfully",
		"production": p,
	})
}

// GetApprovedAPI lists approved entries for the admin production page.
func GetApprovedAPI(c *fiber.Ctx) error {
	return listByStatus(c, models.ProductionApproved)
}

// GetPendingAPI lists entries awaiting review.
func GetPendingAPI(c *fiber.Ctx) error {
	return listByStatus(c, models.ProductionPending)
}

func listByStatus(c *fiber.Ctx, status models.ProductionStatus) error {
	productions, err := database.GetProductionsByStatus(config.GetDB(), status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	if productions == nil {
		productions = []*models.Production{}
	}
	return c.JSON(productions)
}

// GetMyProductionsAPI lists one employee's entries for the employee pages.
func GetMyProductionsAPI(c *fiber.Ctx) error {
	productions, err := database.GetProductionsByEmployee(config.GetDB(), c.Params("employeeId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	if productions == nil {
		productions = []*models.Production{}
	}
	return c.JSON(productions)
}

// GetProductionAPI returns a single entry with the employee name resolved.
func GetProductionAPI(c *fiber.Ctx) error {
	p, err := database.GetProductionByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(p)
}

// UpdateProductionAPI edits an entry's fields and recomputes the total.
// Edits are not state transitions: the status is never touched here, an
// approved entry stays approved whatever changes.
func UpdateProductionAPI(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}

	db := config.GetDB()
	p, err := database.GetProductionByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Production not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	if err := ApplyUpdate(p, req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	if err := database.UpdateProduction(db, p); err != nil {
		log.Printf("update production failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message": "Production updated",
		"prod":    p,
	})
}

// ApproveAPI transitions pending to approved. There is no transition back.
func ApproveAPI(c *fiber.Ctx) error {
	p, err := database.ApproveProduction(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Production not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message": "Production approved",
		"prod":    p,
	})
}

// RejectAPI deletes the entry outright. Rejected entries are not retained.
func RejectAPI(c *fiber.Ctx) error {
	return deleteProduction(c, "Production rejected and deleted")
}

// DeleteProductionAPI is the generic delete from the admin pages.
func DeleteProductionAPI(c *fiber.Ctx) error {
	return deleteProduction(c, "Production deleted")
}

func deleteProduction(c *fiber.Ctx, message string) error {
	err := database.DeleteProduction(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Production not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"message": message})
}
