package employees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
)

// CreateEmployeeAPI adds a worker. The mobile number must be unique since it
// doubles as the employee login.
func CreateEmployeeAPI(c *fiber.Ctx) error {
	type CreateEmployeeRequest struct {
		Name    string          `json:"name"`
		Mobile  string          `json:"mobile"`
		Address string          `json:"address"`
		Rate    decimal.Decimal `json:"rate"`
	}

	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.Name == "" || req.Mobile == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Name and mobile required"})
	}

	db := config.GetDB()

	// conflict check before any write
	if _, err := database.GetEmployeeByMobile(db, req.Mobile); err == nil {
		return c.Status(400).JSON(fiber.Map{"message": "Mobile number already registered"})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"message": "Database error"})
	}

	employee := &models.Employee{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Address: req.Address,
		Rate:    req.Rate,
	}
	if err := database.CreateEmployee(db, employee); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to create employee"})
	}

	return c.JSON(employee)
}

// GetEmployeesAPI returns all employees.
func GetEmployeesAPI(c *fiber.Ctx) error {
	employees, err := database.GetEmployees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to fetch employees"})
	}
	if employees == nil {
		employees = []*models.Employee{}
	}
	return c.JSON(employees)
}

// DeleteEmployeeAPI removes the employee row. Production and payment records
// that reference it are kept; their employee names stop resolving.
func DeleteEmployeeAPI(c *fiber.Ctx) error {
	err := database.DeleteEmployee(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Failed to delete employee"})
	}
	return c.JSON(fiber.Map{"message": "Employee deleted"})
}
