package reports

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shanfullstackdev/factory-management-system/app/services"
)

// GetReportAPI aggregates approved production over an optional employee
// filter and inclusive date range. The range is validated before any query
// runs.
func GetReportAPI(c *fiber.Ctx) error {
	summary, status, err := buildReport(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}

// ExportReportAPI streams the same report as an .xlsx attachment.
func ExportReportAPI(c *fiber.Ctx) error {
	summary, status, err := buildReport(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}

	data, err := services.GenerateReportExcel(summary)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to generate report file"})
	}

	filename := fmt.Sprintf("production-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func buildReport(c *fiber.Ctx) (*models.ReportSummary, int, error) {
	start, end, err := ValidateDateRange(c.Query("start"), c.Query("end"), time.Now())
	if err != nil {
		return nil, 400, err
	}

	filters := database.ReportFilters{
		EmployeeID: c.Query("employee"),
		Start:      start,
		End:        end,
	}

	entries, err := database.GetApprovedProductions(config.GetDB(), filters)
	if err != nil {
		return nil, 500, fmt.Errorf("Server error")
	}

	return Summarize(entries), 200, nil
}
