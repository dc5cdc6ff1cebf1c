package services

import (
	"bytes"
	"fmt"

	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/xuri/excelize/v2"
)

// GenerateReportExcel renders an approved-production report as an .xlsx
// workbook: one row per entry plus a totals row.
func GenerateReportExcel(summary *models.ReportSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Production Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"Employee", "Design", "Date", "PS", "Rate", "Total"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 2
	for _, entry := range summary.Entries {
		name := entry.EmployeeName
		if name == "" {
			name = "N/A"
		}
		values := []interface{}{
			name,
			entry.DesignName,
			entry.Date.Format("2006-01-02"),
			entry.PS.InexactFloat64(),
			entry.Rate.InexactFloat64(),
			entry.Total.InexactFloat64(),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// totals row
	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	labelCell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, labelCell, fmt.Sprintf("Total (%d entries)", summary.TotalEntries))
	f.SetCellStyle(sheet, labelCell, labelCell, totalStyle)

	psCell, _ := excelize.CoordinatesToCellName(4, row)
	f.SetCellValue(sheet, psCell, summary.TotalPS.InexactFloat64())
	amountCell, _ := excelize.CoordinatesToCellName(6, row)
	f.SetCellValue(sheet, amountCell, summary.TotalAmount.InexactFloat64())
	f.SetCellStyle(sheet, psCell, amountCell, totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
