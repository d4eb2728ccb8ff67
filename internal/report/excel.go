package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/edumart/edumart-back/internal/models"
)

// PaymentsWorkbook builds an xlsx workbook over the payments ledger,
// one row per payment plus a header.
func PaymentsWorkbook(payments []models.Payment) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "Payments"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Operation Key", "Email", "Class ID", "Amount", "Created At"}
	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, col+"1", h); err != nil {
			return nil, err
		}
	}

	for i, p := range payments {
		row := i + 2
		cells := []interface{}{
			p.ID,
			p.OpKey,
			p.Email,
			p.ClassID,
			p.Amount,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range cells {
			col, err := excelize.ColumnNumberToName(j + 1)
			if err != nil {
				return nil, err
			}
			cell := fmt.Sprintf("%s%d", col, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
