package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/azzaconstruction/contact-backend/internal/models"
)

const exportSheet = "Submissions"

// buildWorkbook serializes the rows into a single-sheet xlsx workbook, header
// first, data rows in append order.
func buildWorkbook(subs []models.Submission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(exportSheet); err != nil {
		return nil, fmt.Errorf("create export sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	header := make([]interface{}, len(models.Columns))
	for i, c := range models.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}

	for i, sub := range subs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := make([]interface{}, 0, len(models.Columns))
		for _, v := range sub.Row() {
			row = append(row, v)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write export row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize export workbook: %w", err)
	}
	return buf.Bytes(), nil
}
