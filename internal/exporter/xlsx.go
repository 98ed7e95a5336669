package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "atuscli/internal/errors"
	"atuscli/internal/timeusage"
)

const summarySheet = "Summary"

// WriteXLSX writes the grouped report to an Excel workbook with a single
// Summary sheet. Hour averages are written as numbers so spreadsheet
// formulas keep working on them.
func WriteXLSX(filePath string, groups []timeusage.GroupAverage) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return apperrors.NewExportError("create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return apperrors.NewExportError("rename sheet", err)
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return apperrors.NewExportError("resolve header cell", err)
		}
		if err := f.SetCellValue(summarySheet, cell, header); err != nil {
			return apperrors.NewExportError("write header cell", err)
		}
	}

	for row, g := range groups {
		values := []interface{}{g.Working, g.Sex, g.Age, g.PrimaryNeeds, g.Work, g.Other}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return apperrors.NewExportError("resolve cell", err)
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return apperrors.NewExportError(fmt.Sprintf("write row %d", row+1), err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return apperrors.NewExportError("save workbook", err)
	}
	return nil
}
