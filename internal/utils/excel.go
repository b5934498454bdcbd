package utils

import (
	"github.com/xuri/excelize/v2"
)

// Excel caps sheet names at 31 characters.
const maxSheetNameLen = 31

// WriteToExcelFile writes the given headers and records to an .xlsx workbook
// with a single sheet named sheetName. The sheet name must already be free of
// characters Excel rejects; SanitizeFilename output qualifies.
func WriteToExcelFile(filePath, sheetName string, headers []string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "Tracks"
	}
	if len(sheetName) > maxSheetNameLen {
		sheetName = sheetName[:maxSheetNameLen]
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetName, "A1", sheetRow(headers)); err != nil {
		return err
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, sheetRow(record)); err != nil {
			return err
		}
	}

	return f.SaveAs(filePath)
}

func sheetRow(values []string) *[]interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return &row
}
