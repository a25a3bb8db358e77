// Package export renders entity collections as spreadsheet documents.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Column describes one spreadsheet column: the header shown on the first
// row and the field key looked up in each row map.
type Column struct {
	Header string
	Field  string
}

// WriteXLSX writes rows as an .xlsx workbook with a single sheet. Rows are
// plain serializable records keyed by field name; missing fields render as
// empty cells. An empty collection yields a header-only sheet.
func WriteXLSX(w io.Writer, sheet string, columns []Column, rows []map[string]any) error {
	if sheet == "" {
		sheet = "Sheet1"
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	for col, c := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, c.Header); err != nil {
			return fmt.Errorf("set header %q: %w", c.Header, err)
		}
	}

	for i, row := range rows {
		for col, c := range columns {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if value, ok := row[c.Field]; ok {
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ContentType is the MIME type for .xlsx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
