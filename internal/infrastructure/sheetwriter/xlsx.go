package sheetwriter

import (
	"fmt"

	"multichain_balance_checker/internal/app/port"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet every workbook is written to.
const SheetName = "Sheet1"

// XLSXSink writes a table as a one-sheet Excel workbook.
type XLSXSink struct{}

// NewXLSXSink creates a new XLSXSink.
func NewXLSXSink() *XLSXSink {
	return &XLSXSink{}
}

// Extension implements port.ResultSink.
func (s *XLSXSink) Extension() string { return ".xlsx" }

// Write stores the header in row 1 and one row per record below it.
// float64 cells become numeric cells, strings stay text.
func (s *XLSXSink) Write(path string, table port.Table) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(table.Header))
	for i, h := range table.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := row
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
