package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ytget/m4a-report/internal/model"
)

const hyperlinkTypeExternal = "External"

// Annotate replaces the link cell of a row with displayName hyperlinked to url.
// A non-empty duration is written to the status column of the same row.
// Only the in-memory workbook changes.
func (w *Workbook) Annotate(sheet string, row int, displayName, url, duration string) error {
	if !w.HasSheet(sheet) {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	cell := cellName(LinkColumn, row)
	if err := w.file.SetCellValue(sheet, cell, displayName); err != nil {
		return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
	}

	if err := w.file.SetCellHyperLink(sheet, cell, url, hyperlinkTypeExternal, hyperlinkOpts(displayName)); err != nil {
		return fmt.Errorf("link %s!%s: %w", sheet, cell, err)
	}

	if duration != "" {
		statusCell := cellName(StatusColumn, row)
		if err := w.file.SetCellValue(sheet, statusCell, duration); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, statusCell, err)
		}
	}
	return nil
}

// hyperlinkOpts shows displayName in the cell with an "Open <name>" tooltip
func hyperlinkOpts(displayName string) excelize.HyperlinkOpts {
	tooltip := "Open " + displayName
	return excelize.HyperlinkOpts{Display: &displayName, Tooltip: &tooltip}
}

// WriteSummary regenerates the results sheet from table.
// An existing results sheet is deleted first; nothing is merged.
func (w *Workbook) WriteSummary(table model.ResultTable) error {
	idx, err := w.file.GetSheetIndex(ResultsSheet)
	if err != nil {
		return fmt.Errorf("look up %s sheet: %w", ResultsSheet, err)
	}
	if idx != -1 {
		w.logger.Info("replacing existing summary sheet", "sheet", ResultsSheet)
		if err := w.file.DeleteSheet(ResultsSheet); err != nil {
			return fmt.Errorf("delete %s sheet: %w", ResultsSheet, err)
		}
	}

	if _, err := w.file.NewSheet(ResultsSheet); err != nil {
		return fmt.Errorf("create %s sheet: %w", ResultsSheet, err)
	}

	columns := table.Columns()
	for col, header := range columns {
		if err := w.file.SetCellValue(ResultsSheet, cellName(col+1, HeaderRow), header); err != nil {
			return fmt.Errorf("write header %q: %w", header, err)
		}
	}

	for i, values := range table.Rows() {
		row := HeaderRow + 1 + i
		for col, value := range values {
			if err := w.file.SetCellValue(ResultsSheet, cellName(col+1, row), value); err != nil {
				return fmt.Errorf("write %s row %d: %w", ResultsSheet, row, err)
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return fmt.Errorf("summary columns: %w", err)
	}
	if err := w.file.SetColWidth(ResultsSheet, "A", lastCol, SummaryColumnWidth); err != nil {
		return fmt.Errorf("set %s column width: %w", ResultsSheet, err)
	}

	w.logger.Info("summary sheet written", "sheet", ResultsSheet, "rows", table.Len())
	return nil
}
