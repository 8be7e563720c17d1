package workbook

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// Fixed sheet layout, 1-based
const (
	HeaderRow    = 1
	LinkColumn   = 10 // J
	StatusColumn = 12 // L
)

// Summary sheet layout
const (
	ResultsSheet       = "results"
	SummaryColumnWidth = 20
)

// Workbook is an open spreadsheet held in memory until Save.
type Workbook struct {
	path   string
	file   *excelize.File
	logger *slog.Logger
}

// Open loads the workbook at path
func Open(path string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	return &Workbook{
		path:   path,
		file:   f,
		logger: logger.With("component", "workbook"),
	}, nil
}

// ListSheets opens the workbook at path just long enough to read its sheet names
func ListSheets(path string) ([]string, error) {
	wb, err := Open(path, nil)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return wb.Sheets(), nil
}

// Path returns the file the workbook was loaded from
func (w *Workbook) Path() string {
	return w.path
}

// Sheets returns sheet names in workbook order
func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// HasSheet reports whether a sheet with exactly this name exists
func (w *Workbook) HasSheet(name string) bool {
	for _, sheet := range w.file.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}

// Save writes the in-memory workbook back to its source path
func (w *Workbook) Save() error {
	if err := w.file.Save(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, w.path, err)
	}
	w.logger.Info("workbook saved", "path", w.path)
	return nil
}

// Close releases the underlying file resources without saving
func (w *Workbook) Close() error {
	return w.file.Close()
}

func cellName(col, row int) string {
	// col and row are always positive here, so the conversion cannot fail
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
