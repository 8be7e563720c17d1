package workbook

import "errors"

// Sentinel errors for the workbook package.
var (
	// ErrLoad is returned when the workbook cannot be opened or read.
	ErrLoad = errors.New("workbook load failed")

	// ErrSave is returned when the workbook cannot be written back to disk.
	ErrSave = errors.New("workbook save failed")

	// ErrSheetNotFound is returned when writing to a sheet the workbook lacks.
	ErrSheetNotFound = errors.New("sheet not found")
)
