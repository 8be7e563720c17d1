package pipeline

import (
	"log/slog"

	"github.com/ytget/m4a-report/internal/workbook"
)

// WorkbookLoader opens workbooks from disk with excelize
type WorkbookLoader struct {
	Logger *slog.Logger
}

// Load opens the workbook at path
func (l WorkbookLoader) Load(path string) (Document, error) {
	wb, err := workbook.Open(path, l.Logger)
	if err != nil {
		return nil, err
	}
	return wb, nil
}
