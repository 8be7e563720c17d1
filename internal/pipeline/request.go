package pipeline

import (
	"fmt"
	"strings"

	"github.com/ytget/m4a-report/internal/model"
)

// Request holds everything an interactive surface supplies before a run
type Request struct {
	WorkbookPath  string
	DownloadDir   string
	Sheets        []string
	SkipProcessed bool
	OpenOnSuccess bool
}

// Validate checks that the workbook, destination and at least one sheet are set
func (r Request) Validate() error {
	var missing []string
	if strings.TrimSpace(r.WorkbookPath) == "" {
		missing = append(missing, "workbook path")
	}
	if strings.TrimSpace(r.DownloadDir) == "" {
		missing = append(missing, "download directory")
	}
	if len(r.Sheets) == 0 {
		missing = append(missing, "sheet selection")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}

// Summary describes how a run ended
type Summary struct {
	RunID     string
	State     model.RunState // RunStateDone or RunStateFailed
	Attempted int            // links handed to the fetcher
	Succeeded int            // rows downloaded and annotated
	Analyzed  int            // rows with a known duration
	Halted    bool           // the loop stopped at a failed row
	Err       error
}
