package model

// RunState represents the current state of a pipeline run
type RunState string

const (
	// RunStateIdle means the run has not started
	RunStateIdle RunState = "Idle"

	// RunStateLoaded means the workbook was opened
	RunStateLoaded RunState = "Loaded"

	// RunStateExtracting means link rows are being collected
	RunStateExtracting RunState = "Extracting"

	// RunStateDownloading means a linked file is being fetched
	RunStateDownloading RunState = "Downloading"

	// RunStateAnalyzing means a downloaded file is being inspected
	RunStateAnalyzing RunState = "Analyzing"

	// RunStateAnnotating means the source row is being updated
	RunStateAnnotating RunState = "Annotating"

	// RunStateSummarizing means the results sheet is being regenerated
	RunStateSummarizing RunState = "Summarizing"

	// RunStateSaving means the workbook is being written to disk
	RunStateSaving RunState = "Saving"

	// RunStateDone means the run finished and the workbook was saved
	RunStateDone RunState = "Done"

	// RunStateFailed means the run ended with a terminal error
	RunStateFailed RunState = "Failed"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsActive returns true while the run is working through its links
func (rs RunState) IsActive() bool {
	return rs == RunStateDownloading || rs == RunStateAnalyzing || rs == RunStateAnnotating
}

// IsTerminal returns true if the run can no longer change state
func (rs RunState) IsTerminal() bool {
	return rs == RunStateDone || rs == RunStateFailed
}
