package pipeline

// Messages holds the human readable strings a run emits. Fields ending in
// Format are fmt templates.
type Messages struct {
	ProcessingFormat    string // current index, total
	ItemSuccessFormat   string // duration or UnknownDuration
	ItemFailureFormat   string // error
	UnknownDuration     string
	FileLocked          string
	NoLinks             string
	SummaryFailedFormat string // error
	SummarySkipped      string
	Completed           string
}

// DefaultMessages returns the English message set
func DefaultMessages() Messages {
	return Messages{
		ProcessingFormat:    "Processing... (%d/%d)",
		ItemSuccessFormat:   "success (duration: %s)",
		ItemFailureFormat:   "failed: %v",
		UnknownDuration:     "unknown",
		FileLocked:          "The workbook is open in another application. Close it and run again.",
		NoLinks:             "No file links to process were found.",
		SummaryFailedFormat: "Failed to create the results sheet: %v",
		SummarySkipped:      "No analysis results. The results sheet was not created.",
		Completed:           "Processing completed.",
	}
}

// merged fills empty fields of m from the defaults
func (m Messages) merged() Messages {
	d := DefaultMessages()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Messages{
		ProcessingFormat:    pick(m.ProcessingFormat, d.ProcessingFormat),
		ItemSuccessFormat:   pick(m.ItemSuccessFormat, d.ItemSuccessFormat),
		ItemFailureFormat:   pick(m.ItemFailureFormat, d.ItemFailureFormat),
		UnknownDuration:     pick(m.UnknownDuration, d.UnknownDuration),
		FileLocked:          pick(m.FileLocked, d.FileLocked),
		NoLinks:             pick(m.NoLinks, d.NoLinks),
		SummaryFailedFormat: pick(m.SummaryFailedFormat, d.SummaryFailedFormat),
		SummarySkipped:      pick(m.SummarySkipped, d.SummarySkipped),
		Completed:           pick(m.Completed, d.Completed),
	}
}
