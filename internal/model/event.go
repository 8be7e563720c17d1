package model

// Event is a notification sent from a running pipeline to the interactive
// surface. It is one of Progress, ItemResult or Completion.
type Event interface {
	isEvent()
}

// Progress reports overall advancement of a run
type Progress struct {
	Percent int // 0 to 100
	Message string
}

// ItemResult reports the outcome for a single link row
type ItemResult struct {
	Sheet    string
	Row      int
	Name     string // downloaded file name, or the URL on failure
	Status   string // human readable outcome
	OK       bool
	Duration string // MM:SS, empty if unknown
}

// Completion is the last event of every run
type Completion struct {
	Success bool
	Message string
	Err     error // terminal error, nil on success
}

func (Progress) isEvent()   {}
func (ItemResult) isEvent() {}
func (Completion) isEvent() {}
