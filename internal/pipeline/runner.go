package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ytget/m4a-report/internal/media"
	"github.com/ytget/m4a-report/internal/model"
	"github.com/ytget/m4a-report/internal/platform"
)

// Runner constants
const (
	// EventBuffer is the capacity of the channel returned by Start
	EventBuffer = 64

	// SummaryNoticePercent is the progress value used for results sheet notices
	SummaryNoticePercent = 90
)

// Runner executes report runs. A Runner handles one run at a time.
type Runner struct {
	loader    Loader
	fetcher   Fetcher
	inspector Inspector
	locks     LockChecker
	opener    Opener
	messages  Messages
	logger    *slog.Logger
}

// NewRunner creates a runner from its collaborators
func NewRunner(loader Loader, fetcher Fetcher, inspector Inspector, locks LockChecker, opener Opener, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		loader:    loader,
		fetcher:   fetcher,
		inspector: inspector,
		locks:     locks,
		opener:    opener,
		messages:  DefaultMessages(),
		logger:    logger.With("component", "pipeline"),
	}
}

// NewDefaultRunner wires the excelize loader, the media inspector and the
// OS lock check and opener around fetcher
func NewDefaultRunner(fetcher Fetcher, logger *slog.Logger) *Runner {
	sys := platform.System{}
	return NewRunner(WorkbookLoader{Logger: logger}, fetcher, media.NewService(logger), sys, sys, logger)
}

// SetMessages replaces the emitted strings; empty fields keep their defaults
func (r *Runner) SetMessages(m Messages) {
	r.messages = m.merged()
}

// Start runs req on a worker goroutine. The returned channel carries every
// event of the run and is closed after the Completion event.
func (r *Runner) Start(ctx context.Context, req Request) <-chan model.Event {
	events := make(chan model.Event, EventBuffer)
	go func() {
		defer close(events)
		r.Run(ctx, req, func(ev model.Event) {
			events <- ev
		})
	}()
	return events
}

// Run executes req synchronously, reporting through emit. Exactly one
// Completion event is emitted, always last.
func (r *Runner) Run(ctx context.Context, req Request, emit func(model.Event)) Summary {
	if emit == nil {
		emit = func(model.Event) {}
	}

	runID := newRunID()
	log := r.logger.With("run_id", runID)
	sum := Summary{RunID: runID, State: model.RunStateIdle}

	fail := func(err error, message string) Summary {
		log.Error("run failed", "state", sum.State.String(), "error", err)
		sum.State = model.RunStateFailed
		sum.Err = err
		emit(model.Completion{Success: false, Message: message, Err: err})
		return sum
	}

	if err := req.Validate(); err != nil {
		return fail(err, err.Error())
	}

	log.Info("run started",
		"workbook", req.WorkbookPath,
		"download_dir", req.DownloadDir,
		"sheets", req.Sheets,
		"skip_processed", req.SkipProcessed,
	)

	// The workbook must not be touched while another application holds it
	if r.locks.IsFileOpen(req.WorkbookPath) {
		return fail(fmt.Errorf("%w: %s", ErrFileLocked, req.WorkbookPath), r.messages.FileLocked)
	}

	doc, err := r.loader.Load(req.WorkbookPath)
	if err != nil {
		return fail(err, err.Error())
	}
	defer func() {
		if err := doc.Close(); err != nil {
			log.Warn("failed to close workbook", "error", err)
		}
	}()
	sum.State = model.RunStateLoaded

	sum.State = model.RunStateExtracting
	links, err := doc.ExtractLinks(req.Sheets, req.SkipProcessed)
	if err != nil {
		return fail(err, err.Error())
	}
	if len(links) == 0 {
		return fail(ErrNoLinks, r.messages.NoLinks)
	}
	log.Info("links extracted", "count", len(links))

	r.fetcher.SetDownloadDirectory(req.DownloadDir)
	index := model.NewMediaIndex()
	total := len(links)

	for i, link := range links {
		sum.State = model.RunStateDownloading
		emit(model.Progress{
			Percent: i * 100 / total,
			Message: fmt.Sprintf(r.messages.ProcessingFormat, i+1, total),
		})

		sum.Attempted++
		res, err := r.fetcher.Fetch(ctx, link)
		if err != nil {
			log.Warn("download failed, stopping",
				"sheet", link.Sheet, "row", link.Row, "url", link.URL, "error", err)
			emit(r.failedItem(link, err))
			sum.Halted = true
			break
		}

		sum.State = model.RunStateAnalyzing
		duration := ""
		if info, ok := r.inspector.Analyze(*res); ok {
			index.Put(*info)
			duration = info.Duration
			sum.Analyzed++
		}

		sum.State = model.RunStateAnnotating
		name := res.FileName()
		if err := doc.Annotate(link.Sheet, link.Row, name, link.URL, duration); err != nil {
			log.Warn("annotation failed, stopping",
				"sheet", link.Sheet, "row", link.Row, "error", err)
			emit(r.failedItem(link, err))
			sum.Halted = true
			break
		}
		sum.Succeeded++

		shown := duration
		if shown == "" {
			shown = r.messages.UnknownDuration
		}
		emit(model.ItemResult{
			Sheet:    link.Sheet,
			Row:      link.Row,
			Name:     name,
			Status:   fmt.Sprintf(r.messages.ItemSuccessFormat, shown),
			OK:       true,
			Duration: duration,
		})
	}

	sum.State = model.RunStateSummarizing
	if index.Len() > 0 {
		if err := doc.WriteSummary(index.Table()); err != nil {
			log.Warn("failed to write results sheet", "error", err)
			emit(model.Progress{
				Percent: SummaryNoticePercent,
				Message: fmt.Sprintf(r.messages.SummaryFailedFormat, err),
			})
		}
	} else {
		emit(model.Progress{Percent: SummaryNoticePercent, Message: r.messages.SummarySkipped})
	}

	sum.State = model.RunStateSaving
	if err := doc.Save(); err != nil {
		return fail(err, err.Error())
	}

	if req.OpenOnSuccess {
		if err := r.opener.Open(req.WorkbookPath); err != nil {
			log.Warn("failed to open workbook", "error", err)
		}
	}

	sum.State = model.RunStateDone
	log.Info("run completed",
		"attempted", sum.Attempted,
		"succeeded", sum.Succeeded,
		"analyzed", sum.Analyzed,
		"halted", sum.Halted,
	)
	emit(model.Completion{Success: true, Message: r.messages.Completed})
	return sum
}

func (r *Runner) failedItem(link model.LinkRecord, err error) model.ItemResult {
	return model.ItemResult{
		Sheet:  link.Sheet,
		Row:    link.Row,
		Name:   link.URL,
		Status: fmt.Sprintf(r.messages.ItemFailureFormat, err),
		OK:     false,
	}
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
