package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/m4a-report/internal/config"
	"github.com/ytget/m4a-report/internal/download"
	"github.com/ytget/m4a-report/internal/model"
	"github.com/ytget/m4a-report/internal/pipeline"
	"github.com/ytget/m4a-report/internal/workbook"
)

// ErrRunFailed is returned by the run command when the run did not complete.
var ErrRunFailed = errors.New("run failed")

// runFlags are the flags of the run command
type runFlags struct {
	workbook      string
	dest          string
	sheets        []string
	allSheets     bool
	skipProcessed bool
	noOpen        bool
	tui           bool
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [workbook]",
		Short: "Process a workbook without the desktop window",
		Long: `Process the selected sheets of a workbook and print progress.

Values not given as flags are taken from the config file.

Examples:
  m4a-report run podcasts.xlsx --sheet Sheet1
  m4a-report run podcasts.xlsx --all-sheets --dest ./audio --no-open
  m4a-report run --tui                       # workbook and sheets from config`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.workbook = args[0]
			}
			return runRun(cmd, opts, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.workbook, "workbook", "w", "", "Workbook to process (.xlsx, .xlsm)")
	f.StringVarP(&flags.dest, "dest", "d", "", "Directory for downloaded files")
	f.StringArrayVarP(&flags.sheets, "sheet", "s", nil, "Sheet to process (repeatable)")
	f.BoolVar(&flags.allSheets, "all-sheets", false, "Process every sheet except the results sheet")
	f.BoolVar(&flags.skipProcessed, "skip-processed", true, "Skip rows whose status column already has a value")
	f.BoolVar(&flags.noOpen, "no-open", false, "Do not open the workbook after a successful run")
	f.BoolVar(&flags.tui, "tui", false, "Show an interactive progress view")
	return cmd
}

// buildRequest merges flags over the config file; changed reports whether a
// flag was set on the command line
func buildRequest(cfg *config.Config, flags *runFlags, changed func(name string) bool) (pipeline.Request, error) {
	req := pipeline.Request{
		WorkbookPath:  cfg.Run.Workbook,
		DownloadDir:   cfg.Run.DownloadDir,
		Sheets:        cfg.Run.Sheets,
		SkipProcessed: cfg.Run.SkipProcessed,
		OpenOnSuccess: cfg.Run.OpenOnSuccess,
	}

	if flags.workbook != "" {
		req.WorkbookPath = flags.workbook
	}
	if flags.dest != "" {
		req.DownloadDir = flags.dest
	}
	if len(flags.sheets) > 0 {
		req.Sheets = flags.sheets
	}
	if changed("skip-processed") {
		req.SkipProcessed = flags.skipProcessed
	}
	if flags.noOpen {
		req.OpenOnSuccess = false
	}

	if req.WorkbookPath == "" {
		return req, errors.New("no workbook given; pass it as an argument or set run.workbook in the config")
	}
	if flags.allSheets {
		sheets, err := workbook.ListSheets(req.WorkbookPath)
		if err != nil {
			return req, err
		}
		req.Sheets = withoutResults(sheets)
	}
	if len(req.Sheets) == 0 {
		return req, errors.New("no sheets selected; use --sheet, --all-sheets or run.sheets in the config")
	}

	abs, err := filepath.Abs(req.WorkbookPath)
	if err == nil {
		req.WorkbookPath = abs
	}
	return req, req.Validate()
}

func withoutResults(sheets []string) []string {
	out := make([]string, 0, len(sheets))
	for _, s := range sheets {
		if s != workbook.ResultsSheet {
			out = append(out, s)
		}
	}
	return out
}

func runRun(cmd *cobra.Command, opts *rootOptions, flags *runFlags) error {
	useTUI := flags.tui
	if useTUI && !stdinIsTTY() {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("warning: --tui needs an interactive terminal, using plain output"))
		useTUI = false
	}

	// Log lines would tear the progress view; keep only the file sink then
	var logOut io.Writer = cmd.ErrOrStderr()
	if useTUI {
		logOut = io.Discard
	}
	e, err := opts.setup(logOut)
	if err != nil {
		return err
	}
	defer e.close()

	req, err := buildRequest(e.cfg, flags, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	if available, err := workbook.ListSheets(req.WorkbookPath); err == nil {
		printWarnings(cmd.ErrOrStderr(), unknownSheets(req.Sheets, available))
	}

	fetcher := download.NewService(req.DownloadDir, e.logger.Logger)
	fetcher.SetBaseURL(e.cfg.Drive.BaseURL)
	fetcher.SetUserAgent(e.cfg.Drive.UserAgent)
	runner := pipeline.NewDefaultRunner(fetcher, e.logger.Logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	events := runner.Start(ctx, req)

	var completion model.Completion
	if useTUI {
		completion, err = renderTUI(ctx, cmd.OutOrStdout(), filepath.Base(req.WorkbookPath), events)
		if err != nil {
			return err
		}
	} else {
		completion = renderPlain(cmd.OutOrStdout(), events)
	}

	if !completion.Success {
		return fmt.Errorf("%w: %s", ErrRunFailed, completion.Message)
	}
	return nil
}

// renderPlain prints every event and returns the final Completion
func renderPlain(out io.Writer, events <-chan model.Event) model.Completion {
	p := printer{out: out}
	var completion model.Completion
	for ev := range events {
		p.handle(ev)
		if c, ok := ev.(model.Completion); ok {
			completion = c
		}
	}
	return completion
}

// renderTUI feeds events into a bubbletea progress view until the run ends
func renderTUI(ctx context.Context, out io.Writer, title string, events <-chan model.Event) (model.Completion, error) {
	g, gctx := errgroup.WithContext(ctx)
	program := tea.NewProgram(newProgressModel(title), tea.WithContext(gctx), tea.WithOutput(out))

	var completion model.Completion
	g.Go(func() error {
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		// Drain everything so the runner never blocks, even if the view failed
		for ev := range events {
			if c, ok := ev.(model.Completion); ok {
				completion = c
			}
			program.Send(eventMsg{ev: ev})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return completion, fmt.Errorf("progress view: %w", err)
	}
	return completion, nil
}

func stdinIsTTY() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
