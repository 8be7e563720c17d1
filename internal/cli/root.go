package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ytget/m4a-report/internal/config"
	"github.com/ytget/m4a-report/internal/logging"
)

// GUILauncher opens the desktop window and blocks until it is closed.
type GUILauncher func(logger *slog.Logger) error

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
}

// env is the resolved configuration and logger of one command invocation
type env struct {
	cfg     *config.Config
	cfgPath string
	logger  *logging.Logger
}

func (e *env) close() {
	if e.logger != nil {
		_ = e.logger.Close()
	}
}

// setup loads the config file and builds the logger, writing log output to w
func (o *rootOptions) setup(w io.Writer) (*env, error) {
	cfg, path, err := config.Resolve(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}

	logger, err := logging.New(w, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, cfgPath: path, logger: logger}, nil
}

// NewRootCommand builds the command tree. Without a subcommand the desktop
// window is opened through launchGUI.
func NewRootCommand(version string, launchGUI GUILauncher) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "m4a-report",
		Short: "Download linked audio files and report their durations",
		Long: `m4a-report - spreadsheet audio link reporter

Scans the selected sheets of an Excel workbook for Google Drive file links
(column J), downloads each file, writes a hyperlink and the playback length
(column L) back into the row and lists all analyzed files on a "results"
sheet.

Run without a command to open the desktop window.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts, launchGUI)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Also append logs to this file")

	cmd.AddCommand(
		newGUICommand(opts, launchGUI),
		newRunCommand(opts),
		newSheetsCommand(opts),
		newConfigCommand(opts),
	)

	cmd.Version = version
	cmd.SetVersionTemplate("m4a-report {{.Version}}\n")
	return cmd
}

func newGUICommand(opts *rootOptions, launchGUI GUILauncher) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts, launchGUI)
		},
	}
}

func runGUI(cmd *cobra.Command, opts *rootOptions, launchGUI GUILauncher) error {
	e, err := opts.setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.close()

	if launchGUI == nil {
		return cmd.Help()
	}
	return launchGUI(e.logger.Logger)
}
