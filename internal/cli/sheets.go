package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/m4a-report/internal/workbook"
)

func newSheetsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [workbook]",
		Short: "List the sheets of a workbook",
		Long: `List the sheets of a workbook in workbook order.

The generated results sheet is marked; it is not meant to be processed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close()

			path := e.cfg.Run.Workbook
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no workbook given; pass it as an argument or set run.workbook in the config")
			}

			sheets, err := workbook.ListSheets(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(path))
			for _, name := range sheets {
				if name == workbook.ResultsSheet {
					fmt.Fprintf(out, "  %s %s\n", name, mutedStyle.Render("(results)"))
					continue
				}
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
