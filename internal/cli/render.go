package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/m4a-report/internal/model"
)

// ItemLineFormat renders one ItemResult: sheet, row, name, status
const ItemLineFormat = "Sheet %q row %d: %s - %s"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func itemLine(it model.ItemResult) string {
	return fmt.Sprintf(ItemLineFormat, it.Sheet, it.Row, it.Name, it.Status)
}

func completionLine(c model.Completion) string {
	if c.Success {
		return okStyle.Render("done: ") + c.Message
	}
	return errorStyle.Render("error: ") + c.Message
}

// printer writes run events as plain lines
type printer struct {
	out io.Writer
}

func (p printer) handle(ev model.Event) {
	switch e := ev.(type) {
	case model.Progress:
		fmt.Fprintln(p.out, mutedStyle.Render(fmt.Sprintf("[%3d%%] %s", e.Percent, e.Message)))
	case model.ItemResult:
		line := itemLine(e)
		if !e.OK {
			line = errorStyle.Render(line)
		}
		fmt.Fprintln(p.out, line)
	case model.Completion:
		fmt.Fprintln(p.out, completionLine(e))
	}
}

func printWarnings(w io.Writer, warnings []sheetWarning) {
	for _, sw := range warnings {
		msg := fmt.Sprintf("warning: sheet %q not found", sw.Requested)
		if sw.Suggestion != "" {
			msg += fmt.Sprintf(", did you mean %q?", sw.Suggestion)
		}
		fmt.Fprintln(w, warnStyle.Render(msg))
	}
}
