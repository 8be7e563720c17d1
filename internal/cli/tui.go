package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/m4a-report/internal/model"
)

// Progress view constants
const (
	tuiBarWidth     = 48
	tuiVisibleItems = 8
)

// eventMsg carries a pipeline event into the bubbletea program
type eventMsg struct {
	ev model.Event
}

type progressModel struct {
	title   string
	bar     progress.Model
	spinner spinner.Model
	percent float64
	message string
	items   []string
	failed  int
	done    bool
	result  model.Completion
	notice  string
}

func newProgressModel(title string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return progressModel{
		title:   title,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(tuiBarWidth)),
		spinner: s,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.notice = "a run cannot be interrupted; it stops on its own at the first failed download"
		}
		return m, nil

	case eventMsg:
		return m.apply(msg.ev)

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) apply(ev model.Event) (tea.Model, tea.Cmd) {
	switch e := ev.(type) {
	case model.Progress:
		m.percent = float64(e.Percent) / 100
		m.message = e.Message
	case model.ItemResult:
		line := itemLine(e)
		if !e.OK {
			m.failed++
			line = errorStyle.Render(line)
		}
		m.items = append(m.items, line)
		if len(m.items) > tuiVisibleItems {
			m.items = m.items[len(m.items)-tuiVisibleItems:]
		}
	case model.Completion:
		m.done = true
		m.result = e
		if e.Success {
			m.percent = 1
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder

	status := m.spinner.View() + " " + m.message
	if m.done {
		status = completionLine(m.result)
		if m.failed > 0 {
			status += mutedStyle.Render(" (stopped at the first failed row)")
		}
	}

	b.WriteString(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		m.bar.ViewAs(m.percent),
		status,
	))
	b.WriteString("\n")

	for _, line := range m.items {
		b.WriteString(mutedStyle.Render("  ") + line + "\n")
	}
	if m.notice != "" && !m.done {
		b.WriteString(warnStyle.Render(m.notice) + "\n")
	}
	return b.String()
}
