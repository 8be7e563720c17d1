package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/m4a-report/internal/config"
	"github.com/ytget/m4a-report/internal/download"
	"github.com/ytget/m4a-report/internal/model"
	"github.com/ytget/m4a-report/internal/pipeline"
	"github.com/ytget/m4a-report/internal/platform"
	"github.com/ytget/m4a-report/internal/workbook"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger

	fetcher *download.Service
	runner  *pipeline.Runner

	ctx    context.Context
	cancel context.CancelFunc

	workbookPath string
	downloadDir  string

	mu      sync.Mutex
	running bool

	// Widgets
	workbookCard  *widget.Card
	workbookLabel *widget.Label
	workbookBtn   *widget.Button
	folderCard    *widget.Card
	folderLabel   *widget.Label
	folderBtn     *widget.Button
	sheetCard     *widget.Card
	sheetHint     *widget.Label
	sheetGroup    *widget.CheckGroup
	skipCheck     *widget.Check
	progressCard  *widget.Card
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
	logLabel      *widget.Label
	logScroll     *container.Scroll
	executeBtn    *widget.Button
	logLines      []string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warn("cannot create download directory", "dir", downloadsDir, "error", err)
	}

	fetcher := download.NewService(downloadsDir, logger)
	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
		fetcher:      fetcher,
		runner:       pipeline.NewDefaultRunner(fetcher, logger),
		ctx:          ctx,
		cancel:       cancel,
		downloadDir:  downloadsDir,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(cancel)

	ui.setupUI()
	ui.restoreLastWorkbook()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.workbookLabel = widget.NewLabel(ui.localization.GetText(KeyNoWorkbook))
	ui.workbookLabel.Truncation = fyne.TextTruncateEllipsis
	ui.workbookBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseWorkbook)
	ui.workbookCard = widget.NewCard("", ui.localization.GetText(KeyWorkbookGroup),
		container.NewBorder(nil, nil, nil, ui.workbookBtn, ui.workbookLabel))

	ui.folderLabel = widget.NewLabel(ui.displayFolder())
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.folderBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseFolder)
	ui.folderCard = widget.NewCard("", ui.localization.GetText(KeyDownloadGroup),
		container.NewBorder(nil, nil, nil, ui.folderBtn, ui.folderLabel))

	ui.sheetHint = widget.NewLabel(ui.localization.GetText(KeySelectWorkbookFirst))
	ui.sheetGroup = widget.NewCheckGroup(nil, func([]string) {
		ui.updateExecuteState()
	})
	ui.sheetGroup.Horizontal = true
	ui.skipCheck = widget.NewCheck(ui.localization.GetText(KeySkipProcessed), ui.settings.SetSkipProcessed)
	ui.skipCheck.SetChecked(ui.settings.GetSkipProcessed())
	ui.sheetCard = widget.NewCard("", ui.localization.GetText(KeySheetGroup),
		container.NewVBox(ui.sheetHint, container.NewHScroll(ui.sheetGroup), ui.skipCheck))

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = 100
	ui.statusLabel = widget.NewLabel("")
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logScroll = container.NewVScroll(ui.logLabel)
	ui.logScroll.SetMinSize(fyne.NewSize(LogMinWidth, LogMinHeight))
	ui.progressCard = widget.NewCard("", ui.localization.GetText(KeyProgressGroup),
		container.NewBorder(container.NewVBox(ui.progressBar, ui.statusLabel), nil, nil, nil, ui.logScroll))

	ui.executeBtn = widget.NewButton(ui.localization.GetText(KeyExecute), ui.onExecute)
	ui.executeBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	top := container.NewVBox(ui.workbookCard, ui.folderCard, ui.sheetCard)
	bottom := container.NewBorder(nil, nil, settingsBtn, nil, ui.executeBtn)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, ui.progressCard))
	ui.updateExecuteState()
}

// createMenu builds the main menu with settings and language items
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	openDownloadsItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenDownloads), func() {
		ui.onRevealFolder(ui.downloadDir)
	})

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range sortedLanguageCodes(ui.localization.GetAvailableLanguages()) {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, openDownloadsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.workbookCard.SetSubTitle(ui.localization.GetText(KeyWorkbookGroup))
	ui.folderCard.SetSubTitle(ui.localization.GetText(KeyDownloadGroup))
	ui.sheetCard.SetSubTitle(ui.localization.GetText(KeySheetGroup))
	ui.progressCard.SetSubTitle(ui.localization.GetText(KeyProgressGroup))

	ui.workbookBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.folderBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.skipCheck.Text = ui.localization.GetText(KeySkipProcessed)
	ui.skipCheck.Refresh()
	ui.executeBtn.SetText(ui.localization.GetText(KeyExecute))

	if ui.workbookPath == "" {
		ui.workbookLabel.SetText(ui.localization.GetText(KeyNoWorkbook))
		ui.sheetHint.SetText(ui.localization.GetText(KeySelectWorkbookFirst))
	} else if len(ui.sheetGroup.Options) == 0 {
		ui.sheetHint.SetText(ui.localization.GetText(KeyNoSheets))
	}
	ui.folderLabel.SetText(ui.displayFolder())
}

// restoreLastWorkbook reloads the previously used workbook if it still exists
func (ui *RootUI) restoreLastWorkbook() {
	last := ui.settings.GetLastWorkbook()
	if last == "" {
		return
	}
	sheets, err := workbook.ListSheets(last)
	if err != nil {
		ui.logger.Debug("last workbook not restored", "path", last, "error", err)
		return
	}
	ui.setWorkbook(last, sheets, ui.settings.GetLastSheets())
}

// onBrowseWorkbook opens a file dialog filtered to Excel workbooks
func (ui *RootUI) onBrowseWorkbook() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		ui.onWorkbookSelected(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(WorkbookExtensions))
	fd.Show()
}

// onWorkbookSelected checks the workbook and lists its sheets
func (ui *RootUI) onWorkbookSelected(path string) {
	if platform.IsFileOpen(path) {
		ui.showError(errors.New(ui.localization.GetText(KeyFileLocked)))
		return
	}

	sheets, err := workbook.ListSheets(path)
	if err != nil {
		ui.logger.Error("cannot list sheets", "path", path, "error", err)
		ui.showError(err)
		return
	}

	ui.settings.SetLastWorkbook(path)
	ui.setWorkbook(path, sheets, nil)
}

// setWorkbook shows path and offers its sheets for selection.
// The results sheet is never offered.
func (ui *RootUI) setWorkbook(path string, sheets, preselect []string) {
	ui.workbookPath = path
	ui.workbookLabel.SetText(path)

	options := selectableSheets(sheets)
	ui.sheetGroup.Options = options
	ui.sheetGroup.SetSelected(intersect(preselect, options))
	ui.sheetGroup.Refresh()

	if len(options) == 0 {
		ui.sheetHint.SetText(ui.localization.GetText(KeyNoSheets))
		ui.sheetHint.Show()
	} else {
		ui.sheetHint.Hide()
	}
	ui.updateExecuteState()
}

// onBrowseFolder picks the download destination
func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.setDownloadDir(uri.Path())
	}, ui.window)
}

// setDownloadDir shows dir as the destination and remembers it
func (ui *RootUI) setDownloadDir(dir string) {
	ui.downloadDir = dir
	ui.settings.SetDownloadDirectory(dir)
	ui.folderLabel.SetText(ui.displayFolder())
	ui.updateExecuteState()
}

func (ui *RootUI) displayFolder() string {
	if ui.downloadDir == "" {
		return ui.localization.GetText(KeyNoFolder)
	}
	return ui.downloadDir
}

// request collects the current selection into a run request
func (ui *RootUI) request() pipeline.Request {
	return pipeline.Request{
		WorkbookPath:  ui.workbookPath,
		DownloadDir:   ui.downloadDir,
		Sheets:        append([]string(nil), ui.sheetGroup.Selected...),
		SkipProcessed: ui.skipCheck.Checked,
		OpenOnSuccess: ui.settings.GetOpenOnComplete(),
	}
}

// updateExecuteState enables the run button only when a run can start
func (ui *RootUI) updateExecuteState() {
	if ui.executeBtn == nil {
		return
	}
	if !ui.isRunning() && ui.request().Validate() == nil {
		ui.executeBtn.Enable()
	} else {
		ui.executeBtn.Disable()
	}
}

func (ui *RootUI) isRunning() bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.running
}

// setRunning toggles the inputs while a run is active
func (ui *RootUI) setRunning(running bool) {
	ui.mu.Lock()
	ui.running = running
	ui.mu.Unlock()

	for _, w := range []fyne.Disableable{ui.workbookBtn, ui.folderBtn, ui.sheetGroup, ui.skipCheck} {
		if running {
			w.Disable()
		} else {
			w.Enable()
		}
	}
	ui.updateExecuteState()
}

// onExecute starts a run with the current selection
func (ui *RootUI) onExecute() {
	req := ui.request()
	if err := req.Validate(); err != nil {
		ui.showError(err)
		return
	}
	if ui.isRunning() {
		return
	}

	ui.settings.SetLastWorkbook(req.WorkbookPath)
	ui.settings.SetLastSheets(req.Sheets)
	ui.settings.SetSkipProcessed(req.SkipProcessed)
	if err := platform.CreateDirectoryIfNotExists(req.DownloadDir); err != nil {
		ui.showError(err)
		return
	}

	ui.setRunning(true)
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyStarting))
	ui.logLines = nil
	ui.appendLog(ui.localization.GetText(KeyStarting))

	ui.runner.SetMessages(ui.localization.PipelineMessages())
	events := ui.runner.Start(ui.ctx, req)

	ui.logger.Info("run started", "workbook", req.WorkbookPath, "sheets", strings.Join(req.Sheets, ","))
	go ui.consume(events, req)
}

// consume forwards pipeline events onto the UI goroutine
func (ui *RootUI) consume(events <-chan model.Event, req pipeline.Request) {
	for ev := range events {
		fyne.Do(func() {
			ui.handleEvent(ev, req)
		})
	}
}

// handleEvent applies one event to the widgets
func (ui *RootUI) handleEvent(ev model.Event, req pipeline.Request) {
	switch e := ev.(type) {
	case model.Progress:
		ui.progressBar.SetValue(float64(e.Percent))
		ui.statusLabel.SetText(e.Message)
	case model.ItemResult:
		ui.appendLog(ui.localization.ItemLine(e))
	case model.Completion:
		ui.setRunning(false)
		if !e.Success {
			ui.statusLabel.SetText(e.Message)
			ui.appendLog(ui.localization.GetText(KeyErrorPrefix) + e.Message)
			dialog.ShowError(errors.New(e.Message), ui.window)
			return
		}
		ui.progressBar.SetValue(100)
		ui.statusLabel.SetText(e.Message)
		ui.appendLog(e.Message)
		dialog.ShowInformation(ui.localization.GetText(KeyDoneTitle), e.Message, ui.window)
		if ui.settings.GetRevealDownloadsOnComplete() {
			ui.onRevealFolder(req.DownloadDir)
		}
	}
}

// appendLog adds a line to the log area and scrolls to it
func (ui *RootUI) appendLog(line string) {
	ui.logLines = append(ui.logLines, line)
	if len(ui.logLines) > LogMaxLines {
		ui.logLines = ui.logLines[len(ui.logLines)-LogMaxLines:]
	}
	ui.logLabel.SetText(strings.Join(ui.logLines, "\n"))
	ui.logScroll.ScrollToBottom()
}

// onRevealFolder opens dir in the system file manager
func (ui *RootUI) onRevealFolder(dir string) {
	if err := platform.OpenFileInManager(dir); err != nil {
		ui.logger.Warn("cannot open folder", "dir", dir, "error", err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFolder) + ": " + err.Error())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		dir := ui.settings.GetDownloadDirectory()
		ui.setDownloadDir(dir)
		ui.skipCheck.SetChecked(ui.settings.GetSkipProcessed())
		ui.onLanguageChange(ui.settings.GetLanguage())
		ui.showNotification(ui.localization.GetText(KeySettingsSaved))
	})
}

func (ui *RootUI) showError(err error) {
	dialog.ShowError(err, ui.window)
}

// showNotification pops up a short message over the window
func (ui *RootUI) showNotification(message string) {
	fyne.Do(func() {
		widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
	})
}

// selectableSheets drops the generated results sheet
func selectableSheets(sheets []string) []string {
	out := make([]string, 0, len(sheets))
	for _, s := range sheets {
		if s == workbook.ResultsSheet {
			continue
		}
		out = append(out, s)
	}
	return out
}

// intersect keeps the entries of want present in have, in want's order
func intersect(want, have []string) []string {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	var out []string
	for _, w := range want {
		if _, ok := set[w]; ok {
			out = append(out, w)
		}
	}
	return out
}
