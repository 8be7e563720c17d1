package ui

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ytget/m4a-report/internal/config"
	"github.com/ytget/m4a-report/internal/logging"
	"github.com/ytget/m4a-report/internal/model"
	"github.com/ytget/m4a-report/internal/pipeline"
)

// writeWorkbook saves an empty workbook with the given sheets
func writeWorkbook(t *testing.T, sheets ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheets[0]))
	for _, s := range sheets[1:] {
		_, err := f.NewSheet(s)
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// newTestUI builds the window against an in-memory app with an English UI
// and a temporary download directory
func newTestUI(t *testing.T, prepare func(*config.Settings)) (*RootUI, fyne.App) {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)

	settings := config.NewSettings(a)
	settings.SetLanguage(LanguageEnglish)
	settings.SetDownloadDirectory(t.TempDir())
	if prepare != nil {
		prepare(settings)
	}

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	return NewRootUI(w, a, logging.Discard()), a
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestUI(t, nil)

	assert.Equal(t, "No file selected", ui.workbookLabel.Text)
	assert.Equal(t, "Select an Excel workbook", ui.sheetHint.Text)
	assert.True(t, ui.skipCheck.Checked)
	assert.NotEmpty(t, ui.downloadDir)
	assert.True(t, ui.executeBtn.Disabled(), "nothing to run without a workbook")
}

func TestRootUI_SetWorkbookHidesResultsSheet(t *testing.T) {
	ui, _ := newTestUI(t, nil)
	path := writeWorkbook(t, "A", "B", "results")

	ui.setWorkbook(path, []string{"A", "B", "results"}, nil)

	assert.Equal(t, []string{"A", "B"}, ui.sheetGroup.Options)
	assert.Empty(t, ui.sheetGroup.Selected)
	assert.True(t, ui.executeBtn.Disabled(), "no sheet selected yet")

	ui.sheetGroup.SetSelected([]string{"B"})
	assert.False(t, ui.executeBtn.Disabled())

	req := ui.request()
	assert.Equal(t, path, req.WorkbookPath)
	assert.Equal(t, []string{"B"}, req.Sheets)
	assert.True(t, req.SkipProcessed)
	assert.True(t, req.OpenOnSuccess)
}

func TestRootUI_NoSheets(t *testing.T) {
	ui, _ := newTestUI(t, nil)

	ui.setWorkbook("/tmp/only-results.xlsx", []string{"results"}, nil)

	assert.Empty(t, ui.sheetGroup.Options)
	assert.Equal(t, "No sheets found", ui.sheetHint.Text)
	assert.True(t, ui.executeBtn.Disabled())
}

func TestRootUI_OnWorkbookSelected(t *testing.T) {
	ui, a := newTestUI(t, nil)
	path := writeWorkbook(t, "Talks", "Notes")

	ui.onWorkbookSelected(path)

	assert.Equal(t, path, ui.workbookPath)
	assert.Equal(t, []string{"Talks", "Notes"}, ui.sheetGroup.Options)
	assert.Equal(t, path, config.NewSettings(a).GetLastWorkbook())
}

func TestRootUI_OnWorkbookSelectedInvalidFile(t *testing.T) {
	ui, _ := newTestUI(t, nil)

	ui.onWorkbookSelected(filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.Empty(t, ui.workbookPath)
	assert.Empty(t, ui.sheetGroup.Options)
}

func TestRootUI_RestoresLastSelection(t *testing.T) {
	path := writeWorkbook(t, "A", "B", "C")
	ui, _ := newTestUI(t, func(s *config.Settings) {
		s.SetLastWorkbook(path)
		s.SetLastSheets([]string{"C", "gone", "A"})
		s.SetSkipProcessed(false)
	})

	assert.Equal(t, path, ui.workbookPath)
	assert.Equal(t, []string{"C", "A"}, ui.sheetGroup.Selected)
	assert.False(t, ui.skipCheck.Checked)
	assert.False(t, ui.executeBtn.Disabled())
}

func TestRootUI_DownloadDirIsRemembered(t *testing.T) {
	ui, a := newTestUI(t, nil)
	dir := t.TempDir()

	ui.setDownloadDir(dir)

	assert.Equal(t, dir, ui.folderLabel.Text)
	assert.Equal(t, dir, config.NewSettings(a).GetDownloadDirectory())

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	next := NewRootUI(w, a, logging.Discard())
	assert.Equal(t, dir, next.downloadDir)
}

func TestRootUI_HandleEvents(t *testing.T) {
	ui, _ := newTestUI(t, nil)
	ui.setRunning(true)
	assert.True(t, ui.workbookBtn.Disabled())
	assert.True(t, ui.sheetGroup.Disabled())
	req := pipeline.Request{DownloadDir: ui.downloadDir}

	ui.handleEvent(model.Progress{Percent: 50, Message: "Processing... (2/4)"}, req)
	assert.InDelta(t, 50, ui.progressBar.Value, 0.001)
	assert.Equal(t, "Processing... (2/4)", ui.statusLabel.Text)

	ui.handleEvent(model.ItemResult{Sheet: "A", Row: 2, Name: "talk.m4a", Status: "success (duration: 02:05)", OK: true}, req)
	assert.Contains(t, ui.logLabel.Text, `Sheet "A" row 2: talk.m4a - success (duration: 02:05)`)

	ui.handleEvent(model.Completion{Success: true, Message: "Processing completed."}, req)
	assert.InDelta(t, 100, ui.progressBar.Value, 0.001)
	assert.False(t, ui.isRunning())
	assert.False(t, ui.workbookBtn.Disabled())
}

func TestRootUI_HandleFailedCompletion(t *testing.T) {
	ui, _ := newTestUI(t, nil)
	ui.setRunning(true)

	ui.handleEvent(model.Completion{Success: false, Message: "locked", Err: errors.New("locked")}, pipeline.Request{})

	assert.False(t, ui.isRunning())
	assert.Equal(t, "locked", ui.statusLabel.Text)
	assert.Contains(t, ui.logLabel.Text, "Error: locked")
	assert.InDelta(t, 0, ui.progressBar.Value, 0.001)
}

func TestRootUI_LogIsBounded(t *testing.T) {
	ui, _ := newTestUI(t, nil)
	for i := 0; i < LogMaxLines+10; i++ {
		ui.appendLog("line")
	}
	assert.Len(t, ui.logLines, LogMaxLines)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, a := newTestUI(t, nil)

	ui.onLanguageChange(LanguageJapanese)

	assert.Equal(t, "実行", ui.executeBtn.Text)
	assert.Equal(t, "ファイルが選択されていません", ui.workbookLabel.Text)
	assert.Equal(t, "処理状況", ui.progressCard.Subtitle)
	assert.Equal(t, LanguageJapanese, config.NewSettings(a).GetLanguage())
}

func TestSettingsDialog_Apply(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	settings := config.NewSettings(a)
	settings.SetDownloadDirectory("/first")
	settings.SetLanguage(LanguageEnglish)

	sd := NewSettingsDialog(settings, NewLocalization(), w, nil)
	sd.loadCurrentSettings()
	assert.Equal(t, "/first", sd.downloadDirEntry.Text)
	assert.True(t, sd.openCheck.Checked)
	assert.False(t, sd.revealCheck.Checked)

	sd.downloadDirEntry.SetText("/second")
	sd.openCheck.SetChecked(false)
	sd.revealCheck.SetChecked(true)
	sd.skipCheck.SetChecked(false)
	for i, code := range sd.languageCodes {
		if code == LanguageJapanese {
			sd.languageSelect.SetSelectedIndex(i)
		}
	}

	saved := false
	sd.onSaved = func() { saved = true }
	sd.onSave(true)

	assert.True(t, saved)
	assert.Equal(t, "/second", settings.GetDownloadDirectory())
	assert.False(t, settings.GetOpenOnComplete())
	assert.True(t, settings.GetRevealDownloadsOnComplete())
	assert.False(t, settings.GetSkipProcessed())
	assert.Equal(t, LanguageJapanese, settings.GetLanguage())
}

func TestSettingsDialog_CancelKeepsValues(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	settings := config.NewSettings(a)
	settings.SetDownloadDirectory("/first")

	sd := NewSettingsDialog(settings, NewLocalization(), w, nil)
	sd.loadCurrentSettings()
	sd.downloadDirEntry.SetText("/second")
	sd.onSave(false)

	assert.Equal(t, "/first", settings.GetDownloadDirectory())
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, intersect([]string{"b", "x", "a"}, []string{"a", "b"}))
	assert.Nil(t, intersect(nil, []string{"a"}))
}
