package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/m4a-report/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	languageSelect   *widget.Select
	skipCheck        *widget.Check
	openCheck        *widget.Check
	revealCheck      *widget.Check

	languageCodes []string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the values were stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(IconFolder, sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	labels := sd.settings.GetLanguageOptions()
	sd.languageCodes = sortedLanguageCodes(labels)
	options := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		options = append(options, labels[code])
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	sd.skipCheck = widget.NewCheck(t(KeySkipProcessed), nil)
	sd.openCheck = widget.NewCheck(t(KeyOpenOnComplete), nil)
	sd.revealCheck = widget.NewCheck(t(KeyRevealDownloads), nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyDownloadDirectory)),
		downloadDirRow,
		widget.NewSeparator(),
		sd.skipCheck,
		sd.openCheck,
		sd.revealCheck,
		widget.NewSeparator(),
		widget.NewLabel(t(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.skipCheck.SetChecked(sd.settings.GetSkipProcessed())
	sd.openCheck.SetChecked(sd.settings.GetOpenOnComplete())
	sd.revealCheck.SetChecked(sd.settings.GetRevealDownloadsOnComplete())

	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the dialog values
func (sd *SettingsDialog) apply() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}
	sd.settings.SetSkipProcessed(sd.skipCheck.Checked)
	sd.settings.SetOpenOnComplete(sd.openCheck.Checked)
	sd.settings.SetRevealDownloadsOnComplete(sd.revealCheck.Checked)

	if i := sd.languageSelect.SelectedIndex(); i >= 0 && i < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[i])
	}
}
