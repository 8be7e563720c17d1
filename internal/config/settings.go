package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/m4a-report/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyLastWorkbook       = "last_workbook"
	KeyLastSheets         = "last_sheets"
	KeySkipProcessed      = "skip_processed_rows"
	KeyOpenOnComplete     = "open_workbook_on_complete"
	KeyLanguage           = "app_language"
	KeyRevealDownloadsDir = "reveal_downloads_on_complete"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultSkipProcessed      = true
	DefaultOpenOnComplete     = true
	DefaultRevealDownloadsDir = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir := platform.DefaultDownloadDir()
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLastWorkbook returns the workbook chosen in the previous session
func (s *Settings) GetLastWorkbook() string {
	return s.app.Preferences().String(KeyLastWorkbook)
}

// SetLastWorkbook remembers the chosen workbook
func (s *Settings) SetLastWorkbook(path string) {
	s.app.Preferences().SetString(KeyLastWorkbook, path)
}

// GetLastSheets returns the sheet selection of the previous run
func (s *Settings) GetLastSheets() []string {
	return s.app.Preferences().StringList(KeyLastSheets)
}

// SetLastSheets remembers the sheet selection
func (s *Settings) SetLastSheets(sheets []string) {
	s.app.Preferences().SetStringList(KeyLastSheets, sheets)
}

// GetSkipProcessed returns whether rows with a status value are skipped
func (s *Settings) GetSkipProcessed() bool {
	return s.app.Preferences().BoolWithFallback(KeySkipProcessed, DefaultSkipProcessed)
}

// SetSkipProcessed sets whether rows with a status value are skipped
func (s *Settings) SetSkipProcessed(skip bool) {
	s.app.Preferences().SetBool(KeySkipProcessed, skip)
}

// GetOpenOnComplete returns whether the workbook is opened after a successful run
func (s *Settings) GetOpenOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyOpenOnComplete, DefaultOpenOnComplete)
}

// SetOpenOnComplete sets whether the workbook is opened after a successful run
func (s *Settings) SetOpenOnComplete(open bool) {
	s.app.Preferences().SetBool(KeyOpenOnComplete, open)
}

// GetRevealDownloadsOnComplete returns whether the download folder is shown after a run
func (s *Settings) GetRevealDownloadsOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealDownloadsDir, DefaultRevealDownloadsDir)
}

// SetRevealDownloadsOnComplete sets whether the download folder is shown after a run
func (s *Settings) SetRevealDownloadsOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealDownloadsDir, reveal)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ja":     "日本語",
	}
}
