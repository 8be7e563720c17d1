package ui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"fyne.io/fyne/v2/lang"

	"github.com/ytget/m4a-report/internal/model"
	"github.com/ytget/m4a-report/internal/pipeline"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Supported language codes
const (
	LanguageSystem   = "system"
	LanguageEnglish  = "en"
	LanguageJapanese = "ja"
)

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyWorkbookGroup       = "workbook_group"
	KeyNoWorkbook          = "no_workbook"
	KeyDownloadGroup       = "download_group"
	KeyNoFolder            = "no_folder"
	KeyBrowse              = "browse"
	KeySheetGroup          = "sheet_group"
	KeySelectWorkbookFirst = "select_workbook_first"
	KeyNoSheets            = "no_sheets"
	KeySkipProcessed       = "skip_processed"
	KeyProgressGroup       = "progress_group"
	KeyExecute             = "execute"
	KeyStarting            = "starting"
	KeyErrorTitle          = "error_title"
	KeyDoneTitle           = "done_title"
	KeyErrorPrefix         = "error_prefix"
	KeyItemLineFormat      = "item_line_format"
	KeyOpenOnComplete      = "open_on_complete"
	KeyRevealDownloads     = "reveal_downloads"
	KeyDownloadDirectory   = "download_directory"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyErrorOpeningFolder  = "error_opening_folder"
	KeyOpenDownloads       = "open_downloads"

	// Messages emitted by a run
	KeyProcessingFormat    = "processing_format"
	KeyItemSuccessFormat   = "item_success_format"
	KeyItemFailureFormat   = "item_failure_format"
	KeyUnknownDuration     = "unknown_duration"
	KeyFileLocked          = "file_locked"
	KeyNoLinks             = "no_links"
	KeySummaryFailedFormat = "summary_failed_format"
	KeySummarySkipped      = "summary_skipped"
	KeyCompleted           = "completed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == LanguageSystem {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// systemLanguage returns the two letter code of the OS locale
func systemLanguage() string {
	locale := strings.ToLower(string(lang.SystemLocale()))
	if len(locale) >= 2 {
		return locale[:2]
	}
	return LanguageEnglish
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguageEnglish:  "English",
		LanguageJapanese: "日本語",
	}
}

func sortedLanguageCodes(languages map[string]string) []string {
	return slices.Sorted(maps.Keys(languages))
}

// ItemLine renders a per-row result for the log area
func (l *Localization) ItemLine(it model.ItemResult) string {
	return fmt.Sprintf(l.GetText(KeyItemLineFormat), it.Sheet, it.Row, it.Name, it.Status)
}

// PipelineMessages returns the run messages in the current language
func (l *Localization) PipelineMessages() pipeline.Messages {
	return pipeline.Messages{
		ProcessingFormat:    l.GetText(KeyProcessingFormat),
		ItemSuccessFormat:   l.GetText(KeyItemSuccessFormat),
		ItemFailureFormat:   l.GetText(KeyItemFailureFormat),
		UnknownDuration:     l.GetText(KeyUnknownDuration),
		FileLocked:          l.GetText(KeyFileLocked),
		NoLinks:             l.GetText(KeyNoLinks),
		SummaryFailedFormat: l.GetText(KeySummaryFailedFormat),
		SummarySkipped:      l.GetText(KeySummarySkipped),
		Completed:           l.GetText(KeyCompleted),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	def := pipeline.DefaultMessages()

	// English texts
	l.texts[LanguageEnglish] = map[string]string{
		KeyAppTitle:            "M4A Report",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyWorkbookGroup:       "Excel workbook",
		KeyNoWorkbook:          "No file selected",
		KeyDownloadGroup:       "Save downloaded files to",
		KeyNoFolder:            "No folder selected",
		KeyBrowse:              "Browse...",
		KeySheetGroup:          "Sheets to process",
		KeySelectWorkbookFirst: "Select an Excel workbook",
		KeyNoSheets:            "No sheets found",
		KeySkipProcessed:       "Skip rows that already have a value in column L (duration)",
		KeyProgressGroup:       "Progress",
		KeyExecute:             "Run",
		KeyStarting:            "Starting...",
		KeyErrorTitle:          "Error",
		KeyDoneTitle:           "Done",
		KeyErrorPrefix:         "Error: ",
		KeyItemLineFormat:      "Sheet %q row %d: %s - %s",
		KeyOpenOnComplete:      "Open the workbook when the run completes",
		KeyRevealDownloads:     "Show the download folder when the run completes",
		KeyDownloadDirectory:   "Default download folder",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved",
		KeyErrorOpeningFolder:  "Error opening folder",
		KeyOpenDownloads:       "Open download folder",

		KeyProcessingFormat:    def.ProcessingFormat,
		KeyItemSuccessFormat:   def.ItemSuccessFormat,
		KeyItemFailureFormat:   def.ItemFailureFormat,
		KeyUnknownDuration:     def.UnknownDuration,
		KeyFileLocked:          def.FileLocked,
		KeyNoLinks:             def.NoLinks,
		KeySummaryFailedFormat: def.SummaryFailedFormat,
		KeySummarySkipped:      def.SummarySkipped,
		KeyCompleted:           def.Completed,
	}

	// Japanese texts
	l.texts[LanguageJapanese] = map[string]string{
		KeyAppTitle:            "M4A Report",
		KeySettings:            "設定",
		KeyFile:                "ファイル",
		KeyLanguage:            "言語",
		KeyWorkbookGroup:       "Excelファイル選択",
		KeyNoWorkbook:          "ファイルが選択されていません",
		KeyDownloadGroup:       "ダウンロードしたファイルの保存先",
		KeyNoFolder:            "フォルダが選択されていません",
		KeyBrowse:              "参照...",
		KeySheetGroup:          "処理対象シート選択",
		KeySelectWorkbookFirst: "Excelファイルを選択してください",
		KeyNoSheets:            "シートが見つかりませんでした",
		KeySkipProcessed:       "L列(再生時間)に値がある行をスキップする",
		KeyProgressGroup:       "処理状況",
		KeyExecute:             "実行",
		KeyStarting:            "処理を開始します...",
		KeyErrorTitle:          "エラー",
		KeyDoneTitle:           "完了",
		KeyErrorPrefix:         "エラー: ",
		KeyItemLineFormat:      "シート「%s」の %d 行目: %s - %s",
		KeyOpenOnComplete:      "処理完了後にExcelファイルを開く",
		KeyRevealDownloads:     "処理完了後に保存先フォルダを開く",
		KeyDownloadDirectory:   "既定の保存先フォルダ",
		KeySave:                "保存",
		KeyCancel:              "キャンセル",
		KeySettingsSaved:       "設定を保存しました",
		KeyErrorOpeningFolder:  "フォルダを開けませんでした",
		KeyOpenDownloads:       "保存先フォルダを開く",

		KeyProcessingFormat:    "処理中... (%d/%d)",
		KeyItemSuccessFormat:   "成功 (再生時間: %s)",
		KeyItemFailureFormat:   "失敗: %v",
		KeyUnknownDuration:     "不明",
		KeyFileLocked:          "Excelファイルが開かれています。閉じてから処理を実行してください。",
		KeyNoLinks:             "処理対象のファイルリンクが見つかりませんでした。",
		KeySummaryFailedFormat: "結果シートの作成に失敗: %v",
		KeySummarySkipped:      "分析結果がありません。結果シートは作成されません。",
		KeyCompleted:           "処理が完了しました。",
	}
}
