package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Application identity
const (
	AppID = "com.ytget.m4a-report"

	WindowWidth  float32 = 720
	WindowHeight float32 = 640
)

// Log area sizing and retention
const (
	LogMinWidth  float32 = 600
	LogMinHeight float32 = 220
	LogMaxLines          = 500
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 360
)

// WorkbookExtensions are the file types offered by the workbook picker
var WorkbookExtensions = []string{".xlsx", ".xlsm"}
