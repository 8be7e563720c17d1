package ui

// Package ui contains the Fyne desktop window for the report tool.
// It collects the workbook, destination folder and sheet selection, runs the
// pipeline in the background and renders its progress events on the UI
// goroutine with fyne.Do. All UI strings are localized via Localization.
