package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Run opens the main window and blocks until it is closed
func Run(logger *slog.Logger) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(NewCompactTheme())

	w := a.NewWindow("")
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	NewRootUI(w, a, logger)

	w.ShowAndRun()
	return nil
}
