// Package config holds the two configuration sources of the application:
// Fyne preferences for the desktop window and a TOML file for the command
// line.
package config
