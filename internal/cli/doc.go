// Package cli implements the m4a-report command line: the desktop window
// by default, plus headless "run", "sheets" and "config" commands.
package cli
