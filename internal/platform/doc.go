// Package platform contains OS integration used around a run: the
// "is this file open elsewhere" check, opening files with their default
// application or in the file manager, and filesystem helpers.
package platform
