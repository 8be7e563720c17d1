// Package pipeline runs one report job end to end: lock check, workbook
// load, link extraction, a sequential download/inspect/annotate loop that
// stops at the first failed row, the results sheet, save and open.
//
// Progress is reported as model.Event values, either through a callback
// (Run) or a channel fed by a single worker goroutine (Start).
package pipeline
