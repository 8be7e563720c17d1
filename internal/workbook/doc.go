// Package workbook reads and updates the spreadsheet a run works on. It finds
// rows carrying Drive share links, annotates processed rows with a hyperlink
// and duration, regenerates the "results" summary sheet and saves the file.
// All spreadsheet I/O goes through github.com/xuri/excelize/v2.
package workbook
