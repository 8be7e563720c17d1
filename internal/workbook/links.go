package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ytget/m4a-report/internal/model"
)

// DriveMarker is the substring that identifies a Drive file share link
const DriveMarker = "drive.google.com/file"

// TrailingLinkScan is how many rows below the last row with values are
// probed for link cells that carry only a hyperlink
const TrailingLinkScan = 1000

// ExtractLinks collects rows whose link column holds a Drive share link.
//
// Sheets are visited in the given order and rows top to bottom, starting
// below the header. Names the workbook does not contain are ignored. With
// skipProcessed set, rows whose status column is non-empty are skipped. The
// cell's own string value wins over an attached hyperlink target.
func (w *Workbook) ExtractLinks(sheets []string, skipProcessed bool) ([]model.LinkRecord, error) {
	var links []model.LinkRecord

	for _, sheet := range sheets {
		if !w.HasSheet(sheet) {
			w.logger.Debug("sheet not in workbook, ignoring", "sheet", sheet)
			continue
		}

		rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%w: read sheet %q: %w", ErrLoad, sheet, err)
		}

		last := w.lastRow(sheet, len(rows))
		found := 0
		for rowNum := HeaderRow + 1; rowNum <= last; rowNum++ {
			var cells []string
			if rowNum <= len(rows) {
				cells = rows[rowNum-1]
			}

			if skipProcessed && valueAt(cells, StatusColumn) != "" {
				continue
			}

			url, ok := w.linkTarget(sheet, rowNum, valueAt(cells, LinkColumn))
			if !ok {
				continue
			}
			links = append(links, model.LinkRecord{Sheet: sheet, Row: rowNum, URL: url})
			found++
		}

		w.logger.Debug("sheet scanned", "sheet", sheet, "rows", last, "links", found)
	}

	return links, nil
}

// lastRow returns the last row worth scanning. GetRows drops trailing rows
// without values, so the sheet dimension and the link column hyperlinks
// below the loaded rows are taken into account too.
func (w *Workbook) lastRow(sheet string, loaded int) int {
	last := loaded
	if ref, err := w.file.GetSheetDimension(sheet); err == nil {
		if _, end, ok := strings.Cut(ref, ":"); ok {
			if _, row, err := excelize.CellNameToCoordinates(end); err == nil && row > last {
				last = row
			}
		}
	}

	for row, gap := last+1, 0; gap < TrailingLinkScan && row <= excelize.TotalRows; row++ {
		ok, _, err := w.file.GetCellHyperLink(sheet, cellName(LinkColumn, row))
		if err == nil && ok {
			last, gap = row, 0
			continue
		}
		gap++
	}
	return last
}

// linkTarget returns the share link of a row, checking the raw value first
// and the cell hyperlink second
func (w *Workbook) linkTarget(sheet string, row int, value string) (string, bool) {
	if strings.Contains(value, DriveMarker) {
		return value, true
	}

	hasLink, target, err := w.file.GetCellHyperLink(sheet, cellName(LinkColumn, row))
	if err != nil || !hasLink {
		return "", false
	}
	if strings.Contains(target, DriveMarker) {
		return target, true
	}
	return "", false
}

// valueAt returns the value of a 1-based column, or "" past the row end
func valueAt(cells []string, col int) string {
	if col-1 < len(cells) {
		return cells[col-1]
	}
	return ""
}
