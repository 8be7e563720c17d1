package model

import (
	"fmt"
	"path/filepath"
)

// LinkRecord is one candidate file link found in a workbook row
type LinkRecord struct {
	Sheet string // sheet the link was found on
	Row   int    // 1-based row number, always >= 2
	URL   string // share link as written in the cell or its hyperlink
}

// Key returns the composite key of the row that holds the link
func (lr LinkRecord) Key() RowKey {
	return RowKey{Sheet: lr.Sheet, Row: lr.Row}
}

// DownloadResult describes a file fetched for a LinkRecord
type DownloadResult struct {
	LocalPath   string // path of the file inside the destination directory
	Sheet       string
	Row         int
	OriginalURL string
}

// Key returns the composite key of the row that requested the download
func (dr DownloadResult) Key() RowKey {
	return RowKey{Sheet: dr.Sheet, Row: dr.Row}
}

// FileName returns the base name of the downloaded file
func (dr DownloadResult) FileName() string {
	return filepath.Base(dr.LocalPath)
}

// MediaInfo holds the analysis result for one downloaded audio file
type MediaInfo struct {
	FileName string
	FilePath string
	Duration string // MM:SS, empty if unknown
	Sheet    string
	Row      int
}

// Key returns the composite key of the row the file belongs to
func (mi MediaInfo) Key() RowKey {
	return RowKey{Sheet: mi.Sheet, Row: mi.Row}
}

// RowKey identifies a single spreadsheet row across sheets
type RowKey struct {
	Sheet string
	Row   int
}

// String returns a human readable form such as "Sheet1!12"
func (k RowKey) String() string {
	return fmt.Sprintf("%s!%d", k.Sheet, k.Row)
}
