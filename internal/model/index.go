package model

// Result table column headers, in sheet order
const (
	ColumnSheet    = "Sheet"
	ColumnRow      = "Row"
	ColumnFileName = "File Name"
	ColumnDuration = "Duration"
	ColumnFilePath = "File Path"
)

// MediaIndex stores at most one MediaInfo per spreadsheet row.
//
// Entries are keyed by RowKey. Putting a second entry for the same key
// replaces the first one but keeps its original position, so Table always
// lists rows in the order they were first analyzed.
type MediaIndex struct {
	entries map[RowKey]MediaInfo
	order   []RowKey
}

// NewMediaIndex creates an empty index
func NewMediaIndex() *MediaIndex {
	return &MediaIndex{
		entries: make(map[RowKey]MediaInfo),
	}
}

// Put stores info under its row key, replacing any previous entry
func (idx *MediaIndex) Put(info MediaInfo) {
	key := info.Key()
	if _, exists := idx.entries[key]; !exists {
		idx.order = append(idx.order, key)
	}
	idx.entries[key] = info
}

// Get returns the entry for key, if any
func (idx *MediaIndex) Get(key RowKey) (MediaInfo, bool) {
	info, ok := idx.entries[key]
	return info, ok
}

// Len returns the number of analyzed rows
func (idx *MediaIndex) Len() int {
	return len(idx.order)
}

// Table renders the index as an ordered result table
func (idx *MediaIndex) Table() ResultTable {
	rows := make([]MediaInfo, 0, len(idx.order))
	for _, key := range idx.order {
		rows = append(rows, idx.entries[key])
	}
	return ResultTable{rows: rows}
}

// ResultTable is the ordered content of the summary sheet
type ResultTable struct {
	rows []MediaInfo
}

// NewResultTable builds a table from rows in the given order
func NewResultTable(rows ...MediaInfo) ResultTable {
	return ResultTable{rows: append([]MediaInfo(nil), rows...)}
}

// Columns returns the header names of the table
func (rt ResultTable) Columns() []string {
	return []string{ColumnSheet, ColumnRow, ColumnFileName, ColumnDuration, ColumnFilePath}
}

// Rows returns the cell values of every data row, matching Columns
func (rt ResultTable) Rows() [][]any {
	out := make([][]any, 0, len(rt.rows))
	for _, info := range rt.rows {
		out = append(out, []any{info.Sheet, info.Row, info.FileName, info.Duration, info.FilePath})
	}
	return out
}

// Len returns the number of data rows
func (rt ResultTable) Len() int {
	return len(rt.rows)
}

// IsEmpty reports whether the table has no data rows
func (rt ResultTable) IsEmpty() bool {
	return len(rt.rows) == 0
}
