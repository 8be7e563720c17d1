package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ytget/m4a-report/internal/logging"
)

// fixtureRow describes one data row of a test workbook.
type fixtureRow struct {
	sheet     string
	row       int
	link      string // raw J value
	hyperlink string // J hyperlink target
	status    string // L value
}

// writeFixture creates an .xlsx with the given sheets (header row included)
// and rows, and returns its path.
func writeFixture(t *testing.T, sheets []string, rows []fixtureRow) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheets[0]))
	for _, name := range sheets[1:] {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	for _, name := range sheets {
		require.NoError(t, f.SetCellValue(name, "A1", "Title"))
		require.NoError(t, f.SetCellValue(name, "J1", "Link"))
		require.NoError(t, f.SetCellValue(name, "L1", "Duration"))
	}

	for _, r := range rows {
		j := cellName(LinkColumn, r.row)
		require.NoError(t, f.SetCellValue(r.sheet, cellName(1, r.row), "item"))
		if r.link != "" {
			require.NoError(t, f.SetCellValue(r.sheet, j, r.link))
		}
		if r.hyperlink != "" {
			require.NoError(t, f.SetCellHyperLink(r.sheet, j, r.hyperlink, "External"))
		}
		if r.status != "" {
			require.NoError(t, f.SetCellValue(r.sheet, cellName(StatusColumn, r.row), r.status))
		}
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// openFixture opens path as a Workbook and closes it when the test ends.
func openFixture(t *testing.T, path string) *Workbook {
	t.Helper()
	wb, err := Open(path, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	return wb
}

// reopen reads a saved workbook back with plain excelize.
func reopen(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}
