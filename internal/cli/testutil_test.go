package cli

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates a workbook with the given sheets; links maps a
// sheet to J-column values starting at row 2
func writeWorkbook(t *testing.T, sheets []string, links map[string][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sheets {
		if i == 0 {
			if name != "Sheet1" {
				require.NoError(t, f.SetSheetName("Sheet1", name))
			}
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for row, value := range links[name] {
			require.NoError(t, f.SetCellValue(name, fmt.Sprintf("J%d", row+2), value))
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
