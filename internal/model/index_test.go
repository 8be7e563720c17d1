package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaIndex_PutAndGet(t *testing.T) {
	idx := NewMediaIndex()
	idx.Put(MediaInfo{FileName: "a.mp3", Duration: "01:00", Sheet: "A", Row: 2})
	idx.Put(MediaInfo{FileName: "b.m4a", Duration: "02:00", Sheet: "B", Row: 2})

	require.Equal(t, 2, idx.Len())

	got, ok := idx.Get(RowKey{Sheet: "A", Row: 2})
	require.True(t, ok)
	assert.Equal(t, "a.mp3", got.FileName)

	_, ok = idx.Get(RowKey{Sheet: "A", Row: 3})
	assert.False(t, ok)
}

func TestMediaIndex_PutReplacesSameRow(t *testing.T) {
	idx := NewMediaIndex()
	idx.Put(MediaInfo{FileName: "first.mp3", Sheet: "A", Row: 2})
	idx.Put(MediaInfo{FileName: "other.mp3", Sheet: "A", Row: 3})
	idx.Put(MediaInfo{FileName: "second.mp3", Sheet: "A", Row: 2})

	assert.Equal(t, 2, idx.Len())

	rows := idx.Table().Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "second.mp3", rows[0][2], "replacement keeps the original position")
	assert.Equal(t, "other.mp3", rows[1][2])
}

func TestResultTable_ColumnsAndRows(t *testing.T) {
	table := NewResultTable(MediaInfo{
		FileName: "talk.m4a",
		FilePath: "/dl/talk.m4a",
		Duration: "03:45",
		Sheet:    "A",
		Row:      2,
	})

	assert.Equal(t, []string{"Sheet", "Row", "File Name", "Duration", "File Path"}, table.Columns())
	assert.Equal(t, [][]any{{"A", 2, "talk.m4a", "03:45", "/dl/talk.m4a"}}, table.Rows())
	assert.False(t, table.IsEmpty())
	assert.True(t, NewMediaIndex().Table().IsEmpty())
}

func TestRowKey_String(t *testing.T) {
	assert.Equal(t, "Sheet1!12", RowKey{Sheet: "Sheet1", Row: 12}.String())
}

func TestDownloadResult_FileName(t *testing.T) {
	res := DownloadResult{LocalPath: "/tmp/out/voice memo.m4a", Sheet: "A", Row: 4}
	assert.Equal(t, "voice memo.m4a", res.FileName())
	assert.Equal(t, RowKey{Sheet: "A", Row: 4}, res.Key())
}
