package pipeline_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ytget/m4a-report/internal/download"
	"github.com/ytget/m4a-report/internal/media"
	"github.com/ytget/m4a-report/internal/model"
	"github.com/ytget/m4a-report/internal/pipeline"
)

type fixedLock bool

func (l fixedLock) IsFileOpen(string) bool { return bool(l) }

type recordingOpener struct{ opened []string }

func (o *recordingOpener) Open(path string) error {
	o.opened = append(o.opened, path)
	return nil
}

// m4aBytes returns ftyp + moov/mvhd(v0) describing seconds of audio at 1 kHz
func m4aBytes(seconds uint32) []byte {
	var buf bytes.Buffer
	be := binary.BigEndian

	_ = binary.Write(&buf, be, uint32(20))
	buf.WriteString("ftypM4A ")
	_ = binary.Write(&buf, be, uint32(0))
	buf.WriteString("M4A ")

	_ = binary.Write(&buf, be, uint32(116))
	buf.WriteString("moov")
	_ = binary.Write(&buf, be, uint32(108))
	buf.WriteString("mvhd")
	payload := make([]byte, 100)
	be.PutUint32(payload[12:16], 1000)
	be.PutUint32(payload[16:20], seconds*1000)
	be.PutUint32(payload[20:24], 0x00010000)
	be.PutUint16(payload[24:26], 0x0100)
	be.PutUint32(payload[96:100], 2)
	buf.Write(payload)
	return buf.Bytes()
}

func driveServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id") {
		case "TALK":
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Header().Set("Content-Disposition", `attachment; filename="talk.m4a"`)
			_, _ = w.Write(m4aBytes(125))
		case "NOTES":
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Header().Set("Content-Disposition", `attachment; filename="notes.pdf"`)
			_, _ = w.Write([]byte("%PDF-1.4"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func driveLink(id string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view", id)
}

// writeWorkbook creates a one-sheet workbook with a header row and the given J/L values per row
func writeWorkbook(t *testing.T, rows map[int][2]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "J1", "Link"))
	require.NoError(t, f.SetCellValue("Sheet1", "L1", "Duration"))
	for row, cells := range rows {
		require.NoError(t, f.SetCellValue("Sheet1", fmt.Sprintf("J%d", row), cells[0]))
		if cells[1] != "" {
			require.NoError(t, f.SetCellValue("Sheet1", fmt.Sprintf("L%d", row), cells[1]))
		}
	}

	path := filepath.Join(t.TempDir(), "podcasts.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newIntegrationRunner(t *testing.T, srv *httptest.Server, locked bool, opener pipeline.Opener) *pipeline.Runner {
	t.Helper()
	fetcher := download.NewService("", testLogger())
	fetcher.SetBaseURL(srv.URL)
	return pipeline.NewRunner(
		pipeline.WorkbookLoader{Logger: testLogger()},
		fetcher,
		media.NewService(testLogger()),
		fixedLock(locked),
		opener,
		testLogger(),
	)
}

func TestIntegration_ExampleRun(t *testing.T) {
	srv := driveServer(t)
	path := writeWorkbook(t, map[int][2]string{
		2: {driveLink("TALK"), ""},
		3: {driveLink("NOTES"), ""},
		4: {driveLink("DONE"), "12:00"},
		5: {"see attachment", ""},
	})
	dest := filepath.Join(t.TempDir(), "downloads")
	opener := &recordingOpener{}
	runner := newIntegrationRunner(t, srv, false, opener)

	var events []model.Event
	sum := runner.Run(context.Background(), pipeline.Request{
		WorkbookPath:  path,
		DownloadDir:   dest,
		Sheets:        []string{"Sheet1"},
		SkipProcessed: true,
		OpenOnSuccess: true,
	}, func(ev model.Event) { events = append(events, ev) })

	require.NoError(t, sum.Err)
	assert.Equal(t, model.RunStateDone, sum.State)
	assert.Equal(t, 2, sum.Succeeded)
	assert.Equal(t, 1, sum.Analyzed)
	assert.Equal(t, []string{path}, opener.opened)
	assert.FileExists(t, filepath.Join(dest, "talk.m4a"))
	assert.FileExists(t, filepath.Join(dest, "notes.pdf"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Sheet1", "J2")
	require.NoError(t, err)
	assert.Equal(t, "talk.m4a", name)
	ok, target, err := f.GetCellHyperLink("Sheet1", "J2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, driveLink("TALK"), target)
	duration, err := f.GetCellValue("Sheet1", "L2")
	require.NoError(t, err)
	assert.Equal(t, "02:05", duration)

	name, err = f.GetCellValue("Sheet1", "J3")
	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", name)
	duration, err = f.GetCellValue("Sheet1", "L3")
	require.NoError(t, err)
	assert.Empty(t, duration)

	// processed row left alone
	link4, err := f.GetCellValue("Sheet1", "J4")
	require.NoError(t, err)
	assert.Equal(t, driveLink("DONE"), link4)

	results, err := f.GetRows("results")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []string{"Sheet", "Row", "File Name", "Duration", "File Path"}, results[0])
	assert.Equal(t, []string{"Sheet1", "2", "talk.m4a", "02:05", filepath.Join(dest, "talk.m4a")}, results[1])
}

func TestIntegration_LockedWorkbookIsUntouched(t *testing.T) {
	srv := driveServer(t)
	path := writeWorkbook(t, map[int][2]string{2: {driveLink("TALK"), ""}})
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	opener := &recordingOpener{}
	runner := newIntegrationRunner(t, srv, true, opener)
	sum := runner.Run(context.Background(), pipeline.Request{
		WorkbookPath:  path,
		DownloadDir:   t.TempDir(),
		Sheets:        []string{"Sheet1"},
		OpenOnSuccess: true,
	}, nil)

	assert.ErrorIs(t, sum.Err, pipeline.ErrFileLocked)
	assert.Empty(t, opener.opened)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(before, after), "locked workbook must be byte-for-byte unchanged")
}

func TestIntegration_NoLinksLeavesWorkbookUnsaved(t *testing.T) {
	srv := driveServer(t)
	path := writeWorkbook(t, map[int][2]string{2: {driveLink("TALK"), "done"}})
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	runner := newIntegrationRunner(t, srv, false, &recordingOpener{})
	sum := runner.Run(context.Background(), pipeline.Request{
		WorkbookPath:  path,
		DownloadDir:   t.TempDir(),
		Sheets:        []string{"Sheet1"},
		SkipProcessed: true,
	}, nil)

	assert.ErrorIs(t, sum.Err, pipeline.ErrNoLinks)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(before, after))
}

func TestIntegration_HaltKeepsEarlierRows(t *testing.T) {
	srv := driveServer(t)
	path := writeWorkbook(t, map[int][2]string{
		2: {driveLink("TALK"), ""},
		3: {driveLink("MISSING"), ""},
		4: {driveLink("NOTES"), ""},
	})
	dest := t.TempDir()

	runner := newIntegrationRunner(t, srv, false, &recordingOpener{})
	sum := runner.Run(context.Background(), pipeline.Request{
		WorkbookPath: path,
		DownloadDir:  dest,
		Sheets:       []string{"Sheet1"},
	}, nil)

	require.NoError(t, sum.Err)
	assert.True(t, sum.Halted)
	assert.Equal(t, 2, sum.Attempted)
	assert.NoFileExists(t, filepath.Join(dest, "notes.pdf"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	j2, _ := f.GetCellValue("Sheet1", "J2")
	j4, _ := f.GetCellValue("Sheet1", "J4")
	assert.Equal(t, "talk.m4a", j2)
	assert.Equal(t, driveLink("NOTES"), j4)
}
