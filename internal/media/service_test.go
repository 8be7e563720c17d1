package media

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/m4a-report/internal/model"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.mp3", true},
		{"a.MP3", true},
		{"/x/y/talk.m4a", true},
		{"talk.M4A", true},
		{"doc.pdf", false},
		{"video.mp4", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsSupported(tt.path); got != tt.want {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDuration_MP3(t *testing.T) {
	// 2297 frames * 1152 / 44100 = 60.003s
	path := writeMP3(t, "intro.mp3", 2297)

	d, err := NewService(nil).Duration(path)
	require.NoError(t, err)

	secs := float64(2297*mp3FrameSamples) / mp3SampleRate
	want := time.Duration(secs * float64(time.Second))
	assert.InDelta(t, want.Seconds(), d.Seconds(), 0.01)
	assert.Equal(t, "01:00", model.FormatDuration(d))
}

func TestDuration_MP3UpperCaseExtension(t *testing.T) {
	path := writeMP3(t, "LOUD.MP3", 100)

	d, err := NewService(nil).Duration(path)
	require.NoError(t, err)
	assert.Greater(t, d, time.Duration(0))
}

func TestDuration_M4A(t *testing.T) {
	// 125 seconds at a 1000 Hz timescale
	path := writeM4A(t, "talk.m4a", 1000, 125000)

	d, err := NewService(nil).Duration(path)
	require.NoError(t, err)
	assert.Equal(t, 125*time.Second, d)
	assert.Equal(t, "02:05", model.FormatDuration(d))
}

func TestDuration_M4AWithoutMovieHeader(t *testing.T) {
	path := writeFile(t, "broken.m4a", []byte{0, 0, 0, 8, 'f', 'r', 'e', 'e'})

	_, err := NewService(nil).Duration(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAnalysis))
}

func TestDuration_MP3Garbage(t *testing.T) {
	path := writeFile(t, "noise.mp3", []byte("this is not an mpeg stream"))

	_, err := NewService(nil).Duration(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysis)
}

func TestDuration_Unsupported(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("hello"))

	_, err := NewService(nil).Duration(path)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDuration_MissingFile(t *testing.T) {
	_, err := NewService(nil).Duration(filepath.Join(t.TempDir(), "gone.mp3"))
	assert.ErrorIs(t, err, ErrAnalysis)
}

func TestAnalyze(t *testing.T) {
	svc := NewService(nil)

	t.Run("m4a yields media info", func(t *testing.T) {
		path := writeM4A(t, "episode.m4a", 44100, 44100*61)
		res := model.DownloadResult{LocalPath: path, Sheet: "Sheet1", Row: 4, OriginalURL: "u"}

		info, ok := svc.Analyze(res)
		require.True(t, ok)
		assert.Equal(t, &model.MediaInfo{
			FileName: "episode.m4a",
			FilePath: path,
			Duration: "01:01",
			Sheet:    "Sheet1",
			Row:      4,
		}, info)
	})

	t.Run("unsupported type is skipped", func(t *testing.T) {
		path := writeFile(t, "slides.pdf", []byte("%PDF-1.4"))
		info, ok := svc.Analyze(model.DownloadResult{LocalPath: path, Sheet: "S", Row: 2})
		assert.False(t, ok)
		assert.Nil(t, info)
	})

	t.Run("corrupt audio is skipped", func(t *testing.T) {
		path := writeFile(t, "corrupt.m4a", []byte("garbage"))
		info, ok := svc.Analyze(model.DownloadResult{LocalPath: path, Sheet: "S", Row: 3})
		assert.False(t, ok)
		assert.Nil(t, info)
	})
}
