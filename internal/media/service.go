package media

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abema/go-mp4"
	"github.com/tcolgate/mp3"

	"github.com/ytget/m4a-report/internal/model"
)

// Supported extensions, compared case-insensitively
const (
	ExtensionMP3 = ".mp3"
	ExtensionM4A = ".m4a"
)

// Service inspects audio files
type Service struct {
	logger *slog.Logger
}

// NewService creates a new media inspection service
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger.With("component", "media")}
}

// IsSupported reports whether path has an extension the inspector can read
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtensionMP3, ExtensionM4A:
		return true
	}
	return false
}

// Analyze returns the media info for a downloaded file. The second result is
// false for unsupported types and for files whose metadata could not be
// read; neither case is an error for the caller.
func (s *Service) Analyze(res model.DownloadResult) (*model.MediaInfo, bool) {
	if !IsSupported(res.LocalPath) {
		s.logger.Debug("skipping unsupported file", "path", res.LocalPath)
		return nil, false
	}

	d, err := s.Duration(res.LocalPath)
	if err != nil {
		s.logger.Warn("could not read audio metadata",
			"path", res.LocalPath,
			"sheet", res.Sheet,
			"row", res.Row,
			"error", err,
		)
		return nil, false
	}

	return &model.MediaInfo{
		FileName: res.FileName(),
		FilePath: res.LocalPath,
		Duration: model.FormatDuration(d),
		Sheet:    res.Sheet,
		Row:      res.Row,
	}, true
}

// Duration returns the playback length of an MP3 or M4A file
func (s *Service) Duration(path string) (time.Duration, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ExtensionMP3 && ext != ExtensionM4A {
		return 0, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}
	defer f.Close()

	var d time.Duration
	if ext == ExtensionMP3 {
		d, err = mp3Duration(f)
	} else {
		d, err = m4aDuration(f)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrAnalysis, filepath.Base(path), err)
	}
	return d, nil
}

// mp3Duration walks every MPEG audio frame and sums their durations
func mp3Duration(r io.Reader) (time.Duration, error) {
	dec := mp3.NewDecoder(r)

	var (
		frame   mp3.Frame
		skipped int
		frames  int
		total   time.Duration
	)
	for {
		err := dec.Decode(&frame, &skipped)
		if err != nil {
			// A truncated trailing frame still leaves a usable length
			if errors.Is(err, io.EOF) || (errors.Is(err, io.ErrUnexpectedEOF) && frames > 0) {
				break
			}
			return 0, err
		}
		frames++
		total += frame.Duration()
	}

	if frames == 0 {
		return 0, errors.New("no MPEG audio frames found")
	}
	return total, nil
}

// m4aDuration reads the movie header duration and timescale
func m4aDuration(r io.ReadSeeker) (time.Duration, error) {
	info, err := mp4.Probe(r)
	if err != nil {
		return 0, err
	}
	if info.Timescale == 0 {
		return 0, errors.New("movie header not found")
	}
	seconds := float64(info.Duration) / float64(info.Timescale)
	return time.Duration(seconds * float64(time.Second)), nil
}
