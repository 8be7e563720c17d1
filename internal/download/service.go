package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/m4a-report/internal/model"
	"github.com/ytget/m4a-report/internal/platform"
)

// Download constants
const (
	PartialSuffix    = ".part"
	DefaultUserAgent = "m4a-report"
)

// Service handles download operations
type Service struct {
	downloadDir string
	baseURL     string
	userAgent   string
	client      *http.Client
	logger      *slog.Logger

	provMutex  sync.RWMutex
	provenance map[string][]model.RowKey // destination path -> requesting rows
}

// NewService creates a new download service
func NewService(downloadDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		downloadDir: downloadDir,
		baseURL:     DefaultBaseURL,
		userAgent:   DefaultUserAgent,
		client:      &http.Client{},
		logger:      logger.With("component", "download"),
		provenance:  make(map[string][]model.RowKey),
	}
}

// SetDownloadDirectory sets the download directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.downloadDir = dir
}

// SetBaseURL overrides the Drive endpoint, e.g. for a proxy or tests
func (s *Service) SetBaseURL(base string) {
	if base != "" {
		s.baseURL = base
	}
}

// SetUserAgent sets the User-Agent sent with every request
func (s *Service) SetUserAgent(ua string) {
	if ua != "" {
		s.userAgent = ua
	}
}

// SetHTTPClient replaces the HTTP client. Its cookie jar is not used;
// every fetch gets a fresh one.
func (s *Service) SetHTTPClient(c *http.Client) {
	if c != nil {
		s.client = c
	}
}

// Fetch downloads the file behind rec.URL into the download directory and
// records rec's row as its provenance.
func (s *Service) Fetch(ctx context.Context, rec model.LinkRecord) (*model.DownloadResult, error) {
	fileID, err := ExtractFileID(rec.URL)
	if err != nil {
		return nil, err
	}

	if err := platform.CreateDirectoryIfNotExists(s.downloadDir); err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}

	log := s.logger.With("sheet", rec.Sheet, "row", rec.Row, "file_id", fileID)
	log.Info("downloading")

	resp, err := s.open(ctx, fileID)
	if err != nil {
		log.Warn("download request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	name := fileNameFromHeader(resp.Header.Get("Content-Disposition"), fileID)
	path, size, err := s.store(resp.Body, name)
	if err != nil {
		log.Warn("storing download failed", "name", name, "error", err)
		return nil, err
	}

	s.recordProvenance(path, rec.Key())
	log.Info("downloaded", "path", path, "bytes", size)

	return &model.DownloadResult{
		LocalPath:   path,
		Sheet:       rec.Sheet,
		Row:         rec.Row,
		OriginalURL: rec.URL,
	}, nil
}

// Provenance returns the rows that produced the file at path, in request order
func (s *Service) Provenance(path string) []model.RowKey {
	s.provMutex.RLock()
	defer s.provMutex.RUnlock()
	return append([]model.RowKey(nil), s.provenance[path]...)
}

func (s *Service) recordProvenance(path string, key model.RowKey) {
	s.provMutex.Lock()
	defer s.provMutex.Unlock()
	s.provenance[path] = append(s.provenance[path], key)
}

// open requests the file and resolves the confirmation step, returning a
// response whose body is the file content
func (s *Service) open(ctx context.Context, fileID string) (*http.Response, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	client := *s.client
	client.Jar = jar

	downloadURL := s.baseURL + fmt.Sprintf(DownloadPathTemplate, url.QueryEscape(fileID))
	resp, err := s.get(ctx, &client, downloadURL)
	if err != nil {
		return nil, err
	}

	if token := warningToken(resp.Cookies()); token != "" {
		resp.Body.Close()
		s.logger.Debug("large file confirmation required", "file_id", fileID)
		resp, err = s.get(ctx, &client, downloadURL+"&"+ConfirmParam+"="+url.QueryEscape(token))
		if err != nil {
			return nil, err
		}
	}

	if isHTML(resp) {
		next, ok := confirmURL(resp.Body, resp.Request.URL.String())
		resp.Body.Close()
		if !ok {
			return nil, fmt.Errorf("%w: provider returned a page instead of %s", ErrDownloadFailed, fileID)
		}
		s.logger.Debug("following confirmation form", "file_id", fileID)
		resp, err = s.get(ctx, &client, next)
		if err != nil {
			return nil, err
		}
		if isHTML(resp) {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: provider returned a page instead of %s", ErrDownloadFailed, fileID)
		}
	}

	return resp, nil
}

// get performs a GET and treats any non-200 answer as a failed download
func (s *Service) get(ctx context.Context, client *http.Client, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d", ErrDownloadFailed, resp.StatusCode)
	}
	return resp, nil
}

// store streams body into a partial file and renames it to name
func (s *Service) store(body io.Reader, name string) (string, int64, error) {
	tmp := filepath.Join(s.downloadDir, "."+generatePartialID()+PartialSuffix)
	f, err := os.Create(tmp)
	if err != nil {
		return "", 0, fmt.Errorf("create %s: %w", tmp, err)
	}

	n, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmp)
		if copyErr != nil {
			return "", 0, fmt.Errorf("write %s: %w", name, copyErr)
		}
		return "", 0, fmt.Errorf("write %s: %w", name, closeErr)
	}
	if n == 0 {
		_ = os.Remove(tmp)
		return "", 0, fmt.Errorf("%w: empty response for %s", ErrDownloadFailed, name)
	}

	dest := filepath.Join(s.downloadDir, name)
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", 0, fmt.Errorf("move %s into place: %w", name, err)
	}
	return dest, n, nil
}

// generatePartialID generates a unique name for an in-flight download
func generatePartialID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
