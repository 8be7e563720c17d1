package download

import (
	"context"

	"github.com/ytget/m4a-report/internal/model"
)

// Fetcher defines the interface for the download service.
type Fetcher interface {
	// Fetch downloads the file behind rec.URL into the download directory.
	Fetch(ctx context.Context, rec model.LinkRecord) (*model.DownloadResult, error)

	// Provenance returns the rows that produced the file at path.
	Provenance(path string) []model.RowKey

	// SetDownloadDirectory sets the download directory
	SetDownloadDirectory(dir string)
}

var _ Fetcher = (*Service)(nil)
