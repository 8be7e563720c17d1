package pipeline

import (
	"context"

	"github.com/ytget/m4a-report/internal/model"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/ytget/m4a-report/internal/pipeline Document,Fetcher,Inspector,Loader,LockChecker,Opener

// Document is an opened workbook as seen by the runner.
type Document interface {
	ExtractLinks(sheets []string, skipProcessed bool) ([]model.LinkRecord, error)
	Annotate(sheet string, row int, displayName, url, duration string) error
	WriteSummary(table model.ResultTable) error
	Save() error
	Close() error
}

// Loader opens the workbook at path.
type Loader interface {
	Load(path string) (Document, error)
}

// Fetcher downloads the file behind a link.
type Fetcher interface {
	Fetch(ctx context.Context, rec model.LinkRecord) (*model.DownloadResult, error)
	SetDownloadDirectory(dir string)
}

// Inspector derives media info from a downloaded file.
type Inspector interface {
	Analyze(res model.DownloadResult) (*model.MediaInfo, bool)
}

// LockChecker reports whether a file is held open by another process.
type LockChecker interface {
	IsFileOpen(path string) bool
}

// Opener opens a file with its default application.
type Opener interface {
	Open(path string) error
}
