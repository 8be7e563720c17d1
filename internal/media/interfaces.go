package media

import (
	"time"

	"github.com/ytget/m4a-report/internal/model"
)

// Inspector defines the interface for the media inspection service.
type Inspector interface {
	Analyze(res model.DownloadResult) (*model.MediaInfo, bool)
	Duration(path string) (time.Duration, error)
}

var _ Inspector = (*Service)(nil)
