package download

import (
	"github.com/ytdesk/ytdesk/internal/model"
)

// Submitter is the runner surface front-ends depend on. The event channel is
// the only path results travel back on, so attaching a different front-end
// needs nothing beyond these methods.
type Submitter interface {
	Submit(url string, kind model.MediaKind) (*model.DownloadRequest, error)
	Events() <-chan model.Event
	Get(id string) (*model.DownloadRequest, bool)
	All() []*model.DownloadRequest
	InFlight() []*model.DownloadRequest

	// SetBaseDir re-roots the output layout for future requests
	SetBaseDir(dir string)

	// SetConfig replaces the runner configuration for future requests
	SetConfig(cfg Config)
}
