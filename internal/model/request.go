package model

import (
	"strings"
	"time"
)

// DownloadRequest represents a single user-submitted download
type DownloadRequest struct {
	ID         string
	URL        string
	Kind       MediaKind
	Status     RequestStatus
	Percent    float64   // 0 to 100, last reported by the extractor
	Title      string    // media title, filled in once known
	LastError  string    // last error message if any
	ErrorKind  ErrorKind // failure classification, empty unless Status is failed
	OutputPath string    // path to the downloaded file
	StartedAt  time.Time // when the request was submitted
	FinishedAt time.Time // when the worker finished
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dr *DownloadRequest) GetDisplayTitle() string {
	if dr.Title != "" && !strings.HasPrefix(dr.Title, "http") {
		return dr.Title
	}

	if dr.OutputPath != "" {
		// Extract just the filename without path (support both / and \ separators)
		parts := strings.FieldsFunc(dr.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return dr.URL
}
