package download

import (
	"context"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytdesk/ytdesk/internal/options"
)

// How often the extraction library reports progress
const progressInterval = 500 * time.Millisecond

// Upload dates arrive as YYYYMMDD strings
const uploadYearLength = 4

// progressFunc receives sanitized-input progress: percent complete (0-100),
// whether the library moved into its finalizing phase, and the media title
// once known.
type progressFunc func(percent float64, finalizing bool, title string)

// extractResult carries what the runner needs back from one library call
type extractResult struct {
	OutputPath string
	Title      string
	Artist     string
	UploadYear string
}

// extractor runs one option set against one URL. Swapped out in tests so the
// runner can be exercised without the yt-dlp binary.
type extractor func(ctx context.Context, set options.Set, url string, onProgress progressFunc) (*extractResult, error)

// runYTDLP is the production extractor built on github.com/lrstanley/go-ytdlp
func runYTDLP(ctx context.Context, set options.Set, url string, onProgress progressFunc) (*extractResult, error) {
	dl := set.Apply(ytdlp.New())

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		percent := 0.0
		if update.TotalBytes > 0 {
			percent = float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
		}

		title := ""
		if update.Info != nil && update.Info.Title != nil {
			title = *update.Info.Title
		}

		finalizing := update.Status == ytdlp.ProgressStatusFinished ||
			update.Status == ytdlp.ProgressStatusPostProcessing
		onProgress(percent, finalizing, title)
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, err
	}

	res := &extractResult{}
	if result == nil {
		return res, nil
	}

	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return res, nil
	}

	first := info[0]
	if first.Filename != nil {
		res.OutputPath = *first.Filename
	}
	if first.Title != nil {
		res.Title = *first.Title
	}
	if first.Uploader != nil {
		res.Artist = *first.Uploader
	}
	if first.UploadDate != nil && len(*first.UploadDate) >= uploadYearLength {
		res.UploadYear = (*first.UploadDate)[:uploadYearLength]
	}

	return res, nil
}
