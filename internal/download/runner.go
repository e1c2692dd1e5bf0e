package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytdesk/ytdesk/internal/media"
	"github.com/ytdesk/ytdesk/internal/model"
	"github.com/ytdesk/ytdesk/internal/options"
	"github.com/ytdesk/ytdesk/internal/platform"
)

// Event channel capacity; workers block when a front-end stops draining
const eventBufferSize = 128

// Terminal and progress line texts
const (
	doneMessage        = "Done ✔"
	errorPrefix        = "Error: "
	downloadingFormat  = "Downloading… %.1f%%"
	finalizingMessage  = "Finalizing file..."
	postStepWarnFormat = "Warning: %v"
)

// ErrEmptyURL is returned by Submit for empty or whitespace-only URLs.
// Callers treat it as a silent local rejection: no request is created and
// no event is emitted.
var ErrEmptyURL = errors.New("empty url")

// Config tunes runner behavior that varies between shipped configurations
type Config struct {
	Prefs options.Prefs

	// RetagAudio rewrites ID3 frames from extractor metadata after an
	// audio download finishes.
	RetagAudio bool

	// ConvertThumbnails re-encodes webp thumbnails to JPEG for image requests
	ConvertThumbnails bool
}

// Runner executes download requests, one background goroutine per request.
// Requests are never queued and cannot be cancelled once started. Each
// request emits zero or more progress events and exactly one completion
// event on the shared event channel.
type Runner struct {
	layout   platform.Layout
	cfg      Config
	events   chan model.Event
	requests map[string]*model.DownloadRequest
	mu       sync.RWMutex
	extract  extractor
}

// NewRunner creates a runner rooted at the given layout
func NewRunner(layout platform.Layout, cfg Config) *Runner {
	return &Runner{
		layout:   layout,
		cfg:      cfg,
		events:   make(chan model.Event, eventBufferSize),
		requests: make(map[string]*model.DownloadRequest),
		extract:  runYTDLP,
	}
}

// Events returns the channel all workers emit on. The channel is never
// closed; it lives as long as the runner.
func (r *Runner) Events() <-chan model.Event {
	return r.events
}

// Submit starts a download on a background goroutine and returns immediately.
// Empty or whitespace-only URLs are rejected with ErrEmptyURL before any
// request is created.
func (r *Runner) Submit(url string, kind model.MediaKind) (*model.DownloadRequest, error) {
	req, err := r.register(url, kind)
	if err != nil {
		return nil, err
	}

	go r.run(context.Background(), req)
	return req, nil
}

// Run executes a download synchronously, emitting the same events Submit
// would. Used by the headless CLI, where callers manage their own workers.
// On failure the returned error is the worker's *TaskError, so callers can
// recover the error kind with errors.As.
func (r *Runner) Run(ctx context.Context, url string, kind model.MediaKind) error {
	req, err := r.register(url, kind)
	if err != nil {
		return err
	}
	return r.run(ctx, req)
}

// SetBaseDir re-roots the output layout; applies to requests submitted after the call
func (r *Runner) SetBaseDir(dir string) {
	r.mu.Lock()
	r.layout = platform.NewLayout(dir)
	r.mu.Unlock()
}

// SetConfig replaces the runner configuration; applies to requests submitted after the call
func (r *Runner) SetConfig(cfg Config) {
	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()
}

// Get returns a request by ID
func (r *Runner) Get(id string) (*model.DownloadRequest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, exists := r.requests[id]
	return req, exists
}

// All returns every request the runner has seen, finished ones included
func (r *Runner) All() []*model.DownloadRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reqs := make([]*model.DownloadRequest, 0, len(r.requests))
	for _, req := range r.requests {
		reqs = append(reqs, req)
	}
	return reqs
}

// InFlight returns the requests whose workers are still live
func (r *Runner) InFlight() []*model.DownloadRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []*model.DownloadRequest
	for _, req := range r.requests {
		if req.Status.IsActive() {
			active = append(active, req)
		}
	}
	return active
}

// register validates the submission and records the new request
func (r *Runner) register(url string, kind model.MediaKind) (*model.DownloadRequest, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}
	if !kind.IsValid() {
		return nil, newTaskError(model.ErrorKindInvalidInput, "register", fmt.Errorf("unknown media kind %q", kind))
	}

	req := &model.DownloadRequest{
		ID:        uuid.NewString(),
		URL:       url,
		Kind:      kind,
		Status:    model.StatusPending,
		StartedAt: time.Now(),
	}

	r.mu.Lock()
	r.requests[req.ID] = req
	r.mu.Unlock()

	return req, nil
}

// run drives one request to its terminal state and emits the single
// completion event, whatever happened inside the extractor. The returned
// error is the worker's *TaskError; Submit discards it, Run hands it to
// the caller.
func (r *Runner) run(ctx context.Context, req *model.DownloadRequest) error {
	r.setStatus(req, model.StatusRunning)

	err := r.execute(ctx, req)
	if err == nil {
		r.mu.Lock()
		req.Status = model.StatusSucceeded
		req.Percent = 100
		req.FinishedAt = time.Now()
		r.mu.Unlock()

		r.emit(req, model.EventCompletion, doneMessage, false, model.ErrorKindNone)
		return nil
	}

	kind := model.ErrorKindDownloadFailed
	var te *TaskError
	if errors.As(err, &te) {
		kind = te.Kind
	}

	r.mu.Lock()
	req.Status = model.StatusFailed
	req.LastError = err.Error()
	req.ErrorKind = kind
	req.FinishedAt = time.Now()
	r.mu.Unlock()

	log.Printf("request %s failed: %v", req.ID, err)
	r.emit(req, model.EventCompletion, errorPrefix+err.Error(), true, kind)
	return err
}

// execute performs the download plus post-steps. A panic inside the
// extraction library is converted into an error so the completion event
// still fires exactly once.
func (r *Runner) execute(ctx context.Context, req *model.DownloadRequest) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = newTaskError(model.ErrorKindDownloadFailed, "extract", fmt.Errorf("extractor panic: %v", p))
		}
	}()

	r.mu.RLock()
	layout, cfg := r.layout, r.cfg
	r.mu.RUnlock()

	set := options.ForKind(req.Kind, layout, cfg.Prefs)
	if mkErr := platform.EnsureDir(set.OutputDir); mkErr != nil {
		return newTaskError(model.ErrorKindFilesystem, "ensure output dir", mkErr)
	}

	lastMsg := ""
	onProgress := func(percent float64, finalizing bool, title string) {
		r.mu.Lock()
		if percent > req.Percent {
			req.Percent = percent
		}
		if title != "" && req.Title == "" {
			req.Title = title
		}
		r.mu.Unlock()

		msg := fmt.Sprintf(downloadingFormat, percent)
		if finalizing {
			msg = finalizingMessage
		}
		if msg == lastMsg {
			return
		}
		lastMsg = msg
		r.emit(req, model.EventProgress, msg, false, model.ErrorKindNone)
	}

	result, exErr := r.extract(ctx, set, req.URL, onProgress)
	if exErr != nil {
		return classify("extract", exErr)
	}

	r.mu.Lock()
	if result.OutputPath != "" {
		req.OutputPath = result.OutputPath
	}
	if result.Title != "" && req.Title == "" {
		req.Title = result.Title
	}
	r.mu.Unlock()

	r.postProcess(req, result, cfg)
	return nil
}

// postProcess applies the optional local steps after a successful download.
// Failures here do not fail the request; the media file is already on disk.
func (r *Runner) postProcess(req *model.DownloadRequest, result *extractResult, cfg Config) {
	if req.Kind == model.KindAudio && cfg.RetagAudio && req.OutputPath != "" {
		// The library reports the pre-transcode filename; the MP3 sits next to it
		path := mp3Sibling(req.OutputPath)
		if path == "" {
			return
		}
		r.mu.Lock()
		req.OutputPath = path
		r.mu.Unlock()

		meta := media.TrackMeta{
			Title:  result.Title,
			Artist: result.Artist,
			Year:   result.UploadYear,
		}
		if err := media.RetagMP3(path, meta); err != nil {
			log.Printf("request %s: retag skipped: %v", req.ID, err)
			r.emit(req, model.EventProgress, fmt.Sprintf(postStepWarnFormat, err), false, model.ErrorKindNone)
		}
	}

	if req.Kind == model.KindImage && cfg.ConvertThumbnails && req.OutputPath != "" {
		converted, err := media.ConvertWebPToJPEG(req.OutputPath)
		if err != nil {
			log.Printf("request %s: thumbnail convert skipped: %v", req.ID, err)
			r.emit(req, model.EventProgress, fmt.Sprintf(postStepWarnFormat, err), false, model.ErrorKindNone)
			return
		}
		r.mu.Lock()
		req.OutputPath = converted
		r.mu.Unlock()
	}
}

// mp3Sibling returns the transcoded MP3 path for an extractor-reported
// filename, or the empty string when no MP3 exists on disk.
func mp3Sibling(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	alt := strings.TrimSuffix(path, filepath.Ext(path)) + ".mp3"
	if _, err := os.Stat(alt); err == nil {
		return alt
	}
	return ""
}

func (r *Runner) setStatus(req *model.DownloadRequest, status model.RequestStatus) {
	r.mu.Lock()
	req.Status = status
	r.mu.Unlock()
}

// emit sanitizes the message and delivers the event in emission order
func (r *Runner) emit(req *model.DownloadRequest, typ model.EventType, msg string, failed bool, kind model.ErrorKind) {
	r.events <- model.Event{
		RequestID: req.ID,
		Type:      typ,
		Message:   platform.StripANSI(msg),
		Failed:    failed,
		ErrorKind: kind,
	}
}
