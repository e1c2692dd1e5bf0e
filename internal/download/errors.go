package download

import (
	"fmt"
	"strings"

	"github.com/ytdesk/ytdesk/internal/model"
)

// TaskError is the terminal error of a failed request. Kind carries the
// closed classification so front-ends can react programmatically instead
// of pattern-matching strings.
type TaskError struct {
	Kind model.ErrorKind
	Op   string
	Err  error
}

func (e *TaskError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

func newTaskError(kind model.ErrorKind, op string, err error) *TaskError {
	return &TaskError{Kind: kind, Op: op, Err: err}
}

// stderr fragments used to classify extractor failures
var errorPatterns = []struct {
	kind     model.ErrorKind
	patterns []string
}{
	{model.ErrorKindUnsupportedURL, []string{
		"unsupported url",
		"is not a valid url",
		"no video formats found",
	}},
	{model.ErrorKindMissingBinary, []string{
		"ffmpeg not found",
		"ffprobe not found",
		"ffprobe and ffmpeg not found",
		"atomicparsley was not found",
		"executable file not found",
	}},
	{model.ErrorKindNetwork, []string{
		"unable to download",
		"connection refused",
		"connection reset",
		"timed out",
		"temporary failure in name resolution",
		"network is unreachable",
	}},
	{model.ErrorKindFilesystem, []string{
		"permission denied",
		"no space left on device",
		"read-only file system",
	}},
}

// classify maps an extractor error onto the closed error kind enumeration.
// Errors that are already TaskErrors pass through unchanged.
func classify(op string, err error) *TaskError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TaskError); ok {
		return te
	}

	msg := strings.ToLower(err.Error())
	for _, group := range errorPatterns {
		for _, p := range group.patterns {
			if strings.Contains(msg, p) {
				return newTaskError(group.kind, op, err)
			}
		}
	}
	return newTaskError(model.ErrorKindDownloadFailed, op, err)
}
