package model

// EventType distinguishes intermediate progress lines from the single
// terminal notification every request emits.
type EventType string

const (
	// EventProgress is an intermediate status line; zero or more per request
	EventProgress EventType = "progress"

	// EventCompletion is the terminal notification; exactly one per request
	EventCompletion EventType = "completion"
)

// Event is an asynchronous notification from a download worker to whichever
// front-end consumes the runner's event channel. Message is always safe to
// append to a log verbatim (control sequences are stripped before emission).
type Event struct {
	RequestID string
	Type      EventType
	Message   string
	Failed    bool      // completion only: true when the request ended in error
	ErrorKind ErrorKind // completion only: failure classification, empty on success
}

// IsCompletion returns true for the terminal event of a request
func (e Event) IsCompletion() bool {
	return e.Type == EventCompletion
}
