package model

// RequestStatus represents the lifecycle state of a download request
type RequestStatus string

const (
	// StatusPending means the request was accepted but its worker has not started yet
	StatusPending RequestStatus = "Pending"

	// StatusRunning means the background worker is executing the download
	StatusRunning RequestStatus = "Running"

	// StatusSucceeded means the request finished and its files are on disk
	StatusSucceeded RequestStatus = "Succeeded"

	// StatusFailed means the request terminated with an error
	StatusFailed RequestStatus = "Failed"
)

// String returns the string representation of RequestStatus
func (rs RequestStatus) String() string {
	return string(rs)
}

// IsActive returns true if the request still has a live worker
func (rs RequestStatus) IsActive() bool {
	return rs == StatusPending || rs == StatusRunning
}

// IsFinished returns true if the request reached a terminal state
func (rs RequestStatus) IsFinished() bool {
	return rs == StatusSucceeded || rs == StatusFailed
}
