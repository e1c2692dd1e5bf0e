package model

import "testing"

func TestRequestStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		expected bool
	}{
		{StatusPending, true},
		{StatusRunning, true},
		{StatusSucceeded, false},
		{StatusFailed, false},
	}

	for _, test := range tests {
		if got := test.status.IsActive(); got != test.expected {
			t.Errorf("IsActive() for %s = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestRequestStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		expected bool
	}{
		{StatusPending, false},
		{StatusRunning, false},
		{StatusSucceeded, true},
		{StatusFailed, true},
	}

	for _, test := range tests {
		if got := test.status.IsFinished(); got != test.expected {
			t.Errorf("IsFinished() for %s = %v, expected %v", test.status, got, test.expected)
		}
	}
}
