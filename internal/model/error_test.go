package model

import "testing"

func TestErrorKind_String(t *testing.T) {
	if got := ErrorKindNetwork.String(); got != "network" {
		t.Errorf("ErrorKindNetwork.String() = %q, expected %q", got, "network")
	}
	if got := ErrorKindNone.String(); got != "" {
		t.Errorf("ErrorKindNone.String() = %q, expected empty", got)
	}
}
