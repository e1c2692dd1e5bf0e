package model

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected MediaKind
		wantErr  bool
	}{
		{"audio", KindAudio, false},
		{"video", KindVideo, false},
		{"image", KindImage, false},
		{"  Audio ", KindAudio, false},
		{"VIDEO", KindVideo, false},
		{"", "", true},
		{"thumbnail", "", true},
	}

	for _, test := range tests {
		kind, err := ParseKind(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q) expected error, got %q", test.input, kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q) unexpected error: %v", test.input, err)
			continue
		}
		if kind != test.expected {
			t.Errorf("ParseKind(%q) = %q, expected %q", test.input, kind, test.expected)
		}
	}
}

func TestMediaKind_DirName(t *testing.T) {
	tests := []struct {
		kind     MediaKind
		expected string
	}{
		{KindAudio, "Audios"},
		{KindVideo, "Videos"},
		{KindImage, "Images"},
		{MediaKind("other"), "Downloads"},
	}

	for _, test := range tests {
		if got := test.kind.DirName(); got != test.expected {
			t.Errorf("DirName() for %q = %q, expected %q", test.kind, got, test.expected)
		}
	}
}
