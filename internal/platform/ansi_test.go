package platform

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain text", "plain text"},
		{"\x1b[0;94m 42.5%\x1b[0m", " 42.5%"},
		{"\x1b[2K\rDownloading… 10.0%", "Downloading… 10.0%"},
		{"mixed \x1b[31mred\x1b[0m text", "mixed red text"},
		{"tabs\tsurvive", "tabs\tsurvive"},
		{"", ""},
	}

	for _, test := range tests {
		if got := StripANSI(test.input); got != test.expected {
			t.Errorf("StripANSI(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
