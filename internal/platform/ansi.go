package platform

import (
	"regexp"
	"strings"
)

// ansiRegexp matches CSI escape sequences (colors, cursor movement) that
// yt-dlp mixes into its percent strings when it believes it writes to a tty.
var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes ANSI control sequences and stray control characters from
// a status line so it can be appended to a plain-text log.
func StripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' {
			return -1
		}
		return r
	}, s)
}
