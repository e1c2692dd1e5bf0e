package model

import (
	"fmt"
	"strings"
)

// MediaKind selects what a request downloads: the audio stream, the full
// video, or only the thumbnail image.
type MediaKind string

const (
	// KindAudio downloads the best audio stream and transcodes it to MP3
	KindAudio MediaKind = "audio"

	// KindVideo downloads and merges the best video+audio streams
	KindVideo MediaKind = "video"

	// KindImage skips the media download and fetches only the thumbnail
	KindImage MediaKind = "image"
)

// String returns the string representation of MediaKind
func (k MediaKind) String() string {
	return string(k)
}

// IsValid returns true if the kind is one of the known media kinds
func (k MediaKind) IsValid() bool {
	return k == KindAudio || k == KindVideo || k == KindImage
}

// DirName returns the name of the output directory for this kind
func (k MediaKind) DirName() string {
	switch k {
	case KindAudio:
		return "Audios"
	case KindVideo:
		return "Videos"
	case KindImage:
		return "Images"
	default:
		return "Downloads"
	}
}

// ParseKind parses a user-supplied kind string (CLI flag value)
func ParseKind(s string) (MediaKind, error) {
	kind := MediaKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", fmt.Errorf("unknown media kind: %q (want audio, video or image)", s)
	}
	return kind, nil
}
