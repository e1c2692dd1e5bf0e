package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
)

// TrackMeta holds the ID3 frames rewritten after an audio download
type TrackMeta struct {
	Title  string
	Artist string
	Year   string
}

// IsEmpty returns true when no frame would be written
func (m TrackMeta) IsEmpty() bool {
	return m.Title == "" && m.Artist == "" && m.Year == ""
}

// RetagMP3 rewrites the basic ID3 frames of an MP3 file from extractor
// metadata. Frames with empty values are left untouched, so partially
// known metadata never clears existing tags.
func RetagMP3(path string, meta TrackMeta) error {
	if !strings.EqualFold(filepath.Ext(path), ".mp3") {
		return fmt.Errorf("not an mp3 file: %s", path)
	}
	if meta.IsEmpty() {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open tag: %w", err)
	}
	defer tag.Close()

	if meta.Title != "" {
		tag.SetTitle(meta.Title)
	}
	if meta.Artist != "" {
		tag.SetArtist(meta.Artist)
	}
	if meta.Year != "" {
		tag.SetYear(meta.Year)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save tag: %w", err)
	}
	return nil
}
