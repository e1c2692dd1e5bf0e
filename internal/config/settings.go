package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytdesk/ytdesk/internal/download"
	"github.com/ytdesk/ytdesk/internal/options"
	"github.com/ytdesk/ytdesk/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBaseDir            = "base_directory"
	KeyTruncateDateToYear = "truncate_date_to_year"
	KeyRetagAudio         = "retag_audio"
	KeyConvertThumbnails  = "convert_thumbnails"
	KeyAutoRevealComplete = "auto_reveal_complete"
)

// Default values
const (
	DefaultTruncateDateToYear = true
	DefaultRetagAudio         = true
	DefaultConvertThumbnails  = false
	DefaultAutoRevealComplete = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseDirectory returns the directory the output layout is rooted at
func (s *Settings) GetBaseDirectory() string {
	dir := s.app.Preferences().String(KeyBaseDir)
	if dir == "" {
		dir = platform.DefaultBaseDir()
		s.SetBaseDirectory(dir)
	}
	return dir
}

// SetBaseDirectory sets the base directory
func (s *Settings) SetBaseDirectory(dir string) {
	s.app.Preferences().SetString(KeyBaseDir, dir)
}

// GetTruncateDateToYear returns whether video metadata keeps only the upload year
func (s *Settings) GetTruncateDateToYear() bool {
	return s.app.Preferences().BoolWithFallback(KeyTruncateDateToYear, DefaultTruncateDateToYear)
}

// SetTruncateDateToYear sets the upload-date truncation behavior
func (s *Settings) SetTruncateDateToYear(v bool) {
	s.app.Preferences().SetBool(KeyTruncateDateToYear, v)
}

// GetRetagAudio returns whether finished audio downloads get their ID3 frames rewritten
func (s *Settings) GetRetagAudio() bool {
	return s.app.Preferences().BoolWithFallback(KeyRetagAudio, DefaultRetagAudio)
}

// SetRetagAudio sets the audio retagging behavior
func (s *Settings) SetRetagAudio(v bool) {
	s.app.Preferences().SetBool(KeyRetagAudio, v)
}

// GetConvertThumbnails returns whether webp thumbnails get re-encoded as JPEG
func (s *Settings) GetConvertThumbnails() bool {
	return s.app.Preferences().BoolWithFallback(KeyConvertThumbnails, DefaultConvertThumbnails)
}

// SetConvertThumbnails sets the thumbnail conversion behavior
func (s *Settings) SetConvertThumbnails(v bool) {
	s.app.Preferences().SetBool(KeyConvertThumbnails, v)
}

// GetAutoRevealOnComplete returns whether finished downloads are revealed in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets the auto-reveal behavior
func (s *Settings) SetAutoRevealOnComplete(v bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, v)
}

// RunnerConfig assembles the download runner configuration from preferences
func (s *Settings) RunnerConfig() download.Config {
	return download.Config{
		Prefs: options.Prefs{
			TruncateDateToYear: s.GetTruncateDateToYear(),
		},
		RetagAudio:        s.GetRetagAudio(),
		ConvertThumbnails: s.GetConvertThumbnails(),
	}
}
