package options

import (
	"path/filepath"

	"github.com/ytdesk/ytdesk/internal/model"
	"github.com/ytdesk/ytdesk/internal/platform"
)

// Fixed output and transcoding parameters
const (
	// FilenameTemplate names output files after the media title
	FilenameTemplate = "%(title)s.%(ext)s"

	// AudioCodec is the lossy codec audio downloads are transcoded to
	AudioCodec = "mp3"

	// AudioQuality is the fixed transcode bitrate for audio downloads
	AudioQuality = "320K"

	// AudioFormatSelector picks the best available audio stream
	AudioFormatSelector = "bestaudio/best"

	// VideoFormatSelector picks best video plus best audio, falling back to best combined
	VideoFormatSelector = "bv*+ba/b"

	// VideoContainer is the merge container for video downloads
	VideoContainer = "mp4"

	// UploadYearMapping truncates the recorded upload date to a 4-digit year
	// before metadata embedding (--parse-metadata FROM:TO form).
	UploadYearMapping = "%(upload_date>%Y)s:%(meta_date)s"
)

// Set is the option set handed to the extraction library for one request:
// format selection, output naming, and post-processing steps.
type Set struct {
	OutputDir         string
	OutputTemplate    string
	Format            string   // format selector; empty means library default
	MergeOutputFormat string   // merge container for combined streams
	ExtractAudio      bool     // transcode to AudioFormat after download
	AudioFormat       string   // target codec when ExtractAudio is set
	AudioQuality      string   // target bitrate when ExtractAudio is set
	SkipDownload      bool     // skip the primary media download
	WriteThumbnail    bool     // fetch the thumbnail image alongside
	EmbedThumbnail    bool     // embed the thumbnail into the output file
	EmbedMetadata     bool     // write basic metadata into the output file
	ParseMetadata     []string // FROM:TO metadata mappings applied before embedding
	NoOverwrites      bool     // never overwrite an existing output file
	WindowsFilenames  bool     // restrict file names to Windows-safe characters
	WriteDescription  bool     // write a description sidecar file
	FFmpegLocation    string   // directory holding ffmpeg; empty resolves from PATH
}

// Prefs carries the tunable builder behavior that varies between the
// shipped configurations.
type Prefs struct {
	// TruncateDateToYear reduces the embedded upload date to a 4-digit year
	// for video downloads.
	TruncateDateToYear bool
}

// OutputPath returns the full output template (directory plus file template)
func (s Set) OutputPath() string {
	return filepath.Join(s.OutputDir, s.OutputTemplate)
}

// ForKind builds the option set for one media kind. It is a pure function of
// its inputs; the output directory is not created here.
func ForKind(kind model.MediaKind, layout platform.Layout, prefs Prefs) Set {
	set := Set{
		OutputDir:        layout.DirFor(kind),
		OutputTemplate:   FilenameTemplate,
		EmbedMetadata:    true,
		NoOverwrites:     true,
		WindowsFilenames: true,
		FFmpegLocation:   layout.FFmpegLocation(),
	}

	switch kind {
	case model.KindAudio:
		set.Format = AudioFormatSelector
		set.ExtractAudio = true
		set.AudioFormat = AudioCodec
		set.AudioQuality = AudioQuality
		set.WriteThumbnail = true
		set.EmbedThumbnail = true

	case model.KindVideo:
		set.Format = VideoFormatSelector
		set.MergeOutputFormat = VideoContainer
		set.WriteThumbnail = true
		set.EmbedThumbnail = true
		if prefs.TruncateDateToYear {
			set.ParseMetadata = append(set.ParseMetadata, UploadYearMapping)
		}

	case model.KindImage:
		set.SkipDownload = true
		set.WriteThumbnail = true
	}

	return set
}
