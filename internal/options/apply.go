package options

import (
	"github.com/lrstanley/go-ytdlp"
)

// Apply maps the option set onto a yt-dlp command builder. Only set fields
// emit flags; the library's defaults cover the rest.
func (s Set) Apply(dl *ytdlp.Command) *ytdlp.Command {
	dl = dl.Output(s.OutputPath())

	if s.Format != "" {
		dl = dl.Format(s.Format)
	}
	if s.MergeOutputFormat != "" {
		dl = dl.MergeOutputFormat(s.MergeOutputFormat)
	}
	if s.ExtractAudio {
		dl = dl.ExtractAudio().AudioFormat(s.AudioFormat).AudioQuality(s.AudioQuality)
	}
	if s.SkipDownload {
		dl = dl.SkipDownload()
	}
	if s.WriteThumbnail {
		dl = dl.WriteThumbnail()
	}
	if s.EmbedThumbnail {
		dl = dl.EmbedThumbnail()
	}
	if s.EmbedMetadata {
		dl = dl.EmbedMetadata()
	}
	for _, mapping := range s.ParseMetadata {
		dl = dl.ParseMetadata(mapping)
	}
	if s.NoOverwrites {
		dl = dl.NoOverwrites()
	}
	if s.WindowsFilenames {
		dl = dl.WindowsFilenames()
	}
	if s.WriteDescription {
		dl = dl.WriteDescription()
	}
	if s.FFmpegLocation != "" {
		dl = dl.FFmpegLocation(s.FFmpegLocation)
	}

	return dl
}
