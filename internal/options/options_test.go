package options

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytdesk/ytdesk/internal/model"
	"github.com/ytdesk/ytdesk/internal/platform"
)

func TestForKind_Audio(t *testing.T) {
	layout := platform.NewLayout("/base")
	set := ForKind(model.KindAudio, layout, Prefs{})

	if set.OutputDir != filepath.Join("/base", "Audios") {
		t.Errorf("Expected audio output dir under Audios, got %q", set.OutputDir)
	}
	if !set.ExtractAudio {
		t.Error("Audio set should request audio extraction")
	}
	if set.AudioFormat != "mp3" {
		t.Errorf("Expected mp3 transcode, got %q", set.AudioFormat)
	}
	if set.AudioQuality != "320K" {
		t.Errorf("Expected fixed 320K bitrate, got %q", set.AudioQuality)
	}
	if !set.WriteThumbnail || !set.EmbedThumbnail {
		t.Error("Audio set should fetch and embed the thumbnail")
	}
	if set.SkipDownload {
		t.Error("Audio set should not skip the primary download")
	}
}

func TestForKind_Video(t *testing.T) {
	layout := platform.NewLayout("/base")
	set := ForKind(model.KindVideo, layout, Prefs{TruncateDateToYear: true})

	if set.OutputDir != filepath.Join("/base", "Videos") {
		t.Errorf("Expected video output dir under Videos, got %q", set.OutputDir)
	}
	if set.Format != VideoFormatSelector {
		t.Errorf("Expected combined-stream selector, got %q", set.Format)
	}
	if set.MergeOutputFormat != "mp4" {
		t.Errorf("Expected mp4 merge container, got %q", set.MergeOutputFormat)
	}

	found := false
	for _, m := range set.ParseMetadata {
		if m == UploadYearMapping {
			found = true
		}
	}
	if !found {
		t.Error("Expected upload-year mapping when truncation is enabled")
	}

	set = ForKind(model.KindVideo, layout, Prefs{TruncateDateToYear: false})
	if len(set.ParseMetadata) != 0 {
		t.Errorf("Expected no metadata mappings when truncation is disabled, got %v", set.ParseMetadata)
	}
}

func TestForKind_Image(t *testing.T) {
	layout := platform.NewLayout("/base")
	set := ForKind(model.KindImage, layout, Prefs{})

	if set.OutputDir != filepath.Join("/base", "Images") {
		t.Errorf("Expected image output dir under Images, got %q", set.OutputDir)
	}
	if !set.SkipDownload {
		t.Error("Image set should skip the primary download")
	}
	if !set.WriteThumbnail {
		t.Error("Image set should fetch the thumbnail")
	}
	if set.ExtractAudio || set.MergeOutputFormat != "" {
		t.Error("Image set should carry no transcode or merge steps")
	}
}

func TestForKind_BaseOptions(t *testing.T) {
	layout := platform.NewLayout("/base")

	for _, kind := range []model.MediaKind{model.KindAudio, model.KindVideo, model.KindImage} {
		set := ForKind(kind, layout, Prefs{})

		if !set.NoOverwrites {
			t.Errorf("%s set should never overwrite existing files", kind)
		}
		if !set.WindowsFilenames {
			t.Errorf("%s set should restrict file names", kind)
		}
		if !set.EmbedMetadata {
			t.Errorf("%s set should embed metadata", kind)
		}
		if set.WriteDescription {
			t.Errorf("%s set should not write description sidecars", kind)
		}
		if !strings.HasSuffix(set.OutputPath(), FilenameTemplate) {
			t.Errorf("%s output path %q should end with the filename template", kind, set.OutputPath())
		}
	}
}
