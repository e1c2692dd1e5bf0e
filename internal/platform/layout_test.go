package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytdesk/ytdesk/internal/model"
)

func TestLayout_DirFor(t *testing.T) {
	layout := NewLayout("/base")

	tests := []struct {
		kind     model.MediaKind
		expected string
	}{
		{model.KindAudio, filepath.Join("/base", "Audios")},
		{model.KindVideo, filepath.Join("/base", "Videos")},
		{model.KindImage, filepath.Join("/base", "Images")},
	}

	for _, test := range tests {
		if got := layout.DirFor(test.kind); got != test.expected {
			t.Errorf("DirFor(%s) = %q, expected %q", test.kind, got, test.expected)
		}
	}
}

func TestLayout_BinDir(t *testing.T) {
	layout := NewLayout("/base")
	expected := filepath.Join("/base", "bin", "ffmpeg")
	if got := layout.BinDir(); got != expected {
		t.Errorf("BinDir() = %q, expected %q", got, expected)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Expected directory to exist, err=%v", err)
	}

	// Second call on an existing directory is a no-op
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}
