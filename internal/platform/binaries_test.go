package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeBundledBinary(t *testing.T, layout Layout, name string) string {
	t.Helper()

	if err := EnsureDir(layout.BinDir()); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}
	path := filepath.Join(layout.BinDir(), binaryFileName(name))
	if err := os.WriteFile(path, []byte("stub"), 0755); err != nil {
		t.Fatalf("failed to write stub binary: %v", err)
	}
	return path
}

func TestResolveBinary_PrefersBundled(t *testing.T) {
	layout := NewLayout(t.TempDir())
	bundled := writeBundledBinary(t, layout, FFmpegBinary)

	path, ok := layout.ResolveBinary(FFmpegBinary)
	if !ok {
		t.Fatal("Expected bundled binary to resolve")
	}
	if path != bundled {
		t.Errorf("Expected bundled path %q, got %q", bundled, path)
	}
}

func TestResolveBinary_Missing(t *testing.T) {
	layout := NewLayout(t.TempDir())

	if _, ok := layout.ResolveBinary("definitely-not-a-real-binary-xyz"); ok {
		t.Error("Expected unknown binary to be unresolved")
	}
}

func TestFFmpegLocation(t *testing.T) {
	layout := NewLayout(t.TempDir())

	// Without a bundled ffmpeg the location is left to PATH resolution
	if loc := layout.FFmpegLocation(); loc != "" {
		t.Errorf("Expected empty location without bundled ffmpeg, got %q", loc)
	}

	writeBundledBinary(t, layout, FFmpegBinary)
	if loc := layout.FFmpegLocation(); loc != layout.BinDir() {
		t.Errorf("Expected bundled bin dir %q, got %q", layout.BinDir(), loc)
	}
}

func TestBinaryFileName(t *testing.T) {
	name := binaryFileName(FFprobeBinary)
	if runtime.GOOS == OSWindows {
		if name != "ffprobe.exe" {
			t.Errorf("Expected ffprobe.exe on windows, got %q", name)
		}
		return
	}
	if name != "ffprobe" {
		t.Errorf("Expected ffprobe, got %q", name)
	}
}
