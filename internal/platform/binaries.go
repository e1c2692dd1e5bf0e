package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Names of the external binaries the post-processing steps require
const (
	FFmpegBinary        = "ffmpeg"
	FFprobeBinary       = "ffprobe"
	AtomicParsleyBinary = "AtomicParsley"
)

// RequiredBinaries lists every binary that must be present before any
// audio or video request can succeed.
var RequiredBinaries = []string{FFmpegBinary, FFprobeBinary, AtomicParsleyBinary}

// binaryFileName returns the platform-specific file name for a binary
func binaryFileName(name string) string {
	if runtime.GOOS == OSWindows {
		return name + ".exe"
	}
	return name
}

// ResolveBinary returns the full path of a binary, preferring the bundled
// bin/ffmpeg directory and falling back to PATH lookup. The boolean reports
// whether the binary was found at all.
func (l Layout) ResolveBinary(name string) (string, bool) {
	bundled := filepath.Join(l.BinDir(), binaryFileName(name))
	if info, err := os.Stat(bundled); err == nil && !info.IsDir() {
		return bundled, true
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// MissingBinaries returns the names of required binaries that could not be
// resolved. An empty slice means all post-processing dependencies are present.
func (l Layout) MissingBinaries() []string {
	var missing []string
	for _, name := range RequiredBinaries {
		if _, ok := l.ResolveBinary(name); !ok {
			missing = append(missing, binaryFileName(name))
		}
	}
	return missing
}

// FFmpegLocation returns the directory passed to the extraction library as
// the ffmpeg location. When the bundled directory holds an ffmpeg binary it
// is used, otherwise the empty string lets the library resolve from PATH.
func (l Layout) FFmpegLocation() string {
	bundled := filepath.Join(l.BinDir(), binaryFileName(FFmpegBinary))
	if info, err := os.Stat(bundled); err == nil && !info.IsDir() {
		return l.BinDir()
	}
	return ""
}
