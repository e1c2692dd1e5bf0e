package platform

import (
	"os"
	"path/filepath"

	"github.com/ytdesk/ytdesk/internal/model"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Directory names relative to the base directory
const (
	BinDirName    = "bin"
	FFmpegDirName = "ffmpeg"
)

// Layout describes the fixed on-disk layout the app uses: kind-specific
// output directories plus a bin/ffmpeg directory holding the external
// binaries, all siblings under one base directory.
type Layout struct {
	BaseDir string
}

// NewLayout creates a layout rooted at the given base directory
func NewLayout(baseDir string) Layout {
	return Layout{BaseDir: baseDir}
}

// DirFor returns the output directory for a media kind
func (l Layout) DirFor(kind model.MediaKind) string {
	return filepath.Join(l.BaseDir, kind.DirName())
}

// BinDir returns the directory holding ffmpeg, ffprobe and AtomicParsley
func (l Layout) BinDir() string {
	return filepath.Join(l.BaseDir, BinDirName, FFmpegDirName)
}

// EnsureDir creates a directory (and parents) if it does not exist
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DefaultDirPermissions)
}

// DefaultBaseDir returns the directory the running executable lives in,
// falling back to the working directory. Matches the fixed sibling-directory
// convention: Audios/, Videos/, Images/ next to the binary.
func DefaultBaseDir() string {
	exe, err := os.Executable()
	if err == nil {
		return filepath.Dir(exe)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
