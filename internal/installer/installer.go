package installer

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytdesk/ytdesk/internal/platform"
)

// Package manager invocations per platform. ffmpeg builds ship ffprobe;
// AtomicParsley is a separate package everywhere.
var installCommands = map[string][][]string{
	platform.OSWindows: {
		{"winget", "install", "--accept-source-agreements", "--accept-package-agreements", "Gyan.FFmpeg"},
		{"winget", "install", "--accept-source-agreements", "--accept-package-agreements", "AtomicParsley.AtomicParsley"},
	},
	platform.OSDarwin: {
		{"brew", "install", "ffmpeg"},
		{"brew", "install", "atomicparsley"},
	},
	platform.OSLinux: {
		{"apt-get", "install", "-y", "ffmpeg", "atomicparsley"},
	},
}

// Installer places the external binaries the post-processing steps need:
// ffmpeg/ffprobe/AtomicParsley via the platform package manager, and the
// yt-dlp binary via the extraction library's own installer.
type Installer struct {
	layout platform.Layout
}

// New creates an installer for the given layout
func New(layout platform.Layout) *Installer {
	return &Installer{layout: layout}
}

// Missing returns the names of required binaries that are not present
func (i *Installer) Missing() []string {
	return i.layout.MissingBinaries()
}

// commandsFor returns the package manager invocations for an OS
func commandsFor(goos string) ([][]string, error) {
	cmds, ok := installCommands[goos]
	if !ok {
		return nil, fmt.Errorf("no installer available for %s", goos)
	}
	return cmds, nil
}

// Install runs the package manager and fetches the yt-dlp binary. The
// process should be restarted after a successful install so binary
// resolution runs again from a clean state.
func (i *Installer) Install(ctx context.Context) error {
	cmds, err := commandsFor(runtime.GOOS)
	if err != nil {
		return err
	}

	for _, args := range cmds {
		log.Printf("installer: running %v", args)
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s failed: %w: %s", args[0], err, out)
		}
	}

	if _, err := ytdlp.Install(ctx, &ytdlp.InstallOptions{}); err != nil {
		return fmt.Errorf("yt-dlp install failed: %w", err)
	}

	return nil
}

// Restart replaces the current process after a successful install
func (i *Installer) Restart() error {
	return platform.RestartProcess()
}
