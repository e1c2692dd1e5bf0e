package installer

// Package installer shells out to the platform package manager to place the
// external media binaries, and uses the extraction library's installer for
// the yt-dlp binary itself.
