package download

// Package download implements the core download pipeline built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). It runs one goroutine per
// request, classifies failures into a closed error-kind set, and streams
// progress and completion events to front-ends over a channel.
