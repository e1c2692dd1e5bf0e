package ui

// Package ui implements the Fyne front-end: a URL entry, one button per
// media kind, and a read-only log pane fed from the runner's event channel.
