package options

// Package options builds the per-request option set consumed by the
// extraction library: output template, format selector, and post-processing
// steps (transcode, thumbnail and metadata embedding) per media kind.
