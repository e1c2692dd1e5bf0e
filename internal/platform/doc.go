package platform

// Package platform holds OS-facing helpers: the fixed directory layout,
// external binary resolution and dependency checks, ANSI sanitizing of
// extractor output, and file manager / process integration.
