package media

// Package media holds the local post-steps applied after the extraction
// library finishes: ID3 retagging of MP3 downloads and webp-to-JPEG
// conversion of thumbnails.
