package media

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/webp"
)

// JPEG encoding quality for converted thumbnails
const jpegQuality = 90

// JPEGName returns the path a converted thumbnail is written to
func JPEGName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".jpg"
}

// ConvertWebPToJPEG re-encodes a webp thumbnail as JPEG next to the
// original and removes the webp file on success. Non-webp inputs are
// returned unchanged.
func ConvertWebPToJPEG(path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".webp") {
		return path, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read thumbnail: %w", err)
	}

	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode webp: %w", err)
	}

	outPath := JPEGName(path)
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create jpeg: %w", err)
	}

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		out.Close()
		os.Remove(outPath)
		return "", fmt.Errorf("failed to encode jpeg: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close jpeg: %w", err)
	}

	if err := os.Remove(path); err != nil {
		// Converted file is valid; keeping the original is not an error
		return outPath, nil
	}
	return outPath, nil
}
