package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// ErrNotAnImage rejects files that are not one of the served photo formats, or
// whose content does not match their extension.
var ErrNotAnImage = errors.New("imaging: not an allowed image")

// Magic byte signatures per allowed extension.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
}

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Allowed reports whether the file name has a servable image extension.
func Allowed(filename string) bool {
	_, ok := magicBytes[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Detect checks the extension whitelist, the magic bytes and the sniffed MIME
// type, in that order, and returns the MIME type to serve data with.
func Detect(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	signatures, ok := magicBytes[ext]
	if !ok {
		return "", fmt.Errorf("%w: extension %q", ErrNotAnImage, ext)
	}

	matched := false
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			matched = true
			break
		}
	}
	if !matched {
		return "", fmt.Errorf("%w: content does not match %s", ErrNotAnImage, ext)
	}

	mime := http.DetectContentType(data)
	if !allowedMIME[mime] {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mime)
	}
	return mime, nil
}
